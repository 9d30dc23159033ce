package vault

import (
	"errors"

	"abook/internal/domain"
	"abook/internal/record"
)

var (
	// ErrPassphraseRequired is returned when backup or restore is attempted
	// without a passphrase.
	ErrPassphraseRequired = errors.New("passphrase required")

	// ErrNoVault is returned by Restore when no backup has been written yet.
	ErrNoVault = errors.New("no vault found")
)

// Service backs up and restores the whole book through the vault store.
type Service struct {
	lines    domain.LineStore
	vault    domain.VaultStore
	contacts domain.ContactStore
}

// New returns a vault service over the given line and vault stores. Merge
// routes vault records through contacts so the book's invariants hold.
func New(lines domain.LineStore, vault domain.VaultStore, contacts domain.ContactStore) *Service {
	return &Service{lines: lines, vault: vault, contacts: contacts}
}

// Backup seals the current book under passphrase and returns the number of
// records captured.
func (s *Service) Backup(passphrase string) (int, error) {
	if passphrase == "" {
		return 0, ErrPassphraseRequired
	}
	lines, err := s.lines.ReadAll()
	if err != nil {
		return 0, err
	}
	if err := s.vault.Seal(passphrase, lines); err != nil {
		return 0, err
	}
	return len(lines), nil
}

// Restore replaces the book with the vault contents and returns the number
// of records restored.
func (s *Service) Restore(passphrase string) (int, error) {
	if passphrase == "" {
		return 0, ErrPassphraseRequired
	}
	lines, ok, err := s.vault.Open(passphrase)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNoVault
	}
	if err := s.lines.WriteAll(lines); err != nil {
		return 0, err
	}
	return len(lines), nil
}

// Merge appends the vault contents to the live book instead of replacing
// it. Vault records are decoded and bulk-ingested, so a username collision
// with the live book fails the whole merge without touching it.
func (s *Service) Merge(passphrase string) (int, error) {
	if passphrase == "" {
		return 0, ErrPassphraseRequired
	}
	lines, ok, err := s.vault.Open(passphrase)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNoVault
	}
	contacts := make([]domain.Contact, 0, len(lines))
	for _, line := range lines {
		c, err := record.Decode(line)
		if err != nil {
			return 0, err
		}
		contacts = append(contacts, c)
	}
	if err := s.contacts.Ingest(contacts); err != nil {
		return 0, err
	}
	return len(contacts), nil
}

// Compile-time assertion that Service implements domain.VaultService.
var _ domain.VaultService = (*Service)(nil)
