package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"abook/internal/domain"
)

const vaultFilename = "vault.abook.enc"

// VaultFileStore keeps an encrypted snapshot of the contact book on disk.
type VaultFileStore struct {
	dir string
	mu  sync.Mutex
}

// NewVaultFileStore returns a VaultFileStore rooted at dir.
func NewVaultFileStore(dir string) *VaultFileStore {
	return &VaultFileStore{dir: dir}
}

// Seal encrypts lines under passphrase and writes the vault blob.
func (s *VaultFileStore) Seal(passphrase string, lines []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ct, err := seal(passphrase, []byte(strings.Join(lines, "\n")))
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, vaultFilename), ct, 0o600)
}

// Open decrypts the vault and returns its lines. ok is false when no vault
// has been written yet.
func (s *VaultFileStore) Open(passphrase string) ([]string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, vaultFilename))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	raw, err := open(passphrase, b)
	if err != nil {
		return nil, false, err
	}
	if len(raw) == 0 {
		return nil, true, nil
	}
	return strings.Split(string(raw), "\n"), true, nil
}

// Compile-time assertion that VaultFileStore implements domain.VaultStore.
var _ domain.VaultStore = (*VaultFileStore)(nil)
