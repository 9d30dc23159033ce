package app

import (
	"os"

	"abook/internal/domain"
	contactsvc "abook/internal/services/contact"
	vaultsvc "abook/internal/services/vault"
	"abook/internal/store"
)

// Wire bundles all stores and services for the CLI.
type Wire struct {
	Lines    domain.LineStore
	Contacts domain.ContactStore
	Vault    domain.VaultService
}

// NewWire ensures the home directory exists and constructs the dependency
// graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, err
	}

	lineStore := store.NewFileLineStore(cfg.BookPath())
	vaultStore := store.NewVaultFileStore(cfg.Home)
	contacts := contactsvc.New(lineStore)

	return &Wire{
		Lines:    lineStore,
		Contacts: contacts,
		Vault:    vaultsvc.New(lineStore, vaultStore, contacts),
	}, nil
}
