// Package vault snapshots the contact book into a passphrase-encrypted
// vault and brings it back, via the domain.VaultStore. Restore replaces the
// live book wholesale; Merge bulk-ingests the vault records through the
// contact store so the uniqueness invariant holds.
package vault
