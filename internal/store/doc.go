// Package store provides file-based persistence for the contact book.
//
// FileLineStore holds the live book as a flat text file, one encoded contact
// per line, rewritten atomically via a temp file and rename. VaultFileStore
// keeps a passphrase-encrypted snapshot for backup and restore. Both are
// concurrency-safe via internal locking and live under the user's configured
// home directory.
package store
