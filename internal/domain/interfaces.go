package domain

// LineStore is the durable line-oriented file backing the contact book.
// The contact service is its exclusive owner. A missing backing file reads
// as an empty book.
type LineStore interface {
	ReadAll() ([]string, error)
	WriteAll(lines []string) error
	Append(lines []string) error
}

// ContactStore executes contact operations against a fresh snapshot of the
// durable line store on every call.
type ContactStore interface {
	Add(c Contact) (string, error)
	Remove(username string) error
	FindByUsername(username string) (Contact, bool, error)
	FindByName(name string) ([]Contact, error)
	FindByEmail(email string) ([]Contact, error)
	FindByPhoneNumber(number string) ([]Contact, error)
	ListAll() ([]Contact, error)
	Update(username string, edit func(Contact) Contact) (Contact, error)
	Ingest(cs []Contact) error
}

// VaultStore seals and opens encrypted snapshots of the raw line store.
type VaultStore interface {
	Seal(passphrase string, lines []string) error
	Open(passphrase string) (lines []string, ok bool, err error)
}

// VaultService backs up the whole book into the vault and brings it back,
// either replacing the live book or merging into it.
type VaultService interface {
	Backup(passphrase string) (int, error)
	Restore(passphrase string) (int, error)
	Merge(passphrase string) (int, error)
}
