package contact

import (
	"abook/internal/domain"
	"abook/internal/record"
)

// Service executes contact operations over a durable line store.
type Service struct {
	lines domain.LineStore
}

// New returns a contact service backed by the given line store.
func New(lines domain.LineStore) *Service { return &Service{lines: lines} }

// Add persists a new contact and returns its username. The username must
// not collide with an existing record; the new record is prepended.
func (s *Service) Add(c domain.Contact) (string, error) {
	if err := record.Validate(c); err != nil {
		return "", err
	}
	contacts, err := s.load()
	if err != nil {
		return "", err
	}
	for _, existing := range contacts {
		if existing.Username == c.Username {
			return "", &domain.DuplicateKeyError{Username: c.Username}
		}
	}
	if err := s.store(append([]domain.Contact{c}, contacts...)); err != nil {
		return "", err
	}
	return c.Username, nil
}

// Remove deletes any contact matching username. Removing an absent
// username is a no-op, not an error.
func (s *Service) Remove(username string) error {
	contacts, err := s.load()
	if err != nil {
		return err
	}
	kept := make([]domain.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Username != username {
			kept = append(kept, c)
		}
	}
	return s.store(kept)
}

// FindByUsername returns the contact with the exact username, if any.
func (s *Service) FindByUsername(username string) (domain.Contact, bool, error) {
	contacts, err := s.load()
	if err != nil {
		return domain.Contact{}, false, err
	}
	for _, c := range contacts {
		if c.Username == username {
			return c, true, nil
		}
	}
	return domain.Contact{}, false, nil
}

// FindByName returns every contact whose first or last name equals name.
func (s *Service) FindByName(name string) ([]domain.Contact, error) {
	return s.filter(func(c domain.Contact) bool {
		return c.FirstName == name || c.LastName == name
	})
}

// FindByEmail returns every contact with exactly the given email.
func (s *Service) FindByEmail(email string) ([]domain.Contact, error) {
	return s.filter(func(c domain.Contact) bool { return c.Email == email })
}

// FindByPhoneNumber returns every contact with exactly the given number.
func (s *Service) FindByPhoneNumber(number string) ([]domain.Contact, error) {
	return s.filter(func(c domain.Contact) bool { return c.PhoneNumber == number })
}

// ListAll returns the full snapshot in on-disk order.
func (s *Service) ListAll() ([]domain.Contact, error) {
	return s.load()
}

// Update applies edit to the contact with the given username and rewrites
// the book with the result in the matched record's position, leaving every
// other record untouched.
func (s *Service) Update(username string, edit func(domain.Contact) domain.Contact) (domain.Contact, error) {
	contacts, err := s.load()
	if err != nil {
		return domain.Contact{}, err
	}
	for i, c := range contacts {
		if c.Username != username {
			continue
		}
		updated := edit(c)
		if err := record.Validate(updated); err != nil {
			return domain.Contact{}, err
		}
		contacts[i] = updated
		if err := s.store(contacts); err != nil {
			return domain.Contact{}, err
		}
		return updated, nil
	}
	return domain.Contact{}, &domain.NotFoundError{Username: username}
}

// Ingest bulk-appends contacts without rewriting existing records. Incoming
// usernames must not collide with the book or with each other.
func (s *Service) Ingest(cs []domain.Contact) error {
	contacts, err := s.load()
	if err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(contacts)+len(cs))
	for _, c := range contacts {
		seen[c.Username] = struct{}{}
	}
	lines := make([]string, 0, len(cs))
	for _, c := range cs {
		if err := record.Validate(c); err != nil {
			return err
		}
		if _, dup := seen[c.Username]; dup {
			return &domain.DuplicateKeyError{Username: c.Username}
		}
		seen[c.Username] = struct{}{}
		lines = append(lines, record.Encode(c))
	}
	return s.lines.Append(lines)
}

// load decodes the full snapshot. The first malformed line aborts the load.
func (s *Service) load() ([]domain.Contact, error) {
	lines, err := s.lines.ReadAll()
	if err != nil {
		return nil, err
	}
	contacts := make([]domain.Contact, 0, len(lines))
	for _, line := range lines {
		c, err := record.Decode(line)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

// store rewrites the whole book in one pass.
func (s *Service) store(contacts []domain.Contact) error {
	lines := make([]string, len(contacts))
	for i, c := range contacts {
		lines[i] = record.Encode(c)
	}
	return s.lines.WriteAll(lines)
}

func (s *Service) filter(keep func(domain.Contact) bool) ([]domain.Contact, error) {
	contacts, err := s.load()
	if err != nil {
		return nil, err
	}
	var out []domain.Contact
	for _, c := range contacts {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Compile-time assertion that Service implements domain.ContactStore.
var _ domain.ContactStore = (*Service)(nil)
