package command

import "abook/internal/domain"

// FieldEdit is one update directive. Edits apply left to right, so a later
// edit to the same field wins.
type FieldEdit interface {
	apply(c domain.Contact) domain.Contact
}

// SetFirstName replaces the first name.
type SetFirstName struct {
	Value string
}

// SetLastName replaces the last name.
type SetLastName struct {
	Value string
}

// SetPhoneNumber replaces the phone number.
type SetPhoneNumber struct {
	Value string
}

// SetEmail replaces the email.
type SetEmail struct {
	Value string
}

// Unknown marks a token that is not a recognized flag/value pair.
// It applies as a no-op.
type Unknown struct {
	Token string
}

func (e SetFirstName) apply(c domain.Contact) domain.Contact {
	c.FirstName = e.Value
	return c
}

func (e SetLastName) apply(c domain.Contact) domain.Contact {
	c.LastName = e.Value
	return c
}

func (e SetPhoneNumber) apply(c domain.Contact) domain.Contact {
	c.PhoneNumber = e.Value
	return c
}

func (e SetEmail) apply(c domain.Contact) domain.Contact {
	c.Email = e.Value
	return c
}

func (Unknown) apply(c domain.Contact) domain.Contact { return c }

// ParseEdits consumes flag/value pairs from the front of tokens, preserving
// encounter order. The first token that is not part of a recognized pair
// stops parsing: everything accumulated so far is discarded and only
// Unknown(token) is returned.
func ParseEdits(tokens []string) []FieldEdit {
	var edits []FieldEdit
	for len(tokens) > 0 {
		if len(tokens) >= 2 {
			switch tokens[0] {
			case "--first-name":
				edits = append(edits, SetFirstName{Value: tokens[1]})
				tokens = tokens[2:]
				continue
			case "--last-name":
				edits = append(edits, SetLastName{Value: tokens[1]})
				tokens = tokens[2:]
				continue
			case "--phone-number":
				edits = append(edits, SetPhoneNumber{Value: tokens[1]})
				tokens = tokens[2:]
				continue
			case "--email":
				edits = append(edits, SetEmail{Value: tokens[1]})
				tokens = tokens[2:]
				continue
			}
		}
		return []FieldEdit{Unknown{Token: tokens[0]}}
	}
	return edits
}

// ApplyEdits folds edits over c, left to right. Unknown edits are skipped.
func ApplyEdits(c domain.Contact, edits []FieldEdit) domain.Contact {
	for _, e := range edits {
		c = e.apply(c)
	}
	return c
}
