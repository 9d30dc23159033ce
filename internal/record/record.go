// Package record implements the pipe-delimited line codec for contacts.
package record

import (
	"strings"

	"abook/internal/domain"
)

// Delimiter separates fields within one encoded line.
const Delimiter = "|"

const fieldCount = 5

// Encode renders c as one line: username|first|last|phone|email.
// Field values are not escaped; Validate rejects values that would corrupt
// the encoding before they reach disk.
func Encode(c domain.Contact) string {
	return strings.Join([]string{
		c.Username,
		c.FirstName,
		c.LastName,
		c.PhoneNumber,
		c.Email,
	}, Delimiter)
}

// Decode parses one stored line back into a Contact. The line must split
// into exactly five fields.
func Decode(line string) (domain.Contact, error) {
	parts := strings.Split(line, Delimiter)
	if len(parts) != fieldCount {
		return domain.Contact{}, &domain.MalformedRecordError{Line: line}
	}
	return domain.Contact{
		Username:    parts[0],
		FirstName:   parts[1],
		LastName:    parts[2],
		PhoneNumber: parts[3],
		Email:       parts[4],
	}, nil
}

// Validate rejects contacts that cannot round-trip through the line format:
// an empty username, or any field containing the delimiter.
func Validate(c domain.Contact) error {
	if c.Username == "" {
		return &domain.InvalidFieldError{Field: "username", Value: c.Username}
	}
	for _, f := range []struct {
		name  string
		value string
	}{
		{"username", c.Username},
		{"first name", c.FirstName},
		{"last name", c.LastName},
		{"phone number", c.PhoneNumber},
		{"email", c.Email},
	} {
		if strings.Contains(f.value, Delimiter) {
			return &domain.InvalidFieldError{Field: f.name, Value: f.value}
		}
	}
	return nil
}
