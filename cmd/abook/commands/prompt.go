package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"abook/internal/domain"
)

// promptContact reads a draft contact from r, one field per line. Values
// are trimmed; validation happens in the store, not here.
func promptContact(r *bufio.Reader, w io.Writer) (domain.Contact, error) {
	var c domain.Contact
	fields := []struct {
		label string
		dst   *string
	}{
		{"Username", &c.Username},
		{"First name", &c.FirstName},
		{"Last name", &c.LastName},
		{"Phone number", &c.PhoneNumber},
		{"Email", &c.Email},
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%s: ", f.label)
		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return domain.Contact{}, err
		}
		*f.dst = strings.TrimSpace(line)
	}
	return c, nil
}
