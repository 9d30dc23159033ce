package domain

import "fmt"

// DuplicateKeyError is returned when an add would reuse an existing username.
type DuplicateKeyError struct {
	Username string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("contact %q already exists", e.Username)
}

// NotFoundError is returned when an update targets a username that is not
// in the book.
type NotFoundError struct {
	Username string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no contact %q", e.Username)
}

// MalformedRecordError reports a stored line that does not decode into a
// contact. It aborts the whole operation that tried to load it.
type MalformedRecordError struct {
	Line string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed contact record %q", e.Line)
}

// InvalidFieldError reports a field value that cannot be stored, such as an
// empty username or a value containing the field delimiter.
type InvalidFieldError struct {
	Field string
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
}
