package commands

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"abook/internal/command"
	"abook/internal/domain"
)

const usage = `Usage:
  add                           create a contact (prompts for each field)
  remove <username>             delete a contact
  search id <username>          look up one contact by username
  search name <name>            match contacts on first or last name
  search email <email>          match contacts on email
  search number <number>        match contacts on phone number
  list                          print every contact
  update <username> [options]   edit fields of an existing contact
        --first-name <v>  --last-name <v>  --phone-number <v>  --email <v>
  help                          show this text
`

// Dispatcher maps a parsed Command onto a contact store operation plus a
// presentation step. It is the only layer that turns store errors into
// display text; the store itself never prints.
type Dispatcher struct {
	Contacts domain.ContactStore
	Out      io.Writer
	Draft    func() (domain.Contact, error) // collects a new contact for add
}

// Dispatch executes cmd. Recoverable store failures (duplicate key, missing
// target, bad field value) are rendered as one-line messages so a failed
// operation does not abort an interactive session; anything else, including
// a malformed record on disk, propagates.
func (d *Dispatcher) Dispatch(cmd command.Command) error {
	switch c := cmd.(type) {
	case command.Add:
		draft, err := d.Draft()
		if err != nil {
			return err
		}
		username, err := d.Contacts.Add(draft)
		if err != nil {
			return d.report(err)
		}
		fmt.Fprintf(d.Out, "Added %s\n", username)

	case command.Remove:
		if err := d.Contacts.Remove(c.Username); err != nil {
			return d.report(err)
		}
		fmt.Fprintf(d.Out, "Removed %s\n", c.Username)

	case command.SearchByID:
		found, ok, err := d.Contacts.FindByUsername(c.Username)
		if err != nil {
			return d.report(err)
		}
		if !ok {
			fmt.Fprintf(d.Out, "No contact %q\n", c.Username)
			return nil
		}
		d.printContacts([]domain.Contact{found})

	case command.SearchByName:
		return d.search(c.Name, d.Contacts.FindByName)

	case command.SearchByEmail:
		return d.search(c.Email, d.Contacts.FindByEmail)

	case command.SearchByNumber:
		return d.search(c.Number, d.Contacts.FindByPhoneNumber)

	case command.List:
		contacts, err := d.Contacts.ListAll()
		if err != nil {
			return d.report(err)
		}
		d.printContacts(contacts)

	case command.Update:
		if tok, bad := unknownEdit(c.Edits); bad {
			fmt.Fprintf(d.Out, "Ignoring unrecognized option %q\n", tok)
		}
		updated, err := d.Contacts.Update(c.Username, func(prev domain.Contact) domain.Contact {
			return command.ApplyEdits(prev, c.Edits)
		})
		if err != nil {
			return d.report(err)
		}
		fmt.Fprintf(d.Out, "Updated %s\n", updated.Username)
		d.printContacts([]domain.Contact{updated})

	case command.Help:
		fmt.Fprint(d.Out, usage)
	}
	return nil
}

func (d *Dispatcher) search(value string, find func(string) ([]domain.Contact, error)) error {
	contacts, err := find(value)
	if err != nil {
		return d.report(err)
	}
	if len(contacts) == 0 {
		fmt.Fprintf(d.Out, "No contacts matching %q\n", value)
		return nil
	}
	d.printContacts(contacts)
	return nil
}

// unknownEdit reports the offending token when edit parsing collapsed the
// option list to a single Unknown directive. The update still runs so a
// missing target is reported the same way as usual; the fold just applies
// no changes.
func unknownEdit(edits []command.FieldEdit) (string, bool) {
	for _, e := range edits {
		if u, ok := e.(command.Unknown); ok {
			return u.Token, true
		}
	}
	return "", false
}

// report prints recoverable store failures and propagates everything else.
func (d *Dispatcher) report(err error) error {
	var dup *domain.DuplicateKeyError
	var missing *domain.NotFoundError
	var invalid *domain.InvalidFieldError
	switch {
	case errors.As(err, &dup), errors.As(err, &missing), errors.As(err, &invalid):
		fmt.Fprintln(d.Out, err.Error())
		return nil
	default:
		return err
	}
}

func (d *Dispatcher) printContacts(contacts []domain.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(d.Out, "No contacts")
		return
	}
	w := tabwriter.NewWriter(d.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "USERNAME\tNAME\tPHONE\tEMAIL")
	for _, c := range contacts {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\n",
			c.Username, c.FirstName, c.LastName, c.PhoneNumber, c.Email)
	}
	_ = w.Flush()
}
