package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abook/internal/command"
	"abook/internal/domain"
	contactsvc "abook/internal/services/contact"
	"abook/internal/store"
)

func newDispatcherForTest(t *testing.T) (*Dispatcher, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	lines := store.NewFileLineStore(filepath.Join(t.TempDir(), "contacts.abook"))
	d := &Dispatcher{
		Contacts: contactsvc.New(lines),
		Out:      out,
		Draft: func() (domain.Contact, error) {
			return domain.Contact{
				Username:    "alice",
				FirstName:   "Alice",
				LastName:    "Liddell",
				PhoneNumber: "111",
				Email:       "alice@example.com",
			}, nil
		},
	}
	return d, out
}

func TestDispatch_AddThenList(t *testing.T) {
	d, out := newDispatcherForTest(t)

	require.NoError(t, d.Dispatch(command.Parse([]string{"add"})))
	assert.Contains(t, out.String(), "Added alice")

	out.Reset()
	require.NoError(t, d.Dispatch(command.Parse([]string{"list"})))
	assert.Contains(t, out.String(), "alice")
	assert.Contains(t, out.String(), "Alice Liddell")
}

func TestDispatch_DuplicateAddReportsWithoutFailing(t *testing.T) {
	d, out := newDispatcherForTest(t)

	require.NoError(t, d.Dispatch(command.Add{}))
	out.Reset()

	// A duplicate is recoverable: reported to the operator, not returned.
	require.NoError(t, d.Dispatch(command.Add{}))
	assert.Contains(t, out.String(), `contact "alice" already exists`)
}

func TestDispatch_UpdateThroughParsedEdits(t *testing.T) {
	d, out := newDispatcherForTest(t)

	require.NoError(t, d.Dispatch(command.Add{}))
	out.Reset()

	cmd := command.Parse([]string{"update", "alice", "--phone-number", "222"})
	require.NoError(t, d.Dispatch(cmd))
	assert.Contains(t, out.String(), "Updated alice")
	assert.Contains(t, out.String(), "222")
}

func TestDispatch_UpdateUnknownOptionIsNoticed(t *testing.T) {
	d, out := newDispatcherForTest(t)

	require.NoError(t, d.Dispatch(command.Add{}))
	out.Reset()

	require.NoError(t, d.Dispatch(command.Parse([]string{"update", "alice", "--first-name", "Jo", "--bogus"})))
	assert.Contains(t, out.String(), `Ignoring unrecognized option "--bogus"`)
	// The discarded edit must not have been applied.
	assert.Contains(t, out.String(), "Alice Liddell")
	assert.NotContains(t, out.String(), "Jo ")
}

func TestDispatch_UpdateMissingTargetReports(t *testing.T) {
	d, out := newDispatcherForTest(t)

	require.NoError(t, d.Dispatch(command.Parse([]string{"update", "bob", "--email", "b@c.com"})))
	assert.Contains(t, out.String(), `no contact "bob"`)
}

func TestDispatch_SearchNoMatches(t *testing.T) {
	d, out := newDispatcherForTest(t)

	require.NoError(t, d.Dispatch(command.Parse([]string{"search", "name", "Bob"})))
	assert.Contains(t, out.String(), `No contacts matching "Bob"`)
}

func TestDispatch_HelpPrintsUsage(t *testing.T) {
	d, out := newDispatcherForTest(t)

	require.NoError(t, d.Dispatch(command.Parse(nil)))
	assert.Contains(t, out.String(), "update <username>")
}
