package command_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"abook/internal/command"
	"abook/internal/domain"
)

func TestParseEdits_PairsInEncounterOrder(t *testing.T) {
	got := command.ParseEdits([]string{
		"--first-name", "Jo",
		"--last-name", "Nes",
		"--phone-number", "123",
		"--email", "jo@example.com",
	})

	assert.Equal(t, []command.FieldEdit{
		command.SetFirstName{Value: "Jo"},
		command.SetLastName{Value: "Nes"},
		command.SetPhoneNumber{Value: "123"},
		command.SetEmail{Value: "jo@example.com"},
	}, got)
}

func TestParseEdits_UnknownDiscardsAccumulated(t *testing.T) {
	got := command.ParseEdits([]string{"--first-name", "Jo", "--bogus"})

	assert.Equal(t, []command.FieldEdit{command.Unknown{Token: "--bogus"}}, got)
}

func TestParseEdits_TrailingFlagWithoutValue(t *testing.T) {
	got := command.ParseEdits([]string{"--email"})

	assert.Equal(t, []command.FieldEdit{command.Unknown{Token: "--email"}}, got)
}

func TestParseEdits_Empty(t *testing.T) {
	assert.Empty(t, command.ParseEdits(nil))
}

func TestApplyEdits_LaterEditWins(t *testing.T) {
	c := domain.Contact{Username: "alice", PhoneNumber: "111"}

	got := command.ApplyEdits(c, []command.FieldEdit{
		command.SetPhoneNumber{Value: "222"},
		command.SetPhoneNumber{Value: "333"},
	})

	assert.Equal(t, "333", got.PhoneNumber)
	assert.Equal(t, "alice", got.Username)
}

func TestApplyEdits_UnknownIsNoOp(t *testing.T) {
	c := domain.Contact{Username: "alice", Email: "alice@example.com"}

	got := command.ApplyEdits(c, []command.FieldEdit{command.Unknown{Token: "--bogus"}})

	assert.Equal(t, c, got)
}

func TestApplyEdits_DoesNotMutateInput(t *testing.T) {
	c := domain.Contact{Username: "alice", FirstName: "Alice"}

	_ = command.ApplyEdits(c, []command.FieldEdit{command.SetFirstName{Value: "Alicia"}})

	assert.Equal(t, "Alice", c.FirstName)
}
