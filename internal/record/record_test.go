package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abook/internal/domain"
	"abook/internal/record"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	c := domain.Contact{
		Username:    "alice",
		FirstName:   "Alice",
		LastName:    "Liddell",
		PhoneNumber: "0400111222",
		Email:       "alice@example.com",
	}

	got, err := record.Decode(record.Encode(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestEncode_FieldOrder(t *testing.T) {
	c := domain.Contact{
		Username:    "alice",
		FirstName:   "Alice",
		LastName:    "Liddell",
		PhoneNumber: "0400111222",
		Email:       "alice@example.com",
	}

	assert.Equal(t, "alice|Alice|Liddell|0400111222|alice@example.com", record.Encode(c))
}

func TestDecode_EmptyFieldsSurvive(t *testing.T) {
	got, err := record.Decode("bob||||")
	require.NoError(t, err)
	assert.Equal(t, domain.Contact{Username: "bob"}, got)
}

func TestDecode_Malformed(t *testing.T) {
	for _, line := range []string{
		"",
		"alice",
		"alice|Alice|Liddell|0400111222",
		"alice|Alice|Liddell|0400111222|a@b.com|extra",
	} {
		_, err := record.Decode(line)

		var malformed *domain.MalformedRecordError
		require.ErrorAs(t, err, &malformed, "line %q", line)
		assert.Equal(t, line, malformed.Line)
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, record.Validate(domain.Contact{Username: "alice"}))
}

func TestValidate_RejectsEmptyUsername(t *testing.T) {
	err := record.Validate(domain.Contact{FirstName: "Alice"})

	var invalid *domain.InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "username", invalid.Field)
}

func TestValidate_RejectsDelimiterInField(t *testing.T) {
	err := record.Validate(domain.Contact{Username: "alice", Email: "a|b@example.com"})

	var invalid *domain.InvalidFieldError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "email", invalid.Field)
	assert.Equal(t, "a|b@example.com", invalid.Value)
}
