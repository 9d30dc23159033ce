package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abook/internal/store"
)

func TestVault_SealOpen_RoundTrip(t *testing.T) {
	s := store.NewVaultFileStore(t.TempDir())
	lines := []string{
		"alice|Alice|Liddell|111|alice@example.com",
		"bob|Bob|Builder|222|bob@example.com",
	}

	require.NoError(t, s.Seal("pass", lines))

	got, ok, err := s.Open("pass")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, lines, got)
}

func TestVault_WrongPassphrase_Fails(t *testing.T) {
	s := store.NewVaultFileStore(t.TempDir())

	require.NoError(t, s.Seal("correct", []string{"alice|Alice|Liddell|111|a@b.com"}))

	_, _, err := s.Open("wrong")
	require.Error(t, err)
}

func TestVault_OpenWithoutVault(t *testing.T) {
	s := store.NewVaultFileStore(t.TempDir())

	lines, ok, err := s.Open("pass")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, lines)
}

func TestVault_EmptyBook(t *testing.T) {
	s := store.NewVaultFileStore(t.TempDir())

	require.NoError(t, s.Seal("pass", nil))

	lines, ok, err := s.Open("pass")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, lines)
}
