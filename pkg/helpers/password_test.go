package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("password123")
	require.NoError(t, err)
	require.NotEqual(t, "password123", hash)
	require.True(t, strings.HasPrefix(hash, "$2"))

	require.True(t, h.Compare("password123", hash))
	require.False(t, h.Compare("Password123", hash))
	require.False(t, h.Compare("", hash))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	h := NewBcryptHasher()
	a, err := h.Hash("password123")
	require.NoError(t, err)
	b, err := h.Hash("password123")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestBcryptHasher_ZeroValueUsesDefaultCost(t *testing.T) {
	var h BcryptHasher
	hash, err := h.Hash("secret")
	require.NoError(t, err)
	require.True(t, h.Compare("secret", hash))
}
