package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_IsFreshAndDirty(t *testing.T) {
	s := New()
	require.NotEmpty(t, s.ID)
	require.True(t, s.Fresh())
	require.True(t, s.Dirty())
}

func TestNew_IDsAreUnique(t *testing.T) {
	require.NotEqual(t, New().ID, New().ID)
}

func TestUserID_RoundTrip(t *testing.T) {
	s := &Session{ID: "s1", Values: map[string]string{}}
	require.Empty(t, s.UserID())
	require.False(t, s.Dirty())

	s.SetUserID("u1")
	require.Equal(t, "u1", s.UserID())
	require.True(t, s.Dirty())
}

func TestDelete_OnlyMarksDirtyWhenPresent(t *testing.T) {
	s := &Session{ID: "s1", Values: map[string]string{"k": "v"}}
	s.Delete("missing")
	require.False(t, s.Dirty())

	s.Delete("k")
	require.True(t, s.Dirty())
	require.Empty(t, s.Get("k"))
}

func TestGet_NilSessionIsSafe(t *testing.T) {
	var s *Session
	require.Empty(t, s.Get("anything"))
	require.False(t, s.Dirty())
}
