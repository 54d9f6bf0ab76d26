package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct{ in, want string }{
		{"user@example.com", "user@example.com"},
		{"USER@Example.com", "user@example.com"},
		{"  User@EXAMPLE.COM\t", "user@example.com"},
		{" MiXeD@CaSe.Io ", "mixed@case.io"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, NormalizeEmail(tc.in))
	}
}
