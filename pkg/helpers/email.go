package helpers

import "strings"

// NormalizeEmail lowercases and trims an email address. The login handler
// and the auth service both run inputs through this before any lookup so
// the two layers can never drift apart.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
