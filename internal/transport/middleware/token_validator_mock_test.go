package middleware

import "github.com/google/uuid"

// mockTokenValidator implements tokenValidator with a func field.
type mockTokenValidator struct {
	validateFn func(token string) (uuid.UUID, string, error)
}

func (m *mockTokenValidator) ValidateAccessToken(token string) (uuid.UUID, string, error) {
	return m.validateFn(token)
}
