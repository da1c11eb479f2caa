package auth

import "context"

// Service defines the interface for authentication-related business logic.
type Service interface {
	// Login checks the credentials and returns a signed token.
	Login(ctx context.Context, email, password string) (string, error)

	// Verify parses and validates a token, returning the caller's identity.
	Verify(token string) (*Identity, error)
}

// Identity is the authenticated caller extracted from a token.
type Identity struct {
	UserID  string
	IsStaff bool
}
