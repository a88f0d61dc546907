package auth

import (
	"context"
	"errors"
)

// ErrInvalidCredentials is returned when the login check fails. The API
// responds 401 without distinguishing username from password mismatches.
var ErrInvalidCredentials = errors.New("auth: invalid credentials")

// Service defines the admin authentication logic. This is a demo
// credential check for the management panel, not an account system: a
// single configured username/password pair, and nothing else consults the
// issued token.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
}
