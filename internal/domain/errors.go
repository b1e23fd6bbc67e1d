package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrEmptyCatalog       = errors.New("meal catalog is empty")
)

// IsInvalidProfile reports whether err carries profile field errors.
func IsInvalidProfile(err error) bool {
	var target *InvalidProfileError
	return errors.As(err, &target)
}
