// Package password wraps bcrypt for staff credential storage.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword = errors.New("password must not be empty")
	ErrMismatch      = errors.New("password does not match")
)

// Hash derives a bcrypt hash for the staff table. Account seeding goes
// through here so every stored hash shares the same cost.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify checks a login attempt against the stored hash. A mismatch comes
// back as ErrMismatch; any other error means the stored hash is malformed.
func Verify(stored, plain string) error {
	if stored == "" || plain == "" {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
