// Package hash provides bcrypt password hashing.
package hash

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt cost factor used for new hashes.
const DefaultCost = 10

// ErrMismatch indicates password verification failed.
var ErrMismatch = errors.New("hash: password does not match")

// Hasher hashes and verifies passwords.
type Hasher struct {
	cost int
}

// NewHasher creates a hasher with the given bcrypt cost.
// A cost outside bcrypt's valid range falls back to DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash generates a salted bcrypt hash of the password.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("hash: password cannot be empty")
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash: generate: %w", err)
	}
	return string(b), nil
}

// Verify checks the password against an encoded hash.
// Returns ErrMismatch when the password is wrong.
func (h *Hasher) Verify(password, encoded string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("hash: compare: %w", err)
	}
	return nil
}
