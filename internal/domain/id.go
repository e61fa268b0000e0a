package domain

import (
	"regexp"

	"github.com/google/uuid"
)

// idPattern is the 8-4-4-4-12 hexadecimal UUID shape, case-insensitive.
var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// NewID generates a version-4 UUID string.
func NewID() string {
	return uuid.New().String()
}

// ValidateID checks that id matches the UUID shape accepted by every
// id-taking operation. Stricter than uuid.Parse, which also accepts URN and
// braced forms.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return ErrInvalidID
	}
	return nil
}
