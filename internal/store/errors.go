package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound reports a lookup, update or delete against a missing id.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail reports a user insert colliding on the email unique index.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrDuplicateHeader reports a gallery insert/update colliding on the header unique index.
	ErrDuplicateHeader = errors.New("header already exists")
)

// isUniqueViolation recognizes unique-index failures across drivers. GORM
// translates them on postgres; sqlite surfaces the raw constraint message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
