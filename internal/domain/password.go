package domain

import (
	"database/sql/driver" // Valuer interface for persistence
	"errors"              // Sentinel errors
	"fmt"                 // Error wrapping

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// ErrPasswordHashUnreadable is returned by every attempt to read a stored hash
var ErrPasswordHashUnreadable = errors.New("password hashes may not be viewed")

// redacted is what formatting a PasswordHash prints
const redacted = "[REDACTED]"

// PasswordHash is a write-only bcrypt hash. The only ways in are SetPassword and
// Scan (loading from the database); the only way out is Value, used by the SQL driver.
type PasswordHash struct {
	hash []byte // bcrypt hash, never exposed
}

// SetPassword hashes plaintext and stores the result
func (p *PasswordHash) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		// bcrypt rejects passwords longer than 72 bytes
		return &ValidationError{Field: "password", Message: err.Error()}
	}
	p.hash = hash
	return nil
}

// Authenticate reports whether plaintext matches the stored hash
func (p PasswordHash) Authenticate(plaintext string) bool {
	if len(p.hash) == 0 {
		return false // An unset hash never authenticates
	}
	return bcrypt.CompareHashAndPassword(p.hash, []byte(plaintext)) == nil
}

// IsSet reports whether a hash has been stored
func (p PasswordHash) IsSet() bool {
	return len(p.hash) > 0
}

// Hash always fails: hashes are write-only
func (p PasswordHash) Hash() (string, error) {
	return "", ErrPasswordHashUnreadable
}

// MarshalJSON always fails so a hash can never end up in a response body
func (p PasswordHash) MarshalJSON() ([]byte, error) {
	return nil, ErrPasswordHashUnreadable
}

// String keeps the hash out of logs and fmt output
func (p PasswordHash) String() string {
	return redacted
}

// GoString covers the %#v verb
func (p PasswordHash) GoString() string {
	return redacted
}

// Value implements driver.Valuer so gorm can persist the hash
func (p PasswordHash) Value() (driver.Value, error) {
	return string(p.hash), nil
}

// Scan implements sql.Scanner so gorm can load the hash
func (p *PasswordHash) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		p.hash = nil
	case []byte:
		p.hash = append([]byte(nil), v...) // Copy, the driver may reuse the buffer
	case string:
		p.hash = []byte(v)
	default:
		return fmt.Errorf("scan password hash: unsupported type %T", src)
	}
	return nil
}

// GormDataType tells gorm which column type to migrate
func (PasswordHash) GormDataType() string {
	return "string"
}
