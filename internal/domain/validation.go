package domain

import (
	"errors"       // Sentinel errors
	"strings"      // Blank checks
	"unicode/utf8" // Character counting
)

// MinInstructionsLength is the minimum number of characters in Recipe.Instructions
const MinInstructionsLength = 50

var (
	// ErrValidation matches every ValidationError via errors.Is
	ErrValidation = errors.New("validation failed")
	// ErrUsernameTaken is returned when a signup collides with an existing username
	ErrUsernameTaken = errors.New("username already taken")
)

// ValidationError describes a single rejected field
type ValidationError struct {
	Field   string // Name of the offending field
	Message string // Human readable reason
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// isBlank reports whether s is empty after trimming whitespace
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateUser checks a User before it is written
func ValidateUser(u *User) error {
	if isBlank(u.Username) {
		return &ValidationError{Field: "username", Message: "Username is required."}
	}
	if !u.PasswordHash.IsSet() {
		return &ValidationError{Field: "password", Message: "Password is required."}
	}
	return nil
}

// ValidateRecipe checks a Recipe before it is written
func ValidateRecipe(r *Recipe) error {
	if isBlank(r.Title) {
		return &ValidationError{Field: "title", Message: "Title is required."}
	}
	if utf8.RuneCountInString(r.Instructions) < MinInstructionsLength {
		return &ValidationError{Field: "instructions", Message: "Instructions must be at least 50 characters."}
	}
	if r.UserID == 0 {
		return &ValidationError{Field: "user_id", Message: "Recipe must belong to a user."}
	}
	return nil
}
