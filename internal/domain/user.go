package domain

import "gorm.io/gorm" // GORM ORM library

// User Model
type User struct {
	ID           uint         `gorm:"primaryKey"`                                     // Primary key
	Username     string       `gorm:"uniqueIndex;size:191;not null"`                  // Unique username
	PasswordHash PasswordHash `gorm:"column:password_hash;size:255;not null" json:"-"` // Write-only bcrypt hash
	ImageURL     string       `gorm:"size:512"`                                       // Avatar URL, plain string
	Bio          string       `gorm:"type:text"`                                      // Free-form bio
	Recipes      []Recipe     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`  // One-to-many relationship with Recipe
}

// SetPassword stores a hash of plaintext on the user
func (u *User) SetPassword(plaintext string) error {
	return u.PasswordHash.SetPassword(plaintext)
}

// Authenticate reports whether plaintext is the user's password
func (u *User) Authenticate(plaintext string) bool {
	return u.PasswordHash.Authenticate(plaintext)
}

// BeforeCreate rejects invalid users on every insert path
func (u *User) BeforeCreate(tx *gorm.DB) error {
	return ValidateUser(u)
}

// PublicUser is the subset of User fields safe to return to clients
type PublicUser struct {
	ID       uint   `json:"id"`        // User ID
	Username string `json:"username"`  // Username
	ImageURL string `json:"image_url"` // Avatar URL
	Bio      string `json:"bio"`       // Bio
}

// Public returns the client-safe view of the user
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
		ImageURL: u.ImageURL,
		Bio:      u.Bio,
	}
}
