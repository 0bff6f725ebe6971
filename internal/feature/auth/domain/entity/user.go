// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user, assigned by the store
	// on creation and stable for the row's lifetime.
	ID uint `gorm:"primaryKey"`

	// Username is the user's display name.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address used for authentication.
	// It is stored trimmed and lower-cased and must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}

// Identity is the public projection of a User that is safe to return to a
// client after login. It never carries the username or the password hash.
type Identity struct {
	ID    uint
	Email string
}
