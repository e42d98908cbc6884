// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered user account.
// The three text attributes are globally unique; the store's constraints are
// the source of truth for conflicts.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Name is the user's display name.
	// It must be unique across all users.
	Name string `gorm:"uniqueIndex;size:100;not null"`

	// Password is the bcrypt digest of the user's password.
	// This must never store plaintext passwords.
	Password string `gorm:"size:100;not null"`

	// RegistrationTime is the timestamp when the account was created.
	// It is assigned on insert and never updated afterwards.
	RegistrationTime time.Time `gorm:"autoCreateTime;<-:create"`

	// Title must be unique across all users.
	Title string `gorm:"unique;size:200;not null"`

	// Description must be unique across all users.
	Description string `gorm:"unique;size:5000;not null"`
}

// TableName maps the entity to the app_users table.
func (User) TableName() string {
	return "app_users"
}
