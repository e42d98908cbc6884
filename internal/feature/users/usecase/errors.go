// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when a write collides with another
	// user's name, title or description.
	ErrUserAlreadyExists = errors.New("user already exist")
)
