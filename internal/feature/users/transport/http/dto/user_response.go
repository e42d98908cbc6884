// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

import (
	"time"

	"user_backend/internal/feature/users/domain/entity"
)

// UserResponse is the public projection of a user exposed by the API.
// The password digest is deliberately absent and must never be added.
type UserResponse struct {
	ID               uint   `json:"id"`
	Name             string `json:"name"`
	RegistrationTime string `json:"registration_time"`
	Title            string `json:"title"`
	Description      string `json:"description"`
}

// NewUserResponse builds the projection from a domain user.
// The registration time is serialized as an ISO-8601 (RFC 3339) string.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		RegistrationTime: u.RegistrationTime.Format(time.RFC3339),
		Title:            u.Title,
		Description:      u.Description,
	}
}
