package dto

import "time"

// CreateUserRequest represents the API request for registering a user
type CreateUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

// UserResponse represents a stored user
type UserResponse struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
