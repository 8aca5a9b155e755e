package dto

import (
	"time"

	"github.com/SscSPs/acme_marketplace/internal/core/domain"
)

// LoginRequest carries user credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// RegisterRequest creates an inventor or patron account.
type RegisterRequest struct {
	Username string      `json:"username" binding:"required,min=3,max=60"`
	Password string      `json:"password" binding:"required,min=8,max=72"`
	Name     string      `json:"name" binding:"required,max=100"`
	Role     domain.Role `json:"role" binding:"required,oneof=INVENTOR PATRON"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	UserID    string      `json:"userID"`
	Username  string      `json:"username"`
	Name      string      `json:"name"`
	Role      domain.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Username:  u.Username,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User
func ToListUserResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
