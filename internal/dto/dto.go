// Package dto holds the JSON contracts shared by the API server and the client.
package dto

import "time"

type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type SetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token    string `json:"token"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// MessageResponse is the generic body for both successes and handled errors.
type MessageResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionUser is the user context kept on the client next to the token.
type SessionUser struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}
