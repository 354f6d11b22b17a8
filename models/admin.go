package models

import "time"

// AdminLoginRequest is the request to login
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=1"`
}

// AdminLoginResponse is the response after login
type AdminLoginResponse struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AdminResponse describes the signed-in admin
type AdminResponse struct {
	Email string `json:"email"`
}
