package dto

import "time"

// LoginRequest is the local-credential login body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ExchangeCodeRequest carries the Google OAuth authorization code from the
// browser client.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// TokenResponse returns a minted bearer token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// MeResponse is the caller's resolved identity.
type MeResponse struct {
	UID    string `json:"uid"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}
