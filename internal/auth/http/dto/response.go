// Package dto provides data transfer objects for the auth HTTP layer.
package dto

// LoginResponse represents the API response for a successful login
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresAt int64  `json:"expires_at"`
}
