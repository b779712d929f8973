// Package dto provides data transfer objects for the account HTTP layer.
package dto

import (
	"time"
)

// AccountResponse represents the API response for an account
// It excludes the password hash and provides a clean external
// representation of the account domain model
type AccountResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
