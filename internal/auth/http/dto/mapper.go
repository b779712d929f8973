// Package dto provides data transfer objects for the auth HTTP layer.
package dto

import (
	"github.com/allisson/recipes/internal/auth/usecase"
)

// ToLoginInput converts a LoginRequest DTO to a LoginInput use case input
func ToLoginInput(req LoginRequest) usecase.LoginInput {
	return usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	}
}

// ToLoginResponse converts a LoginOutput to a LoginResponse DTO
func ToLoginResponse(output *usecase.LoginOutput) LoginResponse {
	return LoginResponse{
		Token:     output.Token,
		TokenType: "Bearer",
		ExpiresAt: output.ExpiresAt,
	}
}
