// Package dto provides data transfer objects for the account HTTP layer.
package dto

import (
	"github.com/allisson/recipes/internal/account/domain"
	"github.com/allisson/recipes/internal/account/usecase"
)

// ToRegisterAccountInput converts a RegisterAccountRequest DTO to a RegisterAccountInput use case input
func ToRegisterAccountInput(req RegisterAccountRequest) usecase.RegisterAccountInput {
	return usecase.RegisterAccountInput{
		Username: req.Username,
		Password: req.Password,
	}
}

// ToUpdateAccountInput converts an UpdateAccountRequest DTO to an UpdateAccountInput use case input
func ToUpdateAccountInput(req UpdateAccountRequest) usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		Password: req.Password,
	}
}

// ToAccountResponse converts a domain Account model to an AccountResponse DTO
// This enforces the boundary between internal domain models and external API contracts
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:        account.ID,
		Username:  account.Username,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
