// Package usecase implements the account business logic and orchestrates account domain operations.
package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/recipes/internal/account/domain"
	authService "github.com/allisson/recipes/internal/auth/service"
	"github.com/allisson/recipes/internal/database"
	appValidation "github.com/allisson/recipes/internal/validation"
)

// RegisterAccountInput contains the input data for account registration
type RegisterAccountInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateAccountInput contains the input data for an account update
type UpdateAccountInput struct {
	Password string `json:"password"`
}

// UseCase defines the interface for account business logic operations
type UseCase interface {
	Register(ctx context.Context, input RegisterAccountInput) (*domain.Account, error)
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	Update(ctx context.Context, id int64, input UpdateAccountInput) (*domain.Account, error)
	Delete(ctx context.Context, id int64) error
}

// AccountRepository interface defines account repository operations
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id int64) (*domain.Account, error)
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	Update(ctx context.Context, account *domain.Account) error
	Delete(ctx context.Context, id int64) error
}

// AccountUseCase handles account-related business logic
type AccountUseCase struct {
	txManager   database.TxManager
	accountRepo AccountRepository
	passwords   authService.PasswordService
}

// NewAccountUseCase creates a new AccountUseCase
func NewAccountUseCase(
	txManager database.TxManager,
	accountRepo AccountRepository,
	passwords authService.PasswordService,
) *AccountUseCase {
	return &AccountUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		passwords:   passwords,
	}
}

// validateRegisterAccountInput validates the registration input using jellydator/validation
func (uc *AccountUseCase) validateRegisterAccountInput(input RegisterAccountInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Username,
			validation.Required.Error("username is required"),
			appValidation.NotBlank,
			appValidation.Username,
			validation.Length(3, 64).Error("username must be between 3 and 64 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

// validateUpdateAccountInput validates the update input
func (uc *AccountUseCase) validateUpdateAccountInput(input UpdateAccountInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be between 8 and 128 characters"),
			appValidation.PasswordStrength{
				MinLength:     8,
				RequireUpper:  true,
				RequireLower:  true,
				RequireNumber: true,
			},
		),
	)
	return appValidation.WrapValidationError(err)
}

// Register creates a new account with a hashed password
func (uc *AccountUseCase) Register(ctx context.Context, input RegisterAccountInput) (*domain.Account, error) {
	if err := uc.validateRegisterAccountInput(input); err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     strings.TrimSpace(strings.ToLower(input.Username)),
		PasswordHash: hashedPassword,
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.accountRepo.Create(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// GetByID retrieves an account by ID
func (uc *AccountUseCase) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// GetByUsername retrieves an account by username
func (uc *AccountUseCase) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return uc.accountRepo.GetByUsername(ctx, username)
}

// Update replaces the account password
func (uc *AccountUseCase) Update(ctx context.Context, id int64, input UpdateAccountInput) (*domain.Account, error) {
	if err := uc.validateUpdateAccountInput(input); err != nil {
		return nil, err
	}

	account, err := uc.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := uc.passwords.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	account.PasswordHash = hashedPassword

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.accountRepo.Update(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// Delete removes the account
func (uc *AccountUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		return uc.accountRepo.Delete(ctx, id)
	})
}
