// Package usecase implements the authentication and authorization business logic.
package usecase

import (
	"context"

	"github.com/allisson/recipes/internal/auth/domain"
	"github.com/allisson/recipes/internal/auth/service"

	accountDomain "github.com/allisson/recipes/internal/account/domain"
	apperrors "github.com/allisson/recipes/internal/errors"
)

// LoginInput contains the credentials presented at login
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginOutput carries the issued token and its expiration
type LoginOutput struct {
	Token     string
	ExpiresAt int64
}

// UseCase defines the interface for authentication business logic operations
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}

// AccountLookup resolves token subjects to accounts. It is satisfied by the
// account use case and keeps this package free of a repository dependency.
type AccountLookup interface {
	GetByUsername(ctx context.Context, username string) (*accountDomain.Account, error)
}

// AuthUseCase handles login and request authentication
type AuthUseCase struct {
	codec     service.TokenCodec
	passwords service.PasswordService
	accounts  AccountLookup
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	codec service.TokenCodec,
	passwords service.PasswordService,
	accounts AccountLookup,
) *AuthUseCase {
	return &AuthUseCase{
		codec:     codec,
		passwords: passwords,
		accounts:  accounts,
	}
}

// Login verifies the credentials and issues a signed token for the account.
// Unknown usernames and wrong passwords report the same error so the response
// does not reveal which accounts exist.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	account, err := uc.accounts.GetByUsername(ctx, input.Username)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !uc.passwords.Compare(input.Password, account.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := uc.codec.Issue(account.Username)
	if err != nil {
		return nil, err
	}

	expiresAt, err := uc.codec.ExpiresAt(token)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// Authenticate resolves a bearer token to the principal it was issued for.
//
// The checks run in a fixed order: the signature first, then the subject
// lookup, then the expiration. A well-signed token for a deleted account
// reports ErrUnknownPrincipal rather than ErrInvalidToken, so the caller can
// distinguish a bad token (401) from a valid token with no account (403).
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	claims, err := uc.codec.DecodeClaims(token)
	if err != nil {
		return nil, err
	}

	account, err := uc.accounts.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrUnknownPrincipal
		}
		return nil, err
	}

	if !uc.codec.IsValid(token, account.Username) {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Principal{
		AccountID: account.ID,
		Username:  account.Username,
	}, nil
}
