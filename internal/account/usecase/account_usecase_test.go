package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/recipes/internal/account/domain"
	apperrors "github.com/allisson/recipes/internal/errors"
)

// MockTxManager is a mock implementation of database.TxManager
type MockTxManager struct {
	mock.Mock
}

func (m *MockTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if args.Get(0) != nil {
		return args.Error(0)
	}
	// Execute the function to test the logic inside
	return fn(ctx)
}

// MockAccountRepository is a mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	if args.Error(0) == nil {
		// Set the ID to simulate database behavior
		account.ID = 1
	}
	return args.Error(0)
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPasswordService is a mock implementation of authService.PasswordService
type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordService) Compare(plainPassword string, hashedPassword string) bool {
	args := m.Called(plainPassword, hashedPassword)
	return args.Bool(0)
}

func newAccountUseCase() (*AccountUseCase, *MockTxManager, *MockAccountRepository, *MockPasswordService) {
	txManager := &MockTxManager{}
	accountRepo := &MockAccountRepository{}
	passwords := &MockPasswordService{}
	return NewAccountUseCase(txManager, accountRepo, passwords), txManager, accountRepo, passwords
}

func TestAccountUseCase_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		useCase, txManager, accountRepo, passwords := newAccountUseCase()
		ctx := context.Background()

		passwords.On("Hash", "Feijoada42").Return("argon2id$hash", nil)
		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		accountRepo.On("Create", ctx, mock.AnythingOfType("*domain.Account")).Return(nil)

		account, err := useCase.Register(ctx, RegisterAccountInput{
			Username: "maria",
			Password: "Feijoada42",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), account.ID)
		assert.Equal(t, "maria", account.Username)
		assert.Equal(t, "argon2id$hash", account.PasswordHash)
		accountRepo.AssertExpectations(t)
	})

	t.Run("invalid input", func(t *testing.T) {
		useCase, _, accountRepo, _ := newAccountUseCase()

		tests := []struct {
			name  string
			input RegisterAccountInput
		}{
			{"empty username", RegisterAccountInput{Username: "", Password: "Feijoada42"}},
			{"uppercase username", RegisterAccountInput{Username: "Maria", Password: "Feijoada42"}},
			{"short password", RegisterAccountInput{Username: "maria", Password: "Fe1"}},
			{"weak password", RegisterAccountInput{Username: "maria", Password: "feijoada"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := useCase.Register(context.Background(), tt.input)
				assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
			})
		}

		accountRepo.AssertNotCalled(t, "Create")
	})

	t.Run("duplicate username", func(t *testing.T) {
		useCase, txManager, accountRepo, passwords := newAccountUseCase()
		ctx := context.Background()

		passwords.On("Hash", "Feijoada42").Return("argon2id$hash", nil)
		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		accountRepo.On("Create", ctx, mock.AnythingOfType("*domain.Account")).
			Return(domain.ErrAccountAlreadyExists)

		_, err := useCase.Register(ctx, RegisterAccountInput{
			Username: "maria",
			Password: "Feijoada42",
		})

		assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)
		assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	})
}

func TestAccountUseCase_GetByID(t *testing.T) {
	useCase, _, accountRepo, _ := newAccountUseCase()
	ctx := context.Background()

	expected := &domain.Account{ID: 42, Username: "maria"}
	accountRepo.On("GetByID", ctx, int64(42)).Return(expected, nil)

	account, err := useCase.GetByID(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, expected, account)
}

func TestAccountUseCase_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		useCase, txManager, accountRepo, passwords := newAccountUseCase()
		ctx := context.Background()

		existing := &domain.Account{ID: 42, Username: "maria", PasswordHash: "old"}
		accountRepo.On("GetByID", ctx, int64(42)).Return(existing, nil)
		passwords.On("Hash", "Moqueca2024").Return("argon2id$new", nil)
		txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
		accountRepo.On("Update", ctx, mock.AnythingOfType("*domain.Account")).Return(nil)

		account, err := useCase.Update(ctx, 42, UpdateAccountInput{Password: "Moqueca2024"})

		require.NoError(t, err)
		assert.Equal(t, "argon2id$new", account.PasswordHash)
	})

	t.Run("unknown account", func(t *testing.T) {
		useCase, _, accountRepo, _ := newAccountUseCase()
		ctx := context.Background()

		accountRepo.On("GetByID", ctx, int64(42)).Return(nil, domain.ErrAccountNotFound)

		_, err := useCase.Update(ctx, 42, UpdateAccountInput{Password: "Moqueca2024"})

		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})

	t.Run("weak password", func(t *testing.T) {
		useCase, _, accountRepo, _ := newAccountUseCase()

		_, err := useCase.Update(context.Background(), 42, UpdateAccountInput{Password: "short"})

		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
		accountRepo.AssertNotCalled(t, "GetByID")
	})
}

func TestAccountUseCase_Delete(t *testing.T) {
	useCase, txManager, accountRepo, _ := newAccountUseCase()
	ctx := context.Background()

	txManager.On("WithTx", ctx, mock.AnythingOfType("func(context.Context) error")).Return(nil)
	accountRepo.On("Delete", ctx, int64(42)).Return(nil)

	assert.NoError(t, useCase.Delete(ctx, 42))
	accountRepo.AssertExpectations(t)
}
