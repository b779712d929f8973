package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/recipes/internal/account/domain"
)

func TestPostgreSQLAccountRepository_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO accounts").
			WithArgs("maria", "argon2id$hash").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

		repo := NewPostgreSQLAccountRepository(db)
		account := &domain.Account{Username: "maria", PasswordHash: "argon2id$hash"}

		err = repo.Create(context.Background(), account)

		assert.NoError(t, err)
		assert.Equal(t, int64(1), account.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate username", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO accounts").
			WithArgs("maria", "argon2id$hash").
			WillReturnError(assert.AnError)

		repo := NewPostgreSQLAccountRepository(db)
		account := &domain.Account{Username: "maria", PasswordHash: "argon2id$hash"}

		err = repo.Create(context.Background(), account)

		assert.Error(t, err)
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("INSERT INTO accounts").
			WithArgs("maria", "argon2id$hash").
			WillReturnError(errDuplicateKey{})

		repo := NewPostgreSQLAccountRepository(db)
		account := &domain.Account{Username: "maria", PasswordHash: "argon2id$hash"}

		err = repo.Create(context.Background(), account)

		assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)
	})
}

// errDuplicateKey mimics the lib/pq unique violation message.
type errDuplicateKey struct{}

func (errDuplicateKey) Error() string {
	return `pq: duplicate key value violates unique constraint "accounts_username_key"`
}

func TestPostgreSQLAccountRepository_GetByID(t *testing.T) {
	columns := []string{"id", "username", "password_hash", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery("SELECT id, username, password_hash, created_at, updated_at").
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(42), "maria", "argon2id$hash", now, now))

		repo := NewPostgreSQLAccountRepository(db)
		account, err := repo.GetByID(context.Background(), 42)

		require.NoError(t, err)
		assert.Equal(t, int64(42), account.ID)
		assert.Equal(t, "maria", account.Username)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT id, username, password_hash, created_at, updated_at").
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(columns))

		repo := NewPostgreSQLAccountRepository(db)
		_, err = repo.GetByID(context.Background(), 42)

		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestPostgreSQLAccountRepository_GetByUsername(t *testing.T) {
	columns := []string{"id", "username", "password_hash", "created_at", "updated_at"}

	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mock.ExpectQuery("SELECT id, username, password_hash, created_at, updated_at").
			WithArgs("maria").
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(42), "maria", "argon2id$hash", now, now))

		repo := NewPostgreSQLAccountRepository(db)
		account, err := repo.GetByUsername(context.Background(), "maria")

		require.NoError(t, err)
		assert.Equal(t, int64(42), account.ID)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery("SELECT id, username, password_hash, created_at, updated_at").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows(columns))

		repo := NewPostgreSQLAccountRepository(db)
		_, err = repo.GetByUsername(context.Background(), "ghost")

		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestPostgreSQLAccountRepository_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE accounts SET password_hash").
			WithArgs("argon2id$new", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLAccountRepository(db)
		err = repo.Update(context.Background(), &domain.Account{ID: 42, PasswordHash: "argon2id$new"})

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("UPDATE accounts SET password_hash").
			WithArgs("argon2id$new", int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLAccountRepository(db)
		err = repo.Update(context.Background(), &domain.Account{ID: 42, PasswordHash: "argon2id$new"})

		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestPostgreSQLAccountRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM accounts").
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewPostgreSQLAccountRepository(db)
		assert.NoError(t, repo.Delete(context.Background(), 42))
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("DELETE FROM accounts").
			WithArgs(int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewPostgreSQLAccountRepository(db)
		assert.ErrorIs(t, repo.Delete(context.Background(), 42), domain.ErrAccountNotFound)
	})
}
