package usecase

import (
	"context"
	"time"

	"github.com/allisson/recipes/internal/account/domain"
	"github.com/allisson/recipes/internal/metrics"
)

// accountUseCaseWithMetrics decorates UseCase with metrics instrumentation.
type accountUseCaseWithMetrics struct {
	next    UseCase
	metrics metrics.BusinessMetrics
}

// NewAccountUseCaseWithMetrics wraps a UseCase with metrics recording.
func NewAccountUseCaseWithMetrics(useCase UseCase, m metrics.BusinessMetrics) UseCase {
	return &accountUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Register records metrics for account registration operations.
func (a *accountUseCaseWithMetrics) Register(
	ctx context.Context,
	input RegisterAccountInput,
) (*domain.Account, error) {
	start := time.Now()
	account, err := a.next.Register(ctx, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "account", "register", status)
	a.metrics.RecordDuration(ctx, "account", "register", time.Since(start), status)

	return account, err
}

// GetByID records metrics for account retrieval operations.
func (a *accountUseCaseWithMetrics) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	start := time.Now()
	account, err := a.next.GetByID(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "account", "get", status)
	a.metrics.RecordDuration(ctx, "account", "get", time.Since(start), status)

	return account, err
}

// GetByUsername records metrics for username lookup operations.
func (a *accountUseCaseWithMetrics) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.Account, error) {
	start := time.Now()
	account, err := a.next.GetByUsername(ctx, username)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "account", "get_by_username", status)
	a.metrics.RecordDuration(ctx, "account", "get_by_username", time.Since(start), status)

	return account, err
}

// Update records metrics for account update operations.
func (a *accountUseCaseWithMetrics) Update(
	ctx context.Context,
	id int64,
	input UpdateAccountInput,
) (*domain.Account, error) {
	start := time.Now()
	account, err := a.next.Update(ctx, id, input)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "account", "update", status)
	a.metrics.RecordDuration(ctx, "account", "update", time.Since(start), status)

	return account, err
}

// Delete records metrics for account deletion operations.
func (a *accountUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := a.next.Delete(ctx, id)

	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "account", "delete", status)
	a.metrics.RecordDuration(ctx, "account", "delete", time.Since(start), status)

	return err
}
