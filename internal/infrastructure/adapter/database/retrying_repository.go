package database

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
)

// retryingTransactionRepository retries status writes that fail on a dropped connection,
// a deadlock or a lock timeout. A retried conditional write whose first attempt did land
// reports a lost guard, which callers already treat as a concurrent transition.
type retryingTransactionRepository struct {
	persistence.TransactionRepository
	retry       RetryConfig
	errorMapper *ErrorMapper
	logger      coreport.Logger
}

func newRetryingTransactionRepository(
	repo persistence.TransactionRepository,
	retry RetryConfig,
	errorMapper *ErrorMapper,
	logger coreport.Logger,
) *retryingTransactionRepository {
	return &retryingTransactionRepository{
		TransactionRepository: repo,
		retry:                 retry,
		errorMapper:           errorMapper,
		logger:                logger,
	}
}

func (r *retryingTransactionRepository) CompareAndSetStatus(ctx context.Context, id uint64, change entity.StatusChange) (bool, error) {
	var applied bool
	err := RetryOnTransientError(ctx, r.retry, func(ctx context.Context) error {
		var err error
		applied, err = r.TransactionRepository.CompareAndSetStatus(ctx, id, change)
		return err
	}, r.errorMapper, r.logger)
	if err != nil {
		return false, err
	}
	return applied, nil
}

func (r *retryingTransactionRepository) ForceStatus(ctx context.Context, id uint64, status entity.TransactionStatus, reason string) error {
	return RetryOnTransientError(ctx, r.retry, func(ctx context.Context) error {
		return r.TransactionRepository.ForceStatus(ctx, id, status, reason)
	}, r.errorMapper, r.logger)
}
