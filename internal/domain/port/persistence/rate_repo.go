package persistence

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
)

// RateRepository defines the methods to read and update exchange rates
type RateRepository interface {
	// GetByPair retrieves a rate by pair name
	//
	// Possible errors:
	// - ErrRateNotFound: If the pair does not exist
	GetByPair(ctx context.Context, pair string) (*entity.ExchangeRate, error)

	// List returns every configured pair
	List(ctx context.Context) ([]*entity.ExchangeRate, error)

	// Update saves base rate and markup of an existing pair. Pairs are never created implicitly.
	//
	// Possible errors:
	// - ErrRateNotFound: If the pair does not exist
	Update(ctx context.Context, rate *entity.ExchangeRate) error
}
