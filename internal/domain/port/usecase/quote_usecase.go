package usecase

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
)

// QuoteUseCase prices transfers
type QuoteUseCase interface {
	// GetQuote validates raw inputs and returns a priced quote. Partner outages never fail it.
	GetQuote(ctx context.Context, amount, currency, speed string) (*entity.Quote, error)

	// Price prices an already validated request
	Price(ctx context.Context, req entity.QuoteRequest) (*entity.Quote, error)
}
