package usecase

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
)

// BridgeUseCase moves stablecoin from the treasury to receivers
type BridgeUseCase interface {
	// Bridge runs one attempt synchronously. A transaction whose receiver has no wallet is left in
	// escrow and returned unchanged.
	Bridge(ctx context.Context, transactionID uint64) (*entity.Transaction, error)

	// Dispatch schedules Bridge in the background; trigger names the caller for logging
	Dispatch(transactionID uint64, trigger string)

	// ReleaseEscrow dispatches every escrowed transaction of a receiver and returns how many
	ReleaseEscrow(ctx context.Context, receiverID uint64) (int, error)
}
