package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
)

// Claim moves a paid transaction from its provisional receiver onto the claiming user's
// receiver profile and starts the bridge. A claim link works once.
func (s *Service) Claim(ctx context.Context, reference string, receiverUserID uint64) (*entity.Transaction, error) {
	if receiverUserID == 0 {
		return nil, errs.ErrUnauthorized
	}
	reference = strings.ToUpper(strings.TrimSpace(reference))
	if reference == "" {
		return nil, fmt.Errorf("%w: reference code is required", errs.ErrValidation)
	}

	txRepo := s.uow.GetTransactionRepository(ctx)
	receiverRepo := s.uow.GetReceiverRepository(ctx)

	tx, err := txRepo.GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if tx.ClaimedAt != nil {
		return nil, errs.ErrAlreadyClaimed
	}

	current, err := receiverRepo.GetByID(ctx, tx.ReceiverID)
	if err != nil {
		return nil, fmt.Errorf("failed to load current receiver: %w", err)
	}
	if !current.Provisional {
		return nil, errs.ErrAlreadyClaimed
	}

	if tx.Status != entity.StatusPayinSuccess {
		return nil, errs.NewTransactionError(tx.ID, tx.ReferenceCode, string(tx.Status), "claim",
			fmt.Errorf("%w: claim requires %s", errs.ErrInvalidState, entity.StatusPayinSuccess))
	}

	claimant, err := receiverRepo.GetByUserID(ctx, receiverUserID)
	if err != nil {
		return nil, err
	}

	moved, err := txRepo.ReassignReceiver(ctx, tx.ID, current.ID, claimant.ID, s.timer.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to reassign receiver: %w", err)
	}
	if !moved {
		return nil, errs.ErrAlreadyClaimed
	}

	s.logger.Info("Transaction claimed", map[string]any{
		"transaction_id":       tx.ID,
		"reference_code":       tx.ReferenceCode,
		"provisional_receiver": current.ID,
		"receiver_id":          claimant.ID,
		"has_wallet":           claimant.HasWallet(),
	})

	s.bridge.Dispatch(tx.ID, "claim")

	return txRepo.GetByID(ctx, tx.ID)
}
