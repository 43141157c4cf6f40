package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
)

// RegisterReceiver gives the user a receiver profile. A provisional profile holding the same
// handle is adopted, so transfers already sent to the handle follow the user.
func (s *Service) RegisterReceiver(
	ctx context.Context,
	userID uint64,
	req usecase.RegisterReceiverRequest,
) (*entity.Receiver, error) {
	handle, err := s.validator.ValidateRegistration(userID, req)
	if err != nil {
		return nil, err
	}
	firstName := strings.TrimSpace(req.FirstName)

	var receiver *entity.Receiver
	err = s.withinTx(ctx, func(txCtx context.Context) error {
		repo := s.uow.GetReceiverRepository(txCtx)
		now := s.timer.Now()

		existing, err := repo.GetByUserID(txCtx, userID)
		switch {
		case err == nil:
			if existing.Handle != handle {
				return fmt.Errorf("%w: user already registered as %s", errs.ErrDuplicate, existing.Handle)
			}
			if firstName != "" {
				existing.FirstName = firstName
			}
			existing.UpdatedAt = now
			receiver = existing
			return repo.Update(txCtx, existing)
		case !errs.IsNotFoundError(err):
			return err
		}

		byHandle, err := repo.GetByHandle(txCtx, handle)
		switch {
		case err == nil:
			if !byHandle.Provisional {
				return fmt.Errorf("%w: handle %s is taken", errs.ErrDuplicate, handle)
			}
			byHandle.UserID = &userID
			byHandle.Provisional = false
			byHandle.FirstName = firstName
			byHandle.UpdatedAt = now
			receiver = byHandle
			return repo.Update(txCtx, byHandle)
		case !errs.IsNotFoundError(err):
			return err
		}

		receiver = &entity.Receiver{
			Handle:    handle,
			UserID:    &userID,
			FirstName: firstName,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return repo.Create(txCtx, receiver)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Receiver registered", map[string]any{
		"receiver_id": receiver.ID,
		"user_id":     userID,
		"handle":      receiver.Handle,
	})

	if req.WalletAddress != "" {
		updated, _, err := s.AttachWalletAddress(ctx, userID, req.WalletAddress)
		if err != nil {
			return nil, err
		}
		return updated, nil
	}
	return receiver, nil
}

// AttachWalletAddress sets the payout address of the user's receiver profile. The first
// attachment releases every transfer held in escrow for that receiver; the count of released
// transfers is returned.
func (s *Service) AttachWalletAddress(ctx context.Context, userID uint64, address string) (*entity.Receiver, int, error) {
	if userID == 0 {
		return nil, 0, errs.ErrUnauthorized
	}
	address = strings.TrimSpace(address)
	if err := s.validator.ValidateWalletAddress(address); err != nil {
		return nil, 0, err
	}

	repo := s.uow.GetReceiverRepository(ctx)
	receiver, err := repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	first := !receiver.HasWallet()
	receiver.WalletAddress = address
	receiver.UpdatedAt = s.timer.Now()
	if err := repo.Update(ctx, receiver); err != nil {
		return nil, 0, fmt.Errorf("failed to save wallet address: %w", err)
	}

	s.logger.Info("Wallet address attached", map[string]any{
		"receiver_id": receiver.ID,
		"user_id":     userID,
		"first":       first,
	})

	if !first {
		return receiver, 0, nil
	}

	released, err := s.bridge.ReleaseEscrow(ctx, receiver.ID)
	if err != nil {
		// the escrow sweeper picks these up later
		s.logger.Warn("Escrow release failed", map[string]any{
			"receiver_id": receiver.ID,
			"error":       err.Error(),
		})
		return receiver, 0, nil
	}
	return receiver, released, nil
}
