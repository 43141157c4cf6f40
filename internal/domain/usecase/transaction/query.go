package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
)

// ListBySender returns the sender's transactions, newest first
func (s *Service) ListBySender(ctx context.Context, senderID uint64, limit, offset int) ([]*entity.Transaction, error) {
	if senderID == 0 {
		return nil, errs.ErrUnauthorized
	}
	limit, offset = clampPage(limit, offset)

	return s.uow.GetTransactionRepository(ctx).List(ctx, entity.TransactionFilter{
		SenderID: senderID,
		Limit:    limit,
		Offset:   offset,
	})
}

// ListByReceiver returns transactions addressed to the user's receiver profile. Transfers
// whose pay-in has not cleared are hidden.
func (s *Service) ListByReceiver(ctx context.Context, userID uint64, limit, offset int) ([]*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthorized
	}
	limit, offset = clampPage(limit, offset)

	receiver, err := s.uow.GetReceiverRepository(ctx).GetByUserID(ctx, userID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return []*entity.Transaction{}, nil
		}
		return nil, err
	}

	return s.uow.GetTransactionRepository(ctx).List(ctx, entity.TransactionFilter{
		ReceiverID:    receiver.ID,
		ExcludeStatus: entity.ReceiverHiddenStatuses,
		Limit:         limit,
		Offset:        offset,
	})
}

// GetByID returns a transaction the user sent or may see as its receiver
func (s *Service) GetByID(ctx context.Context, userID, transactionID uint64) (*entity.Transaction, error) {
	tx, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	return s.authorizeRead(ctx, userID, tx)
}

// GetByReference returns a transaction by its reference code with the same visibility as GetByID
func (s *Service) GetByReference(ctx context.Context, userID uint64, reference string) (*entity.Transaction, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	if reference == "" {
		return nil, fmt.Errorf("%w: reference code is required", errs.ErrValidation)
	}

	tx, err := s.uow.GetTransactionRepository(ctx).GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return s.authorizeRead(ctx, userID, tx)
}

// ClaimPreview returns the public projection of a transaction shown on its claim link
func (s *Service) ClaimPreview(ctx context.Context, reference string) (*entity.ClaimPreview, error) {
	reference = strings.ToUpper(strings.TrimSpace(reference))
	if reference == "" {
		return nil, fmt.Errorf("%w: reference code is required", errs.ErrValidation)
	}

	tx, err := s.uow.GetTransactionRepository(ctx).GetByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	preview := &entity.ClaimPreview{
		ReferenceCode:   tx.ReferenceCode,
		Status:          tx.Status,
		ExpectedFiatOut: tx.ExpectedFiatOut,
		CreatedAt:       tx.CreatedAt,
	}

	profile, err := s.uow.GetUserRepository(ctx).GetSenderProfile(ctx, tx.SenderID)
	switch {
	case err == nil:
		preview.SenderFirstName = profile.FirstName
	case errs.IsNotFoundError(err):
	default:
		return nil, err
	}

	return preview, nil
}

// authorizeRead hides transactions the user is not a party to behind a not-found error
func (s *Service) authorizeRead(ctx context.Context, userID uint64, tx *entity.Transaction) (*entity.Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrUnauthorized
	}
	if tx.SenderID == userID {
		return tx, nil
	}

	owns, err := s.ownsReceiver(ctx, userID, tx.ReceiverID)
	if err != nil {
		return nil, err
	}
	if owns && tx.VisibleToReceiver() {
		return tx, nil
	}
	return nil, errs.ErrTransactionNotFound
}

// ownedBySender loads a transaction only if senderID created it
func (s *Service) ownedBySender(ctx context.Context, senderID, transactionID uint64) (*entity.Transaction, error) {
	if senderID == 0 {
		return nil, errs.ErrUnauthorized
	}

	tx, err := s.uow.GetTransactionRepository(ctx).GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if tx.SenderID != senderID {
		return nil, errs.ErrTransactionNotFound
	}
	return tx, nil
}

func (s *Service) ownsReceiver(ctx context.Context, userID, receiverID uint64) (bool, error) {
	receiver, err := s.uow.GetReceiverRepository(ctx).GetByID(ctx, receiverID)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return false, nil
		}
		return false, err
	}
	return receiver.UserID != nil && *receiver.UserID == userID, nil
}
