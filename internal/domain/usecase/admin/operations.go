package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
)

const maxBroadcastTitle = 120

// UpdateRate changes the base rate, the markup or both of an existing pair
func (s *Service) UpdateRate(ctx context.Context, actor, pair string, update entity.RateUpdate) (*entity.ExchangeRate, error) {
	pair = strings.ToUpper(strings.TrimSpace(pair))
	if pair == "" {
		return nil, fmt.Errorf("%w: pair is required", errs.ErrValidation)
	}
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", errs.ErrValidation)
	}
	if update.BaseRate != nil && !update.BaseRate.IsPositive() {
		return nil, fmt.Errorf("%w: base rate must be positive", errs.ErrValidation)
	}
	if update.MarkupPercent != nil && update.MarkupPercent.IsNegative() {
		return nil, fmt.Errorf("%w: markup percent must not be negative", errs.ErrValidation)
	}

	rate, err := s.rates.GetByPair(ctx, pair)
	if err != nil {
		return nil, err
	}
	before := *rate

	update.Apply(rate)
	rate.UpdatedAt = s.timer.Now()
	if err := s.rates.Update(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to update rate %s: %w", pair, err)
	}

	s.auditBestEffort(ctx, actor, entity.AuditRateUpdate,
		"%s base %s -> %s, markup %s%% -> %s%%", pair,
		before.BaseRate.String(), rate.BaseRate.String(),
		before.MarkupPercent.String(), rate.MarkupPercent.String())

	return rate, nil
}

// Broadcast publishes a notification to every user
func (s *Service) Broadcast(ctx context.Context, actor, title, body string) error {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" || body == "" {
		return fmt.Errorf("%w: title and body are required", errs.ErrValidation)
	}
	if len([]rune(title)) > maxBroadcastTitle {
		return fmt.Errorf("%w: title is too long", errs.ErrValidation)
	}

	callCtx, cancel := s.timer.WithTimeout(ctx, s.settings.ProviderTimeout)
	err := s.notifier.Broadcast(callCtx, title, body)
	cancel()
	s.metrics.ProviderCall("notifier", "broadcast", outcome(err))
	if err != nil {
		return errs.NewUpstreamError("notifier", "broadcast", err)
	}

	s.auditBestEffort(ctx, actor, entity.AuditBroadcast, "broadcast %q", title)
	return nil
}

// DeleteUser removes a user and everything derived from it. Users with a transaction that
// has not reached a terminal status cannot be deleted.
func (s *Service) DeleteUser(ctx context.Context, actor string, userID uint64) error {
	if userID == 0 {
		return fmt.Errorf("%w: user id is required", errs.ErrValidation)
	}

	if _, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID); err != nil {
		return err
	}

	var receiverID uint64
	receiver, err := s.uow.GetReceiverRepository(ctx).GetByUserID(ctx, userID)
	switch {
	case err == nil:
		receiverID = receiver.ID
	case !errs.IsNotFoundError(err):
		return err
	}

	return s.withinTx(ctx, func(txCtx context.Context) error {
		txRepo := s.uow.GetTransactionRepository(txCtx)
		userRepo := s.uow.GetUserRepository(txCtx)

		if err := s.ensureNoActiveTransactions(txCtx, txRepo, userID, receiverID); err != nil {
			return err
		}

		n, err := txRepo.DeleteByParticipant(txCtx, userID, receiverID, entity.TerminalStatuses...)
		if err != nil {
			return fmt.Errorf("failed to delete transactions: %w", err)
		}
		// a transaction that went active after the check survives the delete and aborts here
		if err := s.ensureNoActiveTransactions(txCtx, txRepo, userID, receiverID); err != nil {
			return err
		}
		if err := s.audit(txCtx, actor, entity.AuditDeleteTxs, "user %d: %d transactions deleted", userID, n); err != nil {
			return err
		}

		n, err = userRepo.DeleteVolumeRecords(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to delete volume records: %w", err)
		}
		if err := s.audit(txCtx, actor, entity.AuditDeleteVolume, "user %d: %d volume records deleted", userID, n); err != nil {
			return err
		}

		n, err = userRepo.DeleteSenderProfile(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to delete sender profile: %w", err)
		}
		if err := s.audit(txCtx, actor, entity.AuditDeleteSender, "user %d: %d sender profiles deleted", userID, n); err != nil {
			return err
		}

		n, err = s.uow.GetReceiverRepository(txCtx).DeleteByUserID(txCtx, userID)
		if err != nil {
			return fmt.Errorf("failed to delete receiver profile: %w", err)
		}
		if err := s.audit(txCtx, actor, entity.AuditDeleteReceiver, "user %d: %d receiver profiles deleted", userID, n); err != nil {
			return err
		}

		if err := userRepo.Delete(txCtx, userID); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return s.audit(txCtx, actor, entity.AuditDeleteUser, "user %d deleted", userID)
	})
}

func (s *Service) ensureNoActiveTransactions(ctx context.Context, txRepo persistence.TransactionRepository, userID, receiverID uint64) error {
	txs, err := txRepo.ListByParticipant(ctx, userID, receiverID)
	if err != nil {
		return fmt.Errorf("failed to list user transactions: %w", err)
	}
	for _, tx := range txs {
		if tx.Status.BlocksAccountDeletion() {
			s.logger.Warn("User deletion blocked by active transaction", map[string]any{
				"user_id":        userID,
				"transaction_id": tx.ID,
				"status":         tx.Status,
			})
			return fmt.Errorf("%w: transaction %s is %s", errs.ErrActiveTransactions, tx.ReferenceCode, tx.Status)
		}
	}
	return nil
}
