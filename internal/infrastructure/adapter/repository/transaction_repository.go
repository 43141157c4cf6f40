package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionRepository implements TransactionRepository interface using GORM
type TransactionRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// entityToModel converts a transaction entity to a database model
func (r *TransactionRepository) entityToModel(tx *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:                   tx.ID,
		ReferenceCode:        tx.ReferenceCode,
		SenderID:             tx.SenderID,
		ReceiverID:           tx.ReceiverID,
		Status:               string(tx.Status),
		RoutingStrategy:      string(tx.RoutingStrategy),
		DeliverySpeed:        string(tx.DeliverySpeed),
		FiatAmountIn:         tx.FiatAmountIn,
		TotalToPay:           tx.TotalToPay,
		StablecoinAmount:     tx.StablecoinAmount,
		ExpectedFiatOut:      tx.ExpectedFiatOut,
		ExchangeRate:         tx.ExchangeRate,
		ProviderRate:         tx.ProviderRate,
		GatewayFee:           tx.GatewayFee,
		PartnerFee:           tx.PartnerFee,
		PlatformFee:          tx.PlatformFee,
		PlatformMargin:       tx.PlatformMargin,
		GatewayTransactionID: tx.GatewayTransactionID,
		ConfirmedAmount:      tx.ConfirmedAmount,
		GasTxHash:            tx.GasTxHash,
		TokenTxHash:          tx.TokenTxHash,
		GasFeePaid:           tx.GasFeePaid,
		FailureReason:        tx.FailureReason,
		ClaimedAt:            tx.ClaimedAt,
		CreatedAt:            tx.CreatedAt,
		UpdatedAt:            tx.UpdatedAt,
	}
}

// modelToEntity converts a transaction model to an entity
func (r *TransactionRepository) modelToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:                   m.ID,
		ReferenceCode:        m.ReferenceCode,
		SenderID:             m.SenderID,
		ReceiverID:           m.ReceiverID,
		Status:               entity.TransactionStatus(m.Status),
		RoutingStrategy:      entity.RoutingStrategy(m.RoutingStrategy),
		DeliverySpeed:        entity.DeliverySpeed(m.DeliverySpeed),
		FiatAmountIn:         m.FiatAmountIn,
		TotalToPay:           m.TotalToPay,
		StablecoinAmount:     m.StablecoinAmount,
		ExpectedFiatOut:      m.ExpectedFiatOut,
		ExchangeRate:         m.ExchangeRate,
		ProviderRate:         m.ProviderRate,
		GatewayFee:           m.GatewayFee,
		PartnerFee:           m.PartnerFee,
		PlatformFee:          m.PlatformFee,
		PlatformMargin:       m.PlatformMargin,
		GatewayTransactionID: m.GatewayTransactionID,
		ConfirmedAmount:      m.ConfirmedAmount,
		GasTxHash:            m.GasTxHash,
		TokenTxHash:          m.TokenTxHash,
		GasFeePaid:           m.GasFeePaid,
		FailureReason:        m.FailureReason,
		ClaimedAt:            m.ClaimedAt,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func (r *TransactionRepository) toEntities(rows []model.Transaction) []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, r.modelToEntity(&rows[i]))
	}
	return out
}

// Create saves a new transaction and assigns its ID
func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	now := r.timeProvider.Now()
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	tx.UpdatedAt = now

	row := r.entityToModel(tx)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if r.errorClassifier.IsDuplicateKeyError(err) {
			r.logger.Warn("Duplicate transaction reference", map[string]any{
				"reference_code": tx.ReferenceCode,
			})
			return fmt.Errorf("%w: reference %s", errs.ErrDuplicate, tx.ReferenceCode)
		}
		r.logger.Error("Failed to create transaction", map[string]any{
			"reference_code": tx.ReferenceCode,
			"sender_id":      tx.SenderID,
			"error":          err.Error(),
		})
		return r.errorClassifier.wrapError("create transaction", err)
	}

	tx.ID = row.ID
	return nil
}

// GetByID retrieves a transaction by its internal ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*entity.Transaction, error) {
	var row model.Transaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		return nil, r.notFound(err, "get transaction")
	}
	return r.modelToEntity(&row), nil
}

// GetByReference retrieves a transaction by its reference code
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*entity.Transaction, error) {
	var row model.Transaction
	if err := r.db.WithContext(ctx).Where("reference_code = ?", reference).First(&row).Error; err != nil {
		return nil, r.notFound(err, "get transaction by reference")
	}
	return r.modelToEntity(&row), nil
}

func (r *TransactionRepository) notFound(err error, operation string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}
	r.logger.Error("Failed to read transaction", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})
	return r.errorClassifier.wrapError(operation, err)
}

// List returns transactions matching the filter, newest first
func (r *TransactionRepository) List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Model(&model.Transaction{})
	if filter.SenderID != 0 {
		query = query.Where("sender_id = ?", filter.SenderID)
	}
	if filter.ReceiverID != 0 {
		query = query.Where("receiver_id = ?", filter.ReceiverID)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(filter.Statuses))
	}
	if len(filter.ExcludeStatus) > 0 {
		query = query.Where("status NOT IN ?", statusStrings(filter.ExcludeStatus))
	}
	if filter.ReceiverHasWallet != nil {
		if *filter.ReceiverHasWallet {
			query = query.Where("receiver_id IN (SELECT id FROM receivers WHERE wallet_address <> '')")
		} else {
			query = query.Where("receiver_id IN (SELECT id FROM receivers WHERE wallet_address IS NULL OR wallet_address = '')")
		}
	}
	if !filter.UpdatedBefore.IsZero() {
		query = query.Where("updated_at < ?", filter.UpdatedBefore)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var rows []model.Transaction
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.wrapError("list transactions", err)
	}
	return r.toEntities(rows), nil
}

// CompareAndSetStatus writes the new status in a single conditional UPDATE; the row count tells
// whether the guard matched
func (r *TransactionRepository) CompareAndSetStatus(ctx context.Context, id uint64, change entity.StatusChange) (bool, error) {
	if len(change.From) == 0 {
		return false, fmt.Errorf("%w: status change without source statuses", errs.ErrValidation)
	}

	updates := map[string]any{
		"status":     string(change.To),
		"updated_at": r.timeProvider.Now(),
	}
	if change.GatewayTransactionID != nil {
		updates["gateway_transaction_id"] = *change.GatewayTransactionID
	}
	if change.ConfirmedAmount != nil {
		updates["confirmed_amount"] = *change.ConfirmedAmount
	}
	if change.FailureReason != nil {
		updates["failure_reason"] = entity.TruncateReason(*change.FailureReason, entity.MaxFailureReasonLength)
	}
	if change.GasTxHash != nil {
		updates["gas_tx_hash"] = *change.GasTxHash
	}
	if change.TokenTxHash != nil {
		updates["token_tx_hash"] = *change.TokenTxHash
	}
	if change.GasFeePaid != nil {
		updates["gas_fee_paid"] = *change.GasFeePaid
	}

	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND status IN ?", id, statusStrings(change.From)).
		Updates(updates)
	if result.Error != nil {
		r.logger.Error("Failed to update transaction status", map[string]any{
			"transaction_id": id,
			"to":             change.To,
			"error":          result.Error.Error(),
		})
		return false, r.errorClassifier.wrapError("compare and set status", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("Status guard did not match", map[string]any{
			"transaction_id": id,
			"from":           change.From,
			"to":             change.To,
		})
		return false, nil
	}
	return true, nil
}

// ForceStatus writes a status unconditionally
func (r *TransactionRepository) ForceStatus(ctx context.Context, id uint64, status entity.TransactionStatus, reason string) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":         string(status),
			"failure_reason": entity.TruncateReason(reason, entity.MaxFailureReasonLength),
			"updated_at":     r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.errorClassifier.wrapError("force status", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// ReassignReceiver re-points an unclaimed PAYIN_SUCCESS transaction to the claimant's profile
func (r *TransactionRepository) ReassignReceiver(ctx context.Context, id, fromReceiverID, toReceiverID uint64, claimedAt time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND receiver_id = ? AND status = ? AND claimed_at IS NULL",
			id, fromReceiverID, string(entity.StatusPayinSuccess)).
		Updates(map[string]any{
			"receiver_id": toReceiverID,
			"claimed_at":  claimedAt,
			"updated_at":  r.timeProvider.Now(),
		})
	if result.Error != nil {
		return false, r.errorClassifier.wrapError("reassign receiver", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *TransactionRepository) participantScope(senderID, receiverID uint64) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		switch {
		case senderID != 0 && receiverID != 0:
			return db.Where("sender_id = ? OR receiver_id = ?", senderID, receiverID)
		case senderID != 0:
			return db.Where("sender_id = ?", senderID)
		case receiverID != 0:
			return db.Where("receiver_id = ?", receiverID)
		default:
			return db.Where("1 = 0")
		}
	}
}

// ListByParticipant returns every transaction sent by senderID or addressed to receiverID
func (r *TransactionRepository) ListByParticipant(ctx context.Context, senderID, receiverID uint64) ([]*entity.Transaction, error) {
	var rows []model.Transaction
	err := r.db.WithContext(ctx).
		Scopes(r.participantScope(senderID, receiverID)).
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.wrapError("list participant transactions", err)
	}
	return r.toEntities(rows), nil
}

// DeleteByParticipant physically deletes the participant's transactions in the given statuses
func (r *TransactionRepository) DeleteByParticipant(ctx context.Context, senderID, receiverID uint64, statuses ...entity.TransactionStatus) (int64, error) {
	query := r.db.WithContext(ctx).Scopes(r.participantScope(senderID, receiverID))
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(statuses))
	}
	result := query.Delete(&model.Transaction{})
	if result.Error != nil {
		return 0, r.errorClassifier.wrapError("delete participant transactions", result.Error)
	}
	return result.RowsAffected, nil
}

// CountByStatus returns the number of transactions per status
func (r *TransactionRepository) CountByStatus(ctx context.Context) (map[entity.TransactionStatus]int64, error) {
	var rows []struct {
		Status string
		Count  int64
	}
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, r.errorClassifier.wrapError("count by status", err)
	}

	out := make(map[entity.TransactionStatus]int64, len(rows))
	for _, row := range rows {
		out[entity.TransactionStatus(row.Status)] = row.Count
	}
	return out, nil
}

// totalsRow receives SUM aggregates; NULL sums over empty sets decode as zero
type totalsRow struct {
	Count            int64
	FiatAmountIn     decimal.NullDecimal
	TotalToPay       decimal.NullDecimal
	StablecoinAmount decimal.NullDecimal
	ExpectedFiatOut  decimal.NullDecimal
	GatewayFee       decimal.NullDecimal
	PartnerFee       decimal.NullDecimal
	PlatformFee      decimal.NullDecimal
	PlatformMargin   decimal.NullDecimal
	GasFeePaid       decimal.NullDecimal
}

// Totals sums amount columns over transactions in the given statuses
func (r *TransactionRepository) Totals(ctx context.Context, statuses ...entity.TransactionStatus) (*entity.TransactionTotals, error) {
	var row totalsRow
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select(`COUNT(*) AS count,
			SUM(fiat_amount_in) AS fiat_amount_in,
			SUM(total_to_pay) AS total_to_pay,
			SUM(stablecoin_amount) AS stablecoin_amount,
			SUM(expected_fiat_out) AS expected_fiat_out,
			SUM(gateway_fee) AS gateway_fee,
			SUM(partner_fee) AS partner_fee,
			SUM(platform_fee) AS platform_fee,
			SUM(platform_margin) AS platform_margin,
			SUM(gas_fee_paid) AS gas_fee_paid`).
		Where("status IN ?", statusStrings(statuses)).
		Scan(&row).Error
	if err != nil {
		return nil, r.errorClassifier.wrapError("transaction totals", err)
	}

	return &entity.TransactionTotals{
		Count:            row.Count,
		FiatAmountIn:     row.FiatAmountIn.Decimal,
		TotalToPay:       row.TotalToPay.Decimal,
		StablecoinAmount: row.StablecoinAmount.Decimal,
		ExpectedFiatOut:  row.ExpectedFiatOut.Decimal,
		GatewayFee:       row.GatewayFee.Decimal,
		PartnerFee:       row.PartnerFee.Decimal,
		PlatformFee:      row.PlatformFee.Decimal,
		PlatformMargin:   row.PlatformMargin.Decimal,
		GasFeePaid:       row.GasFeePaid.Decimal,
	}, nil
}

func statusStrings(statuses []entity.TransactionStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
