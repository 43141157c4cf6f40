package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/usecase"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CreateTransaction re-prices the request server-side and persists an INITIATED transaction
// towards the receiver behind the handle, creating a provisional receiver when none exists.
func (s *Service) CreateTransaction(
	ctx context.Context,
	senderID uint64,
	req usecase.CreateTransactionRequest,
) (*entity.Transaction, error) {
	speed, err := s.validator.ValidateCreate(senderID, req)
	if err != nil {
		return nil, err
	}
	handle := entity.NormalizeHandle(req.ReceiverHandle)

	quote, err := s.quotes.Price(ctx, entity.QuoteRequest{
		Amount:   req.FiatAmountIn,
		Currency: entity.CurrencyXOF,
		Speed:    speed,
	})
	if err != nil {
		return nil, err
	}

	if err := s.checkDeviation(quote, req.ExpectedFiatOut); err != nil {
		s.logger.Info("Rejected stale quote", map[string]any{
			"sender_id":         senderID,
			"expected_fiat_out": req.ExpectedFiatOut.String(),
			"current_fiat_out":  quote.TargetFiatOut.String(),
		})
		return nil, err
	}

	now := s.timer.Now()
	tx := &entity.Transaction{
		SenderID:         senderID,
		Status:           entity.StatusInitiated,
		RoutingStrategy:  quote.RoutingStrategy,
		DeliverySpeed:    speed,
		FiatAmountIn:     entity.RoundXOF(req.FiatAmountIn),
		TotalToPay:       quote.TotalToPay,
		StablecoinAmount: quote.StablecoinAmount,
		ExpectedFiatOut:  quote.TargetFiatOut,
		ExchangeRate:     quote.RateCharged,
		ProviderRate:     quote.ProviderRate,
		GatewayFee:       quote.GatewayFee,
		PartnerFee:       quote.PartnerFee,
		PlatformFee:      quote.PlatformFee,
		PlatformMargin:   s.platformMargin(quote),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.withinTx(ctx, func(txCtx context.Context) error {
		receiver, err := s.resolveReceiver(txCtx, handle)
		if err != nil {
			return err
		}
		tx.ReceiverID = receiver.ID
		return s.persistWithReference(txCtx, tx)
	})
	if err != nil {
		return nil, err
	}

	s.metrics.StatusChanged("", string(entity.StatusInitiated))
	s.logger.Info("Transaction created", map[string]any{
		"transaction_id":   tx.ID,
		"reference_code":   tx.ReferenceCode,
		"sender_id":        senderID,
		"receiver_id":      tx.ReceiverID,
		"total_to_pay":     tx.TotalToPay.String(),
		"stablecoin":       tx.StablecoinAmount.String(),
		"routing_strategy": tx.RoutingStrategy,
		"pricing_source":   quote.PricingSource,
	})

	return tx, nil
}

// checkDeviation rejects the request when the client's expected payout drifted too far
func (s *Service) checkDeviation(quote *entity.Quote, expected decimal.Decimal) error {
	current := quote.TargetFiatOut
	if !current.IsPositive() {
		return fmt.Errorf("%w: current quote has no payout", errs.ErrStaleQuote)
	}

	deviation := current.Sub(expected).Abs().Div(current).Mul(hundred)
	if deviation.GreaterThan(s.settings.QuoteTolerancePercent) {
		return fmt.Errorf("%w: expected %s EUR, current quote pays %s EUR",
			errs.ErrStaleQuote, expected.StringFixed(2), current.StringFixed(2))
	}
	return nil
}

// platformMargin is what the platform keeps after buying the stablecoin
func (s *Service) platformMargin(quote *entity.Quote) decimal.Decimal {
	commercial := quote.CommercialAmount
	if commercial.IsZero() {
		commercial = quote.TotalToPay.Sub(quote.GatewayFee)
	}
	cost := quote.StablecoinAmount.Mul(s.settings.AcquisitionRateXOF)
	return entity.RoundXOF(commercial.Sub(cost))
}

// resolveReceiver finds the receiver behind a handle or creates a provisional, walletless one
func (s *Service) resolveReceiver(ctx context.Context, handle string) (*entity.Receiver, error) {
	repo := s.uow.GetReceiverRepository(ctx)

	receiver, err := repo.GetByHandle(ctx, handle)
	if err == nil {
		return receiver, nil
	}
	if !errs.IsNotFoundError(err) {
		return nil, fmt.Errorf("failed to resolve receiver: %w", err)
	}

	now := s.timer.Now()
	receiver = &entity.Receiver{
		Handle:      handle,
		Provisional: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := repo.Create(ctx, receiver); err != nil {
		return nil, fmt.Errorf("failed to create provisional receiver: %w", err)
	}

	s.logger.Info("Provisional receiver created", map[string]any{
		"receiver_id": receiver.ID,
		"handle":      handle,
	})
	return receiver, nil
}

// persistWithReference assigns a fresh reference code, retrying on the rare collision
func (s *Service) persistWithReference(ctx context.Context, tx *entity.Transaction) error {
	repo := s.uow.GetTransactionRepository(ctx)

	var err error
	for attempt := 1; attempt <= referenceAttempts; attempt++ {
		tx.ReferenceCode = s.newReference()
		err = repo.Create(ctx, tx)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrDuplicate) {
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		s.logger.Warn("Reference code collision", map[string]any{
			"reference_code": tx.ReferenceCode,
			"attempt":        attempt,
		})
	}
	return fmt.Errorf("failed to allocate a reference code: %w", err)
}

// InitiatePayment opens a gateway checkout for an unpaid transaction and marks it pending
func (s *Service) InitiatePayment(ctx context.Context, senderID, transactionID uint64) (*usecase.PaymentSession, error) {
	repo := s.uow.GetTransactionRepository(ctx)

	tx, err := s.ownedBySender(ctx, senderID, transactionID)
	if err != nil {
		return nil, err
	}

	if !tx.Status.IsAwaitingPayment() {
		return nil, errs.NewTransactionError(tx.ID, tx.ReferenceCode, string(tx.Status), "initiate payment",
			errs.NewInvalidTransitionError(string(tx.Status), string(entity.StatusPayinPending)))
	}

	callCtx, cancel := s.timer.WithTimeout(ctx, s.settings.GatewayTimeout)
	defer cancel()

	session, err := s.gateway.InitiatePayment(callCtx, tx.ReferenceCode, tx.TotalToPay,
		fmt.Sprintf("Transfer %s", tx.ReferenceCode))
	s.metrics.ProviderCall("gateway", "initiate_payment", outcome(err))
	if err != nil {
		return nil, errs.NewUpstreamError("gateway", "initiate payment", err)
	}

	gatewayID := session.GatewayTransactionID
	moved, err := repo.CompareAndSetStatus(ctx, tx.ID, entity.StatusChange{
		From:                 []entity.TransactionStatus{entity.StatusInitiated},
		To:                   entity.StatusPayinPending,
		GatewayTransactionID: &gatewayID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to mark payment pending: %w", err)
	}
	if moved {
		s.metrics.StatusChanged(string(entity.StatusInitiated), string(entity.StatusPayinPending))
	}

	updated, err := repo.GetByID(ctx, tx.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment initiated", map[string]any{
		"transaction_id":         tx.ID,
		"reference_code":         tx.ReferenceCode,
		"gateway_transaction_id": gatewayID,
		"status":                 updated.Status,
	})

	return &usecase.PaymentSession{Transaction: updated, CheckoutURL: session.CheckoutURL}, nil
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
