package usecase

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// BalanceReading is a best-effort external balance; Error is set when the lookup failed
type BalanceReading struct {
	Amount *decimal.Decimal
	Error  string
}

// LiquiditySnapshot aggregates the balances needed to keep the pipeline funded
type LiquiditySnapshot struct {
	GatewayXOF      BalanceReading
	TreasuryToken   BalanceReading
	TreasuryNative  BalanceReading
	EscrowCount     int64
	EscrowTotal     decimal.Decimal
	EscrowFiatOut   decimal.Decimal
	CompletedVolume decimal.Decimal
}

// Analytics summarises transaction activity
type Analytics struct {
	CountByStatus map[entity.TransactionStatus]int64
	Completed     entity.TransactionTotals
	Refunded      entity.TransactionTotals
}

// AdminUseCase groups the constrained recovery and operations actions
type AdminUseCase interface {
	RetryBridge(ctx context.Context, actor string, transactionID uint64) (*entity.Transaction, error)
	ForceStatus(ctx context.Context, actor string, transactionID uint64, status, reason string) (*entity.Transaction, error)
	Refund(ctx context.Context, actor string, transactionID uint64) (*entity.Transaction, error)
	UpdateRate(ctx context.Context, actor, pair string, update entity.RateUpdate) (*entity.ExchangeRate, error)
	Broadcast(ctx context.Context, actor, title, body string) error
	DeleteUser(ctx context.Context, actor string, userID uint64) error
	Liquidity(ctx context.Context) (*LiquiditySnapshot, error)
	Analytics(ctx context.Context) (*Analytics, error)
	AuditLogs(ctx context.Context, page, pageSize int) (*entity.AuditPage, error)
}
