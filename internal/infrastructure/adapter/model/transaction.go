package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for remittance transactions
type Transaction struct {
	ID                   uint64          `gorm:"primaryKey;autoIncrement"`
	ReferenceCode        string          `gorm:"uniqueIndex;not null;size:16"`
	SenderID             uint64          `gorm:"not null;index"`
	ReceiverID           uint64          `gorm:"not null;index"`
	Status               string          `gorm:"not null;size:32;index"`
	RoutingStrategy      string          `gorm:"not null;size:48"`
	DeliverySpeed        string          `gorm:"not null;size:16"`
	FiatAmountIn         decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	TotalToPay           decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	StablecoinAmount     decimal.Decimal `gorm:"type:numeric(24,6);not null"`
	ExpectedFiatOut      decimal.Decimal `gorm:"type:numeric(20,2);not null"`
	ExchangeRate         decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	ProviderRate         decimal.Decimal `gorm:"type:numeric(20,8);not null;default:0"`
	GatewayFee           decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	PartnerFee           decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	PlatformFee          decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	PlatformMargin       decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	GatewayTransactionID string          `gorm:"size:128;index"`
	ConfirmedAmount      decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	GasTxHash            string          `gorm:"size:80"`
	TokenTxHash          string          `gorm:"size:80"`
	GasFeePaid           decimal.Decimal `gorm:"type:numeric(30,18);not null;default:0"`
	FailureReason        string          `gorm:"size:255"`
	ClaimedAt            *time.Time
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
