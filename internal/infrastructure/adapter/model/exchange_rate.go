package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents a configured currency pair
type ExchangeRate struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement"`
	Pair          string          `gorm:"uniqueIndex;not null;size:32"`
	BaseRate      decimal.Decimal `gorm:"type:numeric(20,6);not null"`
	MarkupPercent decimal.Decimal `gorm:"type:numeric(8,4);not null;default:0"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName specifies the table name for ExchangeRate
func (ExchangeRate) TableName() string {
	return "exchange_rates"
}
