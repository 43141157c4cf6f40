package migration

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// defaultRates are the commercial pairs quoted before an operator sets them
var defaultRates = map[string]string{
	entity.PairEURXOFInstant:  "719.9",
	entity.PairEURXOFStandard: "690",
}

// SeedExchangeRates inserts the default rate pairs, leaving existing pairs untouched
type SeedExchangeRates struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewSeedExchangeRates creates a new migration instance
func NewSeedExchangeRates(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *SeedExchangeRates {
	return &SeedExchangeRates{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Run executes the migration
func (m *SeedExchangeRates) Run(ctx context.Context) error {
	m.logger.Info("Seeding default exchange rates", nil)

	now := time.Now().UTC()
	if m.timeProvider != nil {
		now = m.timeProvider.Now()
	}

	for pair, base := range defaultRates {
		row := model.ExchangeRate{
			Pair:          pair,
			BaseRate:      decimal.RequireFromString(base),
			MarkupPercent: decimal.Zero,
			UpdatedAt:     now,
		}
		err := m.db.WithContext(ctx).
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "pair"}}, DoNothing: true}).
			Create(&row).Error
		if err != nil {
			m.logger.Error("Failed to seed exchange rate", map[string]any{
				"pair":  pair,
				"error": err.Error(),
			})
			return err
		}
	}

	return nil
}
