package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	errs "github.com/amirhossein-jamali/remitbridge/internal/domain/error"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// RateRepository implements RateRepository interface using GORM
type RateRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.RateRepository = (*RateRepository)(nil)

// NewRateRepository creates a new RateRepository instance
func NewRateRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *RateRepository {
	return &RateRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func rateToEntity(m *model.ExchangeRate) *entity.ExchangeRate {
	return &entity.ExchangeRate{
		ID:            m.ID,
		Pair:          m.Pair,
		BaseRate:      m.BaseRate,
		MarkupPercent: m.MarkupPercent,
		UpdatedAt:     m.UpdatedAt,
	}
}

// GetByPair retrieves a rate by pair name
func (r *RateRepository) GetByPair(ctx context.Context, pair string) (*entity.ExchangeRate, error) {
	var row model.ExchangeRate
	if err := r.db.WithContext(ctx).Where("pair = ?", pair).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrRateNotFound
		}
		r.logger.Error("Failed to read exchange rate", map[string]any{
			"pair":  pair,
			"error": err.Error(),
		})
		return nil, r.errorClassifier.wrapError("get rate", err)
	}
	return rateToEntity(&row), nil
}

// List returns every configured pair ordered by name
func (r *RateRepository) List(ctx context.Context) ([]*entity.ExchangeRate, error) {
	var rows []model.ExchangeRate
	if err := r.db.WithContext(ctx).Order("pair").Find(&rows).Error; err != nil {
		return nil, r.errorClassifier.wrapError("list rates", err)
	}

	out := make([]*entity.ExchangeRate, 0, len(rows))
	for i := range rows {
		out = append(out, rateToEntity(&rows[i]))
	}
	return out, nil
}

// Update saves base rate and markup of an existing pair
func (r *RateRepository) Update(ctx context.Context, rate *entity.ExchangeRate) error {
	rate.UpdatedAt = r.timeProvider.Now()
	result := r.db.WithContext(ctx).Model(&model.ExchangeRate{}).
		Where("pair = ?", rate.Pair).
		Updates(map[string]any{
			"base_rate":      rate.BaseRate,
			"markup_percent": rate.MarkupPercent,
			"updated_at":     rate.UpdatedAt,
		})
	if result.Error != nil {
		return r.errorClassifier.wrapError("update rate", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrRateNotFound
	}

	r.logger.Info("Exchange rate updated", map[string]any{
		"pair":           rate.Pair,
		"base_rate":      rate.BaseRate.String(),
		"markup_percent": rate.MarkupPercent.String(),
	})
	return nil
}
