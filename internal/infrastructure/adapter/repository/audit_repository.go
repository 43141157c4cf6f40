package repository

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/remitbridge/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// AuditLogRepository implements AuditLogRepository interface using GORM
type AuditLogRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	errorClassifier *ErrorClassifier
}

var _ persistence.AuditLogRepository = (*AuditLogRepository)(nil)

// NewAuditLogRepository creates a new AuditLogRepository instance
func NewAuditLogRepository(db *gorm.DB, timeProvider coreport.TimeProvider) *AuditLogRepository {
	return &AuditLogRepository{
		db:              db,
		timeProvider:    timeProvider,
		errorClassifier: NewErrorClassifier(),
	}
}

// Append inserts an entry
func (r *AuditLogRepository) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = r.timeProvider.Now()
	}
	row := model.AuditLog{
		Actor:     entry.Actor,
		Action:    string(entry.Action),
		Detail:    entry.Detail,
		CreatedAt: entry.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return r.errorClassifier.wrapError("append audit log", err)
	}
	entry.ID = row.ID
	return nil
}

// List returns one page of entries, newest first, and the total count. Pages start at 1.
func (r *AuditLogRepository) List(ctx context.Context, page, pageSize int) ([]entity.AuditLogEntry, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.AuditLog{}).Count(&total).Error; err != nil {
		return nil, 0, r.errorClassifier.wrapError("count audit log", err)
	}

	var rows []model.AuditLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&rows).Error
	if err != nil {
		return nil, 0, r.errorClassifier.wrapError("list audit log", err)
	}

	out := make([]entity.AuditLogEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.AuditLogEntry{
			ID:        row.ID,
			Actor:     row.Actor,
			Action:    entity.AuditAction(row.Action),
			Detail:    row.Detail,
			CreatedAt: row.CreatedAt,
		})
	}
	return out, total, nil
}
