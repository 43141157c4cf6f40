package persistence

import (
	"context"

	"github.com/amirhossein-jamali/remitbridge/internal/domain/entity"
)

// AuditLogRepository stores administrative actions. Entries are never updated or deleted.
type AuditLogRepository interface {
	Append(ctx context.Context, entry *entity.AuditLogEntry) error
	List(ctx context.Context, page, pageSize int) ([]entity.AuditLogEntry, int64, error)
}
