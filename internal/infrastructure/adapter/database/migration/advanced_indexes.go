package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific advanced indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// webhook lookup by gateway id
		name: "idx_transactions_gateway_tx",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_gateway_tx
			ON transactions (gateway_transaction_id)
			WHERE gateway_transaction_id <> ''`,
	},
	{
		// sender and receiver history
		name: "idx_transactions_sender_status",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_sender_status
			ON transactions (sender_id, status)`,
	},
	{
		name: "idx_transactions_receiver_status",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_receiver_status
			ON transactions (receiver_id, status)`,
	},
	{
		// escrow sweep only scans held transactions
		name: "idx_transactions_escrow",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_escrow
			ON transactions (receiver_id, created_at)
			WHERE status = 'PAYIN_SUCCESS' AND claimed_at IS NULL`,
	},
	{
		name: "idx_transactions_created_at_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_transactions_created_at_brin
			ON transactions USING BRIN (created_at)
			WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates advanced PostgreSQL indexes for better performance
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", map[string]any{
		"count": len(advancedIndexes),
	})
	return nil
}

// CreatePerformanceTweaks applies PostgreSQL performance tweaks. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) {
	m.logger.Info("Applying PostgreSQL performance tweaks", nil)

	// status updates rewrite rows in place
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions SET (fillfactor = 90)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for transactions table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE transactions ALTER COLUMN status SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for status", map[string]any{
			"error": err.Error(),
		})
	}
}
