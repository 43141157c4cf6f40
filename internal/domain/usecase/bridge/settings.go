package bridge

import (
	"github.com/amirhossein-jamali/remitbridge/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// Settings holds the bridge parameters. It is built once from configuration at startup.
type Settings struct {
	// GasSponsorship is the native amount sent ahead of every token transfer
	GasSponsorship decimal.Decimal

	// AttemptTimeout bounds one background bridge attempt end to end
	AttemptTimeout core.Duration

	// ReceiptTimeout bounds each wait for a mined receipt
	ReceiptTimeout core.Duration

	// EscrowSweepInterval is how often the sweeper looks for releasable escrow
	EscrowSweepInterval core.Duration

	// EscrowStaleAfter flags escrow whose receiver has not attached a wallet for this long
	EscrowStaleAfter core.Duration

	// SweepBatchSize caps how many escrowed transactions one sweep inspects
	SweepBatchSize int
}

// DefaultSettings returns the reference bridge parameters
func DefaultSettings() Settings {
	return Settings{
		GasSponsorship:      decimal.RequireFromString("0.0005"),
		AttemptTimeout:      5 * core.Minute,
		ReceiptTimeout:      2 * core.Minute,
		EscrowSweepInterval: 10 * core.Minute,
		EscrowStaleAfter:    72 * core.Hour,
		SweepBatchSize:      200,
	}
}
