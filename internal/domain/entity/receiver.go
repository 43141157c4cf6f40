package entity

import (
	"strings"
	"time"
)

// Receiver is a payout destination keyed by a public handle
type Receiver struct {
	ID            uint64
	Handle        string
	UserID        *uint64 // nil while the profile is provisional
	FirstName     string
	WalletAddress string
	Provisional   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasWallet reports whether funds can be bridged to this receiver
func (r *Receiver) HasWallet() bool {
	return r.WalletAddress != ""
}

// NormalizeHandle lowercases a handle and strips the leading '@'
func NormalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}
