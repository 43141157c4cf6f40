package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is an account that can send and receive transfers
type User struct {
	ID        uint64
	Email     string
	CreatedAt time.Time
}

// SenderProfile holds the sender details shown on claim previews
type SenderProfile struct {
	ID        uint64
	UserID    uint64
	FirstName string
	LastName  string
	Phone     string
	CreatedAt time.Time
}

// VolumeRecord aggregates completed XOF volume for a user and month
type VolumeRecord struct {
	ID        uint64
	UserID    uint64
	Period    string // YYYY-MM
	VolumeXOF decimal.Decimal
	Count     int64
	UpdatedAt time.Time
}

// VolumePeriod formats the month bucket a completion falls into
func VolumePeriod(t time.Time) string {
	return t.UTC().Format("2006-01")
}
