package model

import "time"

// Receiver represents the database model for payout destinations
type Receiver struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	Handle        string    `gorm:"uniqueIndex;not null;size:32"`
	UserID        *uint64   `gorm:"uniqueIndex"`
	FirstName     string    `gorm:"size:64"`
	WalletAddress string    `gorm:"size:64"`
	Provisional   bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for Receiver
func (Receiver) TableName() string {
	return "receivers"
}
