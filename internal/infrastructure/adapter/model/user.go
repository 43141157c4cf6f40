package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents the database model for accounts
type User struct {
	ID        uint64    `gorm:"primaryKey"`
	Email     string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// SenderProfile holds the sender details of a user
type SenderProfile struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"uniqueIndex;not null"`
	FirstName string    `gorm:"size:64"`
	LastName  string    `gorm:"size:64"`
	Phone     string    `gorm:"size:32"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for SenderProfile
func (SenderProfile) TableName() string {
	return "sender_profiles"
}

// VolumeRecord aggregates completed volume per user and month
type VolumeRecord struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	UserID    uint64          `gorm:"not null;uniqueIndex:idx_volume_user_period"`
	Period    string          `gorm:"not null;size:7;uniqueIndex:idx_volume_user_period"`
	VolumeXOF decimal.Decimal `gorm:"column:volume_xof;type:numeric(24,2);not null;default:0"`
	Count     int64           `gorm:"not null;default:0"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName specifies the table name for VolumeRecord
func (VolumeRecord) TableName() string {
	return "volume_records"
}
