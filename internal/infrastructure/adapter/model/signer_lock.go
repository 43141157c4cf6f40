package model

import (
	"time"
)

// SignerLock is a lease on a treasury signing key shared by every replica
type SignerLock struct {
	LockKey   string    `gorm:"primaryKey;size:128"`
	Token     string    `gorm:"not null;size:64"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for SignerLock
func (SignerLock) TableName() string {
	return "signer_locks"
}
