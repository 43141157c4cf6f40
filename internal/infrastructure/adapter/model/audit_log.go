package model

import "time"

// AuditLog is an append-only record of an administrative action
type AuditLog struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Actor     string    `gorm:"not null;size:128"`
	Action    string    `gorm:"not null;size:48;index"`
	Detail    string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
