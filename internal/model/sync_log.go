package model

import (
	"time"
)

const (
	SyncStatusSuccess = "success"
	SyncStatusError   = "error"
)

// SyncLog records one marketplace synchronization attempt for a user.
type SyncLog struct {
	ID          uint64      `gorm:"primaryKey" json:"id"`
	UserID      uint64      `gorm:"not null;index:idx_sync_user" json:"user_id"`
	Marketplace Marketplace `gorm:"type:varchar(50);not null" json:"marketplace"`
	Status      string      `gorm:"type:varchar(20);not null" json:"status"`
	Message     string      `gorm:"type:varchar(500)" json:"message"`
	SyncedCount int         `gorm:"not null;default:0" json:"synced_count"`
	CreatedAt   time.Time   `gorm:"index:idx_sync_created" json:"created_at"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SyncLog) TableName() string {
	return "sync_logs"
}
