package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyUserStatistic is the materialized per-user daily rollup written by the
// nightly job. It is never created through the API and is exempt from the
// detailed-statistics retention cleanup.
type DailyUserStatistic struct {
	ID     uint64    `gorm:"primaryKey" json:"id"`
	UserID uint64    `gorm:"not null;index:idx_user_date,unique" json:"user_id"`
	Date   time.Time `gorm:"type:date;not null;index:idx_user_date,unique;index:idx_daily_date" json:"date"`

	TotalImpressions int64           `gorm:"not null;default:0" json:"total_impressions"`
	TotalClicks      int64           `gorm:"not null;default:0" json:"total_clicks"`
	TotalSpent       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_spent"`
	TotalRevenue     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"total_revenue"`
	TotalConversions int64           `gorm:"not null;default:0" json:"total_conversions"`
	ActiveCampaigns  int64           `gorm:"not null;default:0" json:"active_campaigns"`
	AvgCTR           decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"avg_ctr"`
	AvgROI           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"avg_roi"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailyUserStatistic) TableName() string {
	return "daily_user_statistics"
}
