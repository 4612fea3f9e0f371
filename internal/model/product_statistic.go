package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductStatistic tracks one day of performance for a single marketplace
// product inside a campaign.
type ProductStatistic struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	CampaignID  uint64    `gorm:"not null;index:idx_campaign_product_date,unique" json:"campaign_id"`
	ProductID   string    `gorm:"type:varchar(100);not null;index:idx_campaign_product_date,unique;index:idx_product_date" json:"product_id"`
	ProductName string    `gorm:"type:varchar(500)" json:"product_name"`
	Date        time.Time `gorm:"type:date;not null;index:idx_campaign_product_date,unique;index:idx_product_date;index:idx_pstat_date" json:"date"`

	Views          int64           `gorm:"not null;default:0" json:"views"`
	Clicks         int64           `gorm:"not null;default:0" json:"clicks"`
	AddToCart      int64           `gorm:"not null;default:0" json:"add_to_cart"`
	AddToFavorites int64           `gorm:"not null;default:0" json:"add_to_favorites"`
	Orders         int64           `gorm:"not null;default:0" json:"orders"`
	Revenue        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"revenue"`
	AdSpent        decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"ad_spent"`

	// Derived, recomputed on every write.
	ConversionRate decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"conversion_rate"`
	ACoS           decimal.Decimal `gorm:"column:acos;type:decimal(5,2);not null;default:0" json:"acos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Campaign Campaign `gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (ProductStatistic) TableName() string {
	return "product_statistics"
}

func (s *ProductStatistic) BeforeSave(_ *gorm.DB) error {
	s.Recalculate()
	return nil
}

// Recalculate refreshes the derived ratios from the raw counters.
func (s *ProductStatistic) Recalculate() {
	s.ConversionRate = ratioPercent(decimal.NewFromInt(s.Orders), decimal.NewFromInt(s.Clicks))
	s.ACoS = ratioPercent(s.AdSpent, s.Revenue)
}
