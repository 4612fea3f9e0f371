package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CampaignStatistic holds one day of raw campaign counters plus the derived
// ratios. The derived columns are recomputed in BeforeSave so they are never
// stale relative to the raw values at rest.
type CampaignStatistic struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	CampaignID uint64    `gorm:"not null;index:idx_campaign_date,unique" json:"campaign_id"`
	Date       time.Time `gorm:"type:date;not null;index:idx_campaign_date,unique;index:idx_stat_date" json:"date"`

	Impressions int64           `gorm:"not null;default:0" json:"impressions"`
	Clicks      int64           `gorm:"not null;default:0" json:"clicks"`
	Spent       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"spent"`
	Conversions int64           `gorm:"not null;default:0" json:"conversions"`
	Revenue     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"revenue"`
	AddToCart   int64           `gorm:"not null;default:0" json:"add_to_cart"`

	// Derived, recomputed on every write.
	CTR            decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"ctr"`
	CPC            decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"cpc"`
	ConversionRate decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"conversion_rate"`
	ROI            decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"roi"`
	CartRate       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"cart_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Campaign Campaign `gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CampaignStatistic) TableName() string {
	return "campaign_statistics"
}

func (s *CampaignStatistic) BeforeSave(_ *gorm.DB) error {
	s.Recalculate()
	return nil
}

// Recalculate refreshes every derived ratio from the raw counters.
func (s *CampaignStatistic) Recalculate() {
	s.CTR = ratioPercent(decimal.NewFromInt(s.Clicks), decimal.NewFromInt(s.Impressions))
	s.CPC = costPer(s.Spent, s.Clicks)
	s.ConversionRate = ratioPercent(decimal.NewFromInt(s.Conversions), decimal.NewFromInt(s.Clicks))
	s.ROI = roiPercent(s.Revenue, s.Spent)
	s.CartRate = ratioPercent(decimal.NewFromInt(s.AddToCart), decimal.NewFromInt(s.Clicks))
}
