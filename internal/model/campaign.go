package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CampaignStatus is the stable status tag stored in the database.
// Human-readable labels are resolved at presentation time only.
type CampaignStatus string

const (
	StatusDraft     CampaignStatus = "draft"
	StatusActive    CampaignStatus = "active"
	StatusPaused    CampaignStatus = "paused"
	StatusCompleted CampaignStatus = "completed"
	StatusArchived  CampaignStatus = "archived"
)

// CampaignStatuses lists every known status in a fixed order, so grouped
// reports always render a stable legend (including zero-count entries).
func CampaignStatuses() []CampaignStatus {
	return []CampaignStatus{StatusDraft, StatusActive, StatusPaused, StatusCompleted, StatusArchived}
}

type Marketplace string

const (
	MarketplaceWildberries  Marketplace = "wildberries"
	MarketplaceOzon         Marketplace = "ozon"
	MarketplaceYandexMarket Marketplace = "yandex_market"
	MarketplaceOther        Marketplace = "other"
)

type Campaign struct {
	ID          uint64          `gorm:"primaryKey" json:"id"`
	UserID      uint64          `gorm:"not null;index:idx_user_status" json:"user_id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Key         string          `gorm:"type:varchar(255);not null" json:"-"`
	ExternalID  *int64          `gorm:"index:idx_external" json:"external_id,omitempty"`
	Description *string         `json:"description,omitempty"`
	Marketplace Marketplace     `gorm:"type:varchar(50);not null;default:wildberries;index:idx_marketplace_status" json:"marketplace"`
	Status      CampaignStatus  `gorm:"type:varchar(20);not null;default:draft;index:idx_user_status;index:idx_marketplace_status" json:"status"`
	Budget      *decimal.Decimal `gorm:"type:decimal(12,2)" json:"budget,omitempty"`
	Spent       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"spent"`
	StartDate   *time.Time      `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time      `gorm:"type:date" json:"end_date,omitempty"`

	// Lifetime counters refreshed by the marketplace sync.
	Impressions int64           `gorm:"not null;default:0" json:"impressions"`
	Clicks      int64           `gorm:"not null;default:0" json:"clicks"`
	Conversions int64           `gorm:"not null;default:0" json:"conversions"`
	Revenue     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"revenue"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

// CTR returns the lifetime click-through rate, 0 when there are no impressions.
func (c *Campaign) CTR() decimal.Decimal {
	return ratioPercent(decimal.NewFromInt(c.Clicks), decimal.NewFromInt(c.Impressions))
}

// ConversionRate returns the lifetime conversion rate, 0 when there are no clicks.
func (c *Campaign) ConversionRate() decimal.Decimal {
	return ratioPercent(decimal.NewFromInt(c.Conversions), decimal.NewFromInt(c.Clicks))
}

// ROI returns the lifetime return on investment, 0 when nothing was spent.
func (c *Campaign) ROI() decimal.Decimal {
	return roiPercent(c.Revenue, c.Spent)
}
