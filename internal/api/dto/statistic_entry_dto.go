package dto

import (
	"github.com/shopspring/decimal"
)

// CampaignDayDTO carries one day of raw campaign counters. Derived ratios are
// recomputed server-side and never accepted from the caller.
type CampaignDayDTO struct {
	CampaignID  uint64          `json:"campaign_id" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Impressions int64           `json:"impressions" binding:"min=0"`
	Clicks      int64           `json:"clicks" binding:"min=0"`
	Spent       decimal.Decimal `json:"spent"`
	Conversions int64           `json:"conversions" binding:"min=0"`
	Revenue     decimal.Decimal `json:"revenue"`
	AddToCart   int64           `json:"add_to_cart" binding:"min=0"`
}

// ProductDayDTO carries one day of raw per-product counters.
type ProductDayDTO struct {
	CampaignID     uint64          `json:"campaign_id" binding:"required"`
	ProductID      string          `json:"product_id" binding:"required,max=100"`
	ProductName    string          `json:"product_name" binding:"omitempty,max=500"`
	Date           string          `json:"date" binding:"required"`
	Views          int64           `json:"views" binding:"min=0"`
	Clicks         int64           `json:"clicks" binding:"min=0"`
	AddToCart      int64           `json:"add_to_cart" binding:"min=0"`
	AddToFavorites int64           `json:"add_to_favorites" binding:"min=0"`
	Orders         int64           `json:"orders" binding:"min=0"`
	Revenue        decimal.Decimal `json:"revenue"`
	AdSpent        decimal.Decimal `json:"ad_spent"`
}
