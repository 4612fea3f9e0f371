package dto

import (
	"github.com/shopspring/decimal"
)

type CreateCampaignDTO struct {
	Name        string           `json:"name" binding:"required,max=255"`
	Key         string           `json:"key" binding:"required,max=255"`
	Description *string          `json:"description,omitempty"`
	ExternalID  *int64           `json:"external_id,omitempty"`
	Marketplace string           `json:"marketplace" binding:"omitempty,oneof=wildberries ozon yandex_market other"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	StartDate   string           `json:"start_date,omitempty"`
	EndDate     string           `json:"end_date,omitempty"`
}

type UpdateCampaignDTO struct {
	Name        *string          `json:"name,omitempty" binding:"omitempty,max=255"`
	Key         *string          `json:"key,omitempty" binding:"omitempty,max=255"`
	Description *string          `json:"description,omitempty"`
	ExternalID  *int64           `json:"external_id,omitempty"`
	Budget      *decimal.Decimal `json:"budget,omitempty"`
	StartDate   *string          `json:"start_date,omitempty"`
	EndDate     *string          `json:"end_date,omitempty"`
}

type CampaignListQuery struct {
	Marketplace string `form:"marketplace" binding:"omitempty,oneof=wildberries ozon yandex_market other"`
	Status      string `form:"status" binding:"omitempty,oneof=draft active paused completed archived"`
}
