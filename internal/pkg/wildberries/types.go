package wildberries

import (
	"github.com/shopspring/decimal"
)

// CampaignInfo is one advertising campaign as returned by the Wildberries
// advert API.
type CampaignInfo struct {
	AdvertID int64           `json:"advertId"`
	Name     string          `json:"name"`
	Status   string          `json:"status"`
	Budget   decimal.Decimal `json:"budget"`
	Spent    decimal.Decimal `json:"spent"`
}

// CampaignStats is the aggregated counter block for one campaign and range.
type CampaignStats struct {
	Views  int64           `json:"views"`
	Clicks int64           `json:"clicks"`
	Orders int64           `json:"orders"`
	Sum    decimal.Decimal `json:"sum"`
	Spent  decimal.Decimal `json:"spent"`

	Days []DayStats `json:"days"`
}

// DayStats is one day of campaign counters inside CampaignStats.
type DayStats struct {
	Date      string          `json:"date"`
	Views     int64           `json:"views"`
	Clicks    int64           `json:"clicks"`
	Orders    int64           `json:"orders"`
	Sum       decimal.Decimal `json:"sum"`
	Spent     decimal.Decimal `json:"spent"`
	AddToCart int64           `json:"atbs"`
}
