package dto

import (
	"MarketAI/internal/stats"

	"github.com/shopspring/decimal"
)

// PeriodDTO echoes the resolved inclusive date range of a report.
type PeriodDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// GroupTotalsDTO is one breakdown entry of the financial report.
type GroupTotalsDTO struct {
	stats.Totals
	CampaignsCount int64 `json:"campaigns_count"`
}

// FinancialSummaryDTO is the headline block of the financial report.
type FinancialSummaryDTO struct {
	TotalCampaigns  int64           `json:"total_campaigns"`
	ActiveCampaigns int64           `json:"active_campaigns"`
	PausedCampaigns int64           `json:"paused_campaigns"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	ROI             decimal.Decimal `json:"roi"`
	TotalImpressions int64          `json:"total_impressions"`
	TotalClicks     int64           `json:"total_clicks"`
	CTR             decimal.Decimal `json:"ctr"`
}

type FinancialReportDTO struct {
	Summary       FinancialSummaryDTO       `json:"summary"`
	Period        PeriodDTO                 `json:"period"`
	ByMarketplace map[string]GroupTotalsDTO `json:"by_marketplace"`
	ByStatus      map[string]GroupTotalsDTO `json:"by_status"`
}

// DashboardPeriodDTO sums one 30-day window.
type DashboardPeriodDTO struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	TotalOrders  int64           `json:"total_orders"`
	Campaigns    int64           `json:"campaigns"`
}

// DashboardGrowthDTO holds the period-over-period growth percentages. Each
// metric is 0 when its previous-period value is 0.
type DashboardGrowthDTO struct {
	RevenueGrowth decimal.Decimal `json:"revenue_growth"`
	SpentGrowth   decimal.Decimal `json:"spent_growth"`
	OrdersGrowth  decimal.Decimal `json:"orders_growth"`
}

type DashboardDTO struct {
	CurrentPeriod DashboardPeriodDTO `json:"current_period"`
	Growth        DashboardGrowthDTO `json:"growth"`
	PeriodDays    int                `json:"period_days"`
}

// ChartPointDTO is one point of a campaign's daily time series. Dates with no
// statistic row are absent, not zero-filled.
type ChartPointDTO struct {
	Date        string          `json:"date"`
	Impressions int64           `json:"impressions"`
	Clicks      int64           `json:"clicks"`
	Spent       decimal.Decimal `json:"spent"`
	Revenue     decimal.Decimal `json:"revenue"`
	Conversions int64           `json:"conversions"`
}

type CampaignIdentityDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Marketplace string `json:"marketplace"`
	Status      string `json:"status"`
}

type CampaignDetailDTO struct {
	Campaign     CampaignIdentityDTO   `json:"campaign"`
	TotalMetrics stats.Totals          `json:"total_metrics"`
	Period       PeriodDTO             `json:"period"`
	ChartData    []ChartPointDTO       `json:"chart_data"`
	TopProducts  []stats.ProductTotals `json:"top_products"`
}

// DailyStatDTO is one materialized per-user daily rollup row.
type DailyStatDTO struct {
	Date             string          `json:"date"`
	TotalImpressions int64           `json:"total_impressions"`
	TotalClicks      int64           `json:"total_clicks"`
	TotalSpent       decimal.Decimal `json:"total_spent"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalConversions int64           `json:"total_conversions"`
	ActiveCampaigns  int64           `json:"active_campaigns"`
	AvgCTR           decimal.Decimal `json:"avg_ctr"`
	AvgROI           decimal.Decimal `json:"avg_roi"`
}
