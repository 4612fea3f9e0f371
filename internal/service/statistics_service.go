package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"MarketAI/internal/api/config"
	"MarketAI/internal/api/dto"
	"MarketAI/internal/model"
	"MarketAI/internal/pkg/consts"
	"MarketAI/internal/pkg/redis"
	"MarketAI/internal/pkg/util"
	"MarketAI/internal/repository"
	"MarketAI/internal/stats"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// StatisticsService builds the read-side reports over the statistic tables.
type StatisticsService interface {
	FinancialReport(ctx context.Context, userID uint64, startDate, endDate, marketplace string) (*dto.FinancialReportDTO, error)
	Dashboard(ctx context.Context, userID uint64) (*dto.DashboardDTO, error)
	CampaignDetail(ctx context.Context, userID, campaignID uint64, startDate, endDate string) (*dto.CampaignDetailDTO, error)
	ChartSeries(ctx context.Context, userID, campaignID uint64, startDate, endDate string) ([]dto.ChartPointDTO, error)
	TopProducts(ctx context.Context, userID, campaignID uint64, rawLimit, startDate, endDate string) ([]stats.ProductTotals, error)
	DailySeries(ctx context.Context, userID uint64, startDate, endDate string) ([]dto.DailyStatDTO, error)
}

type statisticsServiceImpl struct {
	campaignRepo     repository.CampaignRepo
	campaignStatRepo repository.CampaignStatisticRepo
	productStatRepo  repository.ProductStatisticRepo
	dailyStatRepo    repository.DailyUserStatisticRepo
}

func NewStatisticsService(
	campaignRepo repository.CampaignRepo,
	campaignStatRepo repository.CampaignStatisticRepo,
	productStatRepo repository.ProductStatisticRepo,
	dailyStatRepo repository.DailyUserStatisticRepo,
) StatisticsService {
	return &statisticsServiceImpl{
		campaignRepo:     campaignRepo,
		campaignStatRepo: campaignStatRepo,
		productStatRepo:  productStatRepo,
		dailyStatRepo:    dailyStatRepo,
	}
}

// FinancialReport aggregates a user's campaign statistics over an inclusive
// date range (default: the trailing 30 days), broken down by marketplace and
// by status. The status breakdown always carries every known status. A
// non-empty marketplace narrows both the campaign set and the aggregated rows.
func (s *statisticsServiceImpl) FinancialReport(ctx context.Context, userID uint64, startDate, endDate, marketplace string) (*dto.FinancialReportDTO, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	from, to := util.ResolveWindow(start, end, config.Cfg.Stats.DashboardWindowDays)

	filters := repository.CampaignFilters{Marketplace: model.Marketplace(marketplace)}
	campaigns, err := s.campaignRepo.ListCampaignsByUser(ctx, userID, filters)
	if err != nil {
		return nil, err
	}
	rows, err := s.campaignStatRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	campaignByID := make(map[uint64]*model.Campaign, len(campaigns))
	var activeCount, pausedCount int64
	for _, c := range campaigns {
		campaignByID[c.ID] = c
		switch c.Status {
		case model.StatusActive:
			activeCount++
		case model.StatusPaused:
			pausedCount++
		}
	}

	if marketplace != "" {
		filtered := rows[:0]
		for _, r := range rows {
			if _, ok := campaignByID[r.CampaignID]; ok {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	totals := stats.Aggregate(rows)

	byMarketplace := stats.GroupBy(rows, func(r *model.CampaignStatistic) string {
		if c, ok := campaignByID[r.CampaignID]; ok {
			return string(c.Marketplace)
		}
		return ""
	})
	byStatus := stats.GroupByStatus(rows, func(r *model.CampaignStatistic) model.CampaignStatus {
		if c, ok := campaignByID[r.CampaignID]; ok {
			return c.Status
		}
		return model.StatusDraft
	})

	report := &dto.FinancialReportDTO{
		Summary: dto.FinancialSummaryDTO{
			TotalCampaigns:   int64(len(campaigns)),
			ActiveCampaigns:  activeCount,
			PausedCampaigns:  pausedCount,
			TotalSpent:       totals.Spent,
			TotalRevenue:     totals.Revenue,
			ROI:              totals.ROI,
			TotalImpressions: totals.Impressions,
			TotalClicks:      totals.Clicks,
			CTR:              totals.CTR,
		},
		Period: dto.PeriodDTO{
			StartDate: from.Format(time.DateOnly),
			EndDate:   to.Format(time.DateOnly),
		},
		ByMarketplace: make(map[string]dto.GroupTotalsDTO, len(byMarketplace)),
		ByStatus:      make(map[string]dto.GroupTotalsDTO, len(byStatus)),
	}

	marketplaceCounts := countCampaignsBy(campaigns, func(c *model.Campaign) string { return string(c.Marketplace) })
	statusCounts := countCampaignsBy(campaigns, func(c *model.Campaign) string { return string(c.Status) })

	for key, t := range byMarketplace {
		report.ByMarketplace[key] = dto.GroupTotalsDTO{Totals: t, CampaignsCount: marketplaceCounts[key]}
	}
	for status, t := range byStatus {
		report.ByStatus[string(status)] = dto.GroupTotalsDTO{Totals: t, CampaignsCount: statusCounts[string(status)]}
	}

	return report, nil
}

// Dashboard sums the current 30-day window and reports growth against the
// preceding window of equal length. Each growth figure falls back to 0 when
// its previous-period value is 0. The result is cached until midnight.
func (s *statisticsServiceImpl) Dashboard(ctx context.Context, userID uint64) (*dto.DashboardDTO, error) {
	cacheKey := fmt.Sprintf("%s%d", consts.DashboardStatsKey, userID)
	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		dashboard := &dto.DashboardDTO{}
		if err = json.Unmarshal([]byte(cached), dashboard); err == nil {
			return dashboard, nil
		}
		slog.WarnContext(ctx, "discarding unreadable dashboard cache", "key", cacheKey)
	}

	windowDays := config.Cfg.Stats.DashboardWindowDays
	now := time.Now()
	currentFrom := util.GetMidnight(now.AddDate(0, 0, -windowDays))
	previousFrom := util.GetMidnight(now.AddDate(0, 0, -2*windowDays))

	currentRows, err := s.campaignStatRepo.ListByUserAndRange(ctx, userID, currentFrom, now)
	if err != nil {
		return nil, err
	}
	previousRows, err := s.campaignStatRepo.ListByUserAndRange(ctx, userID, previousFrom, currentFrom.Add(-time.Nanosecond))
	if err != nil {
		return nil, err
	}

	current := stats.Aggregate(currentRows)
	previous := stats.Aggregate(previousRows)

	campaigns, err := s.campaignRepo.ListCampaignsByUser(ctx, userID, repository.CampaignFilters{})
	if err != nil {
		return nil, err
	}

	dashboard := &dto.DashboardDTO{
		CurrentPeriod: dto.DashboardPeriodDTO{
			TotalRevenue: current.Revenue,
			TotalSpent:   current.Spent,
			TotalOrders:  current.Conversions,
			Campaigns:    int64(len(campaigns)),
		},
		Growth: dto.DashboardGrowthDTO{
			RevenueGrowth: growthPercent(current.Revenue, previous.Revenue),
			SpentGrowth:   growthPercent(current.Spent, previous.Spent),
			OrdersGrowth:  growthPercent(decimal.NewFromInt(current.Conversions), decimal.NewFromInt(previous.Conversions)),
		},
		PeriodDays: windowDays,
	}

	if payload, err := json.Marshal(dashboard); err == nil {
		if err = redis.SetWithMidnightExpiration(ctx, cacheKey, payload); err != nil {
			slog.WarnContext(ctx, "failed to cache dashboard", "key", cacheKey, "err", err)
		}
	}

	return dashboard, nil
}

// CampaignDetail returns one campaign's aggregated totals, its daily time
// series (days without data are absent, not zero-filled) and its top five
// products over the window (default: the trailing 7 days).
func (s *statisticsServiceImpl) CampaignDetail(ctx context.Context, userID, campaignID uint64, startDate, endDate string) (*dto.CampaignDetailDTO, error) {
	campaign, err := s.campaignRepo.GetCampaignByIDAndUser(ctx, campaignID, userID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	from, to := util.ResolveWindow(start, end, config.Cfg.Stats.DetailWindowDays)

	rows, err := s.campaignStatRepo.ListByCampaignAndRange(ctx, campaignID, from, to)
	if err != nil {
		return nil, err
	}
	productRows, err := s.productStatRepo.ListByCampaignAndRange(ctx, campaignID, from, to)
	if err != nil {
		return nil, err
	}

	return &dto.CampaignDetailDTO{
		Campaign: dto.CampaignIdentityDTO{
			ID:          campaign.ID,
			Name:        campaign.Name,
			Marketplace: string(campaign.Marketplace),
			Status:      string(campaign.Status),
		},
		TotalMetrics: stats.Aggregate(rows),
		Period: dto.PeriodDTO{
			StartDate: from.Format(time.DateOnly),
			EndDate:   to.Format(time.DateOnly),
		},
		ChartData:   chartPoints(rows),
		TopProducts: stats.TopProducts(productRows, 5),
	}, nil
}

// ChartSeries returns the daily time series alone, owner-checked, with the
// same absent-date semantics as CampaignDetail.
func (s *statisticsServiceImpl) ChartSeries(ctx context.Context, userID, campaignID uint64, startDate, endDate string) ([]dto.ChartPointDTO, error) {
	campaign, err := s.campaignRepo.GetCampaignByIDAndUser(ctx, campaignID, userID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	from, to := util.ResolveWindow(start, end, config.Cfg.Stats.DetailWindowDays)

	rows, err := s.campaignStatRepo.ListByCampaignAndRange(ctx, campaignID, from, to)
	if err != nil {
		return nil, err
	}
	return chartPoints(rows), nil
}

// TopProducts ranks products by summed revenue over the window, either across
// all of a user's campaigns (campaignID 0) or one owned campaign. The limit is
// parsed from its raw query form: anything missing, non-numeric or outside
// [1, 100] falls back to the configured default.
func (s *statisticsServiceImpl) TopProducts(ctx context.Context, userID, campaignID uint64, rawLimit, startDate, endDate string) ([]stats.ProductTotals, error) {
	limit := util.ClampOrDefault(rawLimit, consts.ClampTopProductsMin, consts.ClampTopProductsMax, config.Cfg.Stats.TopProductsDefault)

	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	from, to := util.ResolveWindow(start, end, config.Cfg.Stats.DashboardWindowDays)

	var rows []*model.ProductStatistic
	if campaignID != 0 {
		campaign, err := s.campaignRepo.GetCampaignByIDAndUser(ctx, campaignID, userID)
		if err != nil {
			return nil, err
		}
		if campaign == nil {
			return nil, ErrCampaignNotFound
		}
		rows, err = s.productStatRepo.ListByCampaignAndRange(ctx, campaignID, from, to)
		if err != nil {
			return nil, err
		}
	} else {
		rows, err = s.productStatRepo.ListByUserAndRange(ctx, userID, from, to)
		if err != nil {
			return nil, err
		}
	}
	return stats.TopProducts(rows, limit), nil
}

// DailySeries returns the materialized per-user rollup rows for a window.
func (s *statisticsServiceImpl) DailySeries(ctx context.Context, userID uint64, startDate, endDate string) ([]dto.DailyStatDTO, error) {
	start, end, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	from, to := util.ResolveWindow(start, end, config.Cfg.Stats.DashboardWindowDays)

	rows, err := s.dailyStatRepo.ListByUserAndRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	series := make([]dto.DailyStatDTO, 0, len(rows))
	for _, r := range rows {
		series = append(series, dto.DailyStatDTO{
			Date:             r.Date.Format(time.DateOnly),
			TotalImpressions: r.TotalImpressions,
			TotalClicks:      r.TotalClicks,
			TotalSpent:       r.TotalSpent,
			TotalRevenue:     r.TotalRevenue,
			TotalConversions: r.TotalConversions,
			ActiveCampaigns:  r.ActiveCampaigns,
			AvgCTR:           r.AvgCTR,
			AvgROI:           r.AvgROI,
		})
	}
	return series, nil
}

// parseRange parses both optional bounds of a report window and rejects an
// inverted range.
func parseRange(startDate, endDate string) (*time.Time, *time.Time, error) {
	start, err := util.ParseDate(startDate)
	if err != nil {
		return nil, nil, ErrParamInvalid
	}
	end, err := util.ParseDate(endDate)
	if err != nil {
		return nil, nil, ErrParamInvalid
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, ErrInvalidDateRange
	}
	return start, end, nil
}

func chartPoints(rows []*model.CampaignStatistic) []dto.ChartPointDTO {
	chart := make([]dto.ChartPointDTO, 0, len(rows))
	for _, r := range rows {
		chart = append(chart, dto.ChartPointDTO{
			Date:        r.Date.Format(time.DateOnly),
			Impressions: r.Impressions,
			Clicks:      r.Clicks,
			Spent:       r.Spent,
			Revenue:     r.Revenue,
			Conversions: r.Conversions,
		})
	}
	return chart
}

// growthPercent returns (current-previous)/previous*100 rounded to 2dp, 0
// when the previous value is 0.
func growthPercent(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsZero() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2)
}

func countCampaignsBy(campaigns []*model.Campaign, keyOf func(*model.Campaign) string) map[string]int64 {
	counts := make(map[string]int64)
	for _, c := range campaigns {
		counts[keyOf(c)]++
	}
	return counts
}
