package service

import (
	"context"
	"log/slog"
	"time"

	"MarketAI/internal/api/config"
	"MarketAI/internal/model"
	"MarketAI/internal/pkg/util"
	"MarketAI/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// RollupResult summarizes one rollup run.
type RollupResult struct {
	Date      time.Time
	Total     int
	Processed int
}

// RollupService materializes the per-user daily statistics and enforces the
// retention policy on the detailed statistic tables.
type RollupService interface {
	RollupDate(ctx context.Context, date time.Time) (*RollupResult, error)
	CleanupOldStatistics(ctx context.Context, retentionDays int) (int64, error)
	CleanupOldSyncLogs(ctx context.Context, retentionDays int) (int64, error)
}

type rollupServiceImpl struct {
	userRepo         repository.UserRepo
	campaignRepo     repository.CampaignRepo
	campaignStatRepo repository.CampaignStatisticRepo
	productStatRepo  repository.ProductStatisticRepo
	dailyStatRepo    repository.DailyUserStatisticRepo
	syncLogRepo      repository.SyncLogRepo
}

func NewRollupService(
	userRepo repository.UserRepo,
	campaignRepo repository.CampaignRepo,
	campaignStatRepo repository.CampaignStatisticRepo,
	productStatRepo repository.ProductStatisticRepo,
	dailyStatRepo repository.DailyUserStatisticRepo,
	syncLogRepo repository.SyncLogRepo,
) RollupService {
	return &rollupServiceImpl{
		userRepo:         userRepo,
		campaignRepo:     campaignRepo,
		campaignStatRepo: campaignStatRepo,
		productStatRepo:  productStatRepo,
		dailyStatRepo:    dailyStatRepo,
		syncLogRepo:      syncLogRepo,
	}
}

// RollupDate builds the daily rollup row for every active user on the given
// date. Users are processed concurrently; one user's failure is logged and
// skipped without aborting the run, and a re-run for the same date upserts
// rather than duplicates.
func (s *rollupServiceImpl) RollupDate(ctx context.Context, date time.Time) (*RollupResult, error) {
	day := util.GetMidnight(date)

	users, err := s.userRepo.ListActiveUsers(ctx)
	if err != nil {
		return nil, err
	}

	processed := make(chan uint64, len(users))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(config.Cfg.Stats.RollupWorkers)

	for _, user := range users {
		user := user
		group.Go(func() error {
			if err := s.rollupUser(groupCtx, user.ID, day); err != nil {
				slog.ErrorContext(groupCtx, "daily rollup failed for user", "user_id", user.ID, "date", day.Format(time.DateOnly), "err", err)
				return nil
			}
			processed <- user.ID
			return nil
		})
	}

	_ = group.Wait()
	close(processed)

	result := &RollupResult{Date: day, Total: len(users)}
	for range processed {
		result.Processed++
	}

	slog.InfoContext(ctx, "daily rollup finished",
		"date", day.Format(time.DateOnly),
		"total", result.Total,
		"processed", result.Processed,
	)
	return result, nil
}

// rollupUser aggregates one user's campaign statistics for one day into a
// DailyUserStatistic row. AvgCTR and AvgROI are straight means of the per-row
// percentages, matching how the rows themselves were derived.
func (s *rollupServiceImpl) rollupUser(ctx context.Context, userID uint64, day time.Time) error {
	dayEnd := day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	rows, err := s.campaignStatRepo.ListByUserAndRange(ctx, userID, day, dayEnd)
	if err != nil {
		return err
	}

	activeCampaigns, err := s.campaignRepo.ListCampaignsByUser(ctx, userID, repository.CampaignFilters{Status: model.StatusActive})
	if err != nil {
		return err
	}

	stat := &model.DailyUserStatistic{
		UserID:          userID,
		Date:            day,
		ActiveCampaigns: int64(len(activeCampaigns)),
		TotalSpent:      decimal.Zero,
		TotalRevenue:    decimal.Zero,
		AvgCTR:          decimal.Zero,
		AvgROI:          decimal.Zero,
	}

	sumCTR := decimal.Zero
	sumROI := decimal.Zero
	for _, r := range rows {
		stat.TotalImpressions += r.Impressions
		stat.TotalClicks += r.Clicks
		stat.TotalConversions += r.Conversions
		stat.TotalSpent = stat.TotalSpent.Add(r.Spent)
		stat.TotalRevenue = stat.TotalRevenue.Add(r.Revenue)
		sumCTR = sumCTR.Add(r.CTR)
		sumROI = sumROI.Add(r.ROI)
	}
	if len(rows) > 0 {
		n := decimal.NewFromInt(int64(len(rows)))
		stat.AvgCTR = sumCTR.Div(n).Round(2)
		stat.AvgROI = sumROI.Div(n).Round(2)
	}

	return s.dailyStatRepo.SaveOrUpdateStatistic(ctx, stat)
}

// CleanupOldStatistics deletes campaign and product statistic rows older than
// the retention cutoff. The materialized daily rollups are kept forever.
func (s *rollupServiceImpl) CleanupOldStatistics(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = config.Cfg.Stats.RetentionDays
	}
	cutoff := util.GetMidnight(time.Now().AddDate(0, 0, -retentionDays))

	campaignRows, err := s.campaignStatRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	productRows, err := s.productStatRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return campaignRows, err
	}

	slog.InfoContext(ctx, "statistics retention cleanup finished",
		"cutoff", cutoff.Format(time.DateOnly),
		"campaign_rows", campaignRows,
		"product_rows", productRows,
	)
	return campaignRows + productRows, nil
}

func (s *rollupServiceImpl) CleanupOldSyncLogs(ctx context.Context, retentionDays int) (int64, error) {
	if retentionDays <= 0 {
		retentionDays = config.Cfg.Sync.LogRetentionDays
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	return s.syncLogRepo.DeleteOlderThan(ctx, cutoff)
}
