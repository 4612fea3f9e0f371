package service

import (
	"context"
	"testing"
	"time"

	"MarketAI/internal/model"
	"MarketAI/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func buildRollupService(t *testing.T) (RollupService, *rollupFixture) {
	t.Helper()
	setTestConfig(t)
	db := newTestDB(t)

	f := &rollupFixture{
		db:               db,
		userRepo:         repository.NewUserRepo(db),
		campaignRepo:     repository.NewCampaignRepo(db),
		campaignStatRepo: repository.NewCampaignStatisticRepo(db),
		productStatRepo:  repository.NewProductStatisticRepo(db),
		dailyStatRepo:    repository.NewDailyUserStatisticRepo(db),
		syncLogRepo:      repository.NewSyncLogRepo(db),
	}
	svc := NewRollupService(f.userRepo, f.campaignRepo, f.campaignStatRepo, f.productStatRepo, f.dailyStatRepo, f.syncLogRepo)
	return svc, f
}

type rollupFixture struct {
	db               *gorm.DB
	userRepo         repository.UserRepo
	campaignRepo     repository.CampaignRepo
	campaignStatRepo repository.CampaignStatisticRepo
	productStatRepo  repository.ProductStatisticRepo
	dailyStatRepo    repository.DailyUserStatisticRepo
	syncLogRepo      repository.SyncLogRepo
}

func TestRollupDateMaterializesPerUserTotals(t *testing.T) {
	svc, f := buildRollupService(t)
	ctx := context.Background()

	user := createTestUser(t, f.db, "rollup@example.com")
	active := createTestCampaign(t, f.db, user.ID, model.MarketplaceWildberries, model.StatusActive)
	paused := createTestCampaign(t, f.db, user.ID, model.MarketplaceWildberries, model.StatusPaused)

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.campaignStatRepo.SaveOrUpdateStatistic(ctx, &model.CampaignStatistic{
		CampaignID:  active.ID,
		Date:        day,
		Impressions: 1000,
		Clicks:      20, // ctr 2.00, roi 100.00
		Spent:       decimal.NewFromInt(100),
		Revenue:     decimal.NewFromInt(200),
		Conversions: 4,
	}))
	require.NoError(t, f.campaignStatRepo.SaveOrUpdateStatistic(ctx, &model.CampaignStatistic{
		CampaignID:  paused.ID,
		Date:        day,
		Impressions: 500,
		Clicks:      20, // ctr 4.00, roi 50.00
		Spent:       decimal.NewFromInt(100),
		Revenue:     decimal.NewFromInt(150),
		Conversions: 1,
	}))

	result, err := svc.RollupDate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.Processed)

	rows, err := f.dailyStatRepo.ListByUserAndRange(ctx, user.ID, day, day)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	stat := rows[0]
	assert.Equal(t, int64(1500), stat.TotalImpressions)
	assert.Equal(t, int64(40), stat.TotalClicks)
	assert.Equal(t, int64(5), stat.TotalConversions)
	assert.True(t, stat.TotalSpent.Equal(decimal.NewFromInt(200)))
	assert.True(t, stat.TotalRevenue.Equal(decimal.NewFromInt(350)))
	assert.Equal(t, int64(1), stat.ActiveCampaigns)

	// Straight mean of the per-row percentages: (2+4)/2 and (100+50)/2.
	assert.True(t, stat.AvgCTR.Equal(decimal.NewFromInt(3)), "avg ctr = %s", stat.AvgCTR)
	assert.True(t, stat.AvgROI.Equal(decimal.NewFromInt(75)), "avg roi = %s", stat.AvgROI)
}

func TestRollupDateIsIdempotent(t *testing.T) {
	svc, f := buildRollupService(t)
	ctx := context.Background()

	user := createTestUser(t, f.db, "idempotent@example.com")
	campaign := createTestCampaign(t, f.db, user.ID, model.MarketplaceWildberries, model.StatusActive)

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.campaignStatRepo.SaveOrUpdateStatistic(ctx, &model.CampaignStatistic{
		CampaignID:  campaign.ID,
		Date:        day,
		Impressions: 100,
	}))

	_, err := svc.RollupDate(ctx, day)
	require.NoError(t, err)

	// A correction lands after the first run; the re-run must overwrite.
	require.NoError(t, f.campaignStatRepo.SaveOrUpdateStatistic(ctx, &model.CampaignStatistic{
		CampaignID:  campaign.ID,
		Date:        day,
		Impressions: 300,
	}))
	_, err = svc.RollupDate(ctx, day)
	require.NoError(t, err)

	rows, err := f.dailyStatRepo.ListByUserAndRange(ctx, user.ID, day, day)
	require.NoError(t, err)
	require.Len(t, rows, 1, "re-running a date must not duplicate rollup rows")
	assert.Equal(t, int64(300), rows[0].TotalImpressions)
}

func TestRollupDateUserWithoutTraffic(t *testing.T) {
	svc, f := buildRollupService(t)
	ctx := context.Background()

	user := createTestUser(t, f.db, "quiet@example.com")
	createTestCampaign(t, f.db, user.ID, model.MarketplaceWildberries, model.StatusActive)

	day := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	result, err := svc.RollupDate(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)

	rows, err := f.dailyStatRepo.ListByUserAndRange(ctx, user.ID, day, day)
	require.NoError(t, err)
	require.Len(t, rows, 1, "users without traffic still get a zero rollup row")
	assert.Equal(t, int64(0), rows[0].TotalImpressions)
	assert.True(t, rows[0].AvgCTR.IsZero())
	assert.Equal(t, int64(1), rows[0].ActiveCampaigns)
}

func TestCleanupOldStatisticsKeepsDailyRollups(t *testing.T) {
	svc, f := buildRollupService(t)
	ctx := context.Background()

	user := createTestUser(t, f.db, "cleanup@example.com")
	campaign := createTestCampaign(t, f.db, user.ID, model.MarketplaceWildberries, model.StatusActive)

	old := time.Now().AddDate(0, 0, -400)
	recent := time.Now().AddDate(0, 0, -5)

	require.NoError(t, f.campaignStatRepo.SaveOrUpdateStatistic(ctx, &model.CampaignStatistic{CampaignID: campaign.ID, Date: old}))
	require.NoError(t, f.campaignStatRepo.SaveOrUpdateStatistic(ctx, &model.CampaignStatistic{CampaignID: campaign.ID, Date: recent}))
	require.NoError(t, f.productStatRepo.SaveOrUpdateStatistic(ctx, &model.ProductStatistic{CampaignID: campaign.ID, ProductID: "SKU-1", Date: old}))
	require.NoError(t, f.dailyStatRepo.SaveOrUpdateStatistic(ctx, &model.DailyUserStatistic{UserID: user.ID, Date: old}))

	deleted, err := svc.CleanupOldStatistics(ctx, 365)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	campaignRows, err := f.campaignStatRepo.ListByCampaignAndRange(ctx, campaign.ID, old, time.Now())
	require.NoError(t, err)
	assert.Len(t, campaignRows, 1, "recent detailed rows survive")

	dailyRows, err := f.dailyStatRepo.ListByUserAndRange(ctx, user.ID, old, time.Now())
	require.NoError(t, err)
	assert.Len(t, dailyRows, 1, "daily rollups are exempt from retention")
}
