package service

import (
	"fmt"
	"testing"

	"MarketAI/internal/api/config"
	"MarketAI/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&model.User{},
		&model.Campaign{},
		&model.CampaignStatistic{},
		&model.ProductStatistic{},
		&model.DailyUserStatistic{},
		&model.SyncLog{},
	)
	require.NoError(t, err)

	return db
}

func setTestConfig(t *testing.T) {
	t.Helper()
	previous := config.Cfg
	config.Cfg = &config.Config{
		Stats: config.StatsConfig{
			DashboardWindowDays: 30,
			DetailWindowDays:    7,
			RetentionDays:       365,
			TopProductsDefault:  10,
			RollupWorkers:       4,
		},
		Sync: config.SyncConfig{LogRetentionDays: 30},
	}
	t.Cleanup(func() { config.Cfg = previous })
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Password: "hash", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCampaign(t *testing.T, db *gorm.DB, userID uint64, marketplace model.Marketplace, status model.CampaignStatus) *model.Campaign {
	t.Helper()
	campaign := &model.Campaign{
		UserID:      userID,
		Name:        "campaign",
		Key:         "wb-key",
		Marketplace: marketplace,
		Status:      status,
	}
	require.NoError(t, db.Create(campaign).Error)
	return campaign
}
