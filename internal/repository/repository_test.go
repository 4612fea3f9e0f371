package repository

import (
	"fmt"
	"testing"

	"MarketAI/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test and migrates the full
// schema. A named shared-cache DSN keeps every pooled connection on the same
// database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
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

func createTestUser(t *testing.T, db *gorm.DB, email string) *model.User {
	t.Helper()
	user := &model.User{Email: email, Password: "hash", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestCampaign(t *testing.T, db *gorm.DB, userID uint64, status model.CampaignStatus) *model.Campaign {
	t.Helper()
	campaign := &model.Campaign{
		UserID:      userID,
		Name:        "campaign",
		Key:         "wb-key",
		Marketplace: model.MarketplaceWildberries,
		Status:      status,
	}
	require.NoError(t, db.Create(campaign).Error)
	return campaign
}
