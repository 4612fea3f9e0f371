package repository

import (
	"context"
	"time"

	"MarketAI/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyUserStatisticRepo interface {
	SaveOrUpdateStatistic(ctx context.Context, stat *model.DailyUserStatistic) error
	ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.DailyUserStatistic, error)
}

type dailyUserStatisticRepoImpl struct {
	db *gorm.DB
}

func NewDailyUserStatisticRepo(db *gorm.DB) DailyUserStatisticRepo {
	return &dailyUserStatisticRepoImpl{db: db}
}

// SaveOrUpdateStatistic upserts the unique (user_id, date) rollup row, so a
// re-run of the rollup for the same date overwrites instead of duplicating.
func (r *dailyUserStatisticRepoImpl) SaveOrUpdateStatistic(ctx context.Context, stat *model.DailyUserStatistic) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_impressions",
			"total_clicks",
			"total_spent",
			"total_revenue",
			"total_conversions",
			"active_campaigns",
			"avg_ctr",
			"avg_roi",
			"updated_at",
		}),
	}).Create(stat).Error
}

func (r *dailyUserStatisticRepoImpl) ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.DailyUserStatistic, error) {
	rows := make([]*model.DailyUserStatistic, 0)
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}
