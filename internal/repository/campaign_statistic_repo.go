package repository

import (
	"context"
	"time"

	"MarketAI/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CampaignStatisticRepo interface {
	SaveOrUpdateStatistic(ctx context.Context, stat *model.CampaignStatistic) error
	ListByCampaignAndRange(ctx context.Context, campaignID uint64, start, end time.Time) ([]*model.CampaignStatistic, error)
	ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.CampaignStatistic, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type campaignStatisticRepoImpl struct {
	db *gorm.DB
}

func NewCampaignStatisticRepo(db *gorm.DB) CampaignStatisticRepo {
	return &campaignStatisticRepoImpl{db: db}
}

// SaveOrUpdateStatistic upserts the unique (campaign_id, date) row. Raw and
// derived columns are both written; BeforeSave recomputed the latter.
func (r *campaignStatisticRepoImpl) SaveOrUpdateStatistic(ctx context.Context, stat *model.CampaignStatistic) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "campaign_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"impressions",
			"clicks",
			"spent",
			"conversions",
			"revenue",
			"add_to_cart",
			"ctr",
			"cpc",
			"conversion_rate",
			"roi",
			"cart_rate",
			"updated_at",
		}),
	}).Create(stat).Error
}

func (r *campaignStatisticRepoImpl) ListByCampaignAndRange(ctx context.Context, campaignID uint64, start, end time.Time) ([]*model.CampaignStatistic, error) {
	rows := make([]*model.CampaignStatistic, 0)
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (r *campaignStatisticRepoImpl) ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.CampaignStatistic, error) {
	rows := make([]*model.CampaignStatistic, 0)
	result := r.db.WithContext(ctx).
		Joins("JOIN campaigns ON campaigns.id = campaign_statistics.campaign_id").
		Where("campaigns.user_id = ?", userID).
		Where("campaign_statistics.date >= ? AND campaign_statistics.date <= ?", start, end).
		Order("campaign_statistics.date ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (r *campaignStatisticRepoImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("date < ?", cutoff).
		Delete(&model.CampaignStatistic{})
	return result.RowsAffected, result.Error
}
