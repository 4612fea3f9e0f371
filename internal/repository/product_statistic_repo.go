package repository

import (
	"context"
	"time"

	"MarketAI/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductStatisticRepo interface {
	SaveOrUpdateStatistic(ctx context.Context, stat *model.ProductStatistic) error
	ListByCampaignAndRange(ctx context.Context, campaignID uint64, start, end time.Time) ([]*model.ProductStatistic, error)
	ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.ProductStatistic, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type productStatisticRepoImpl struct {
	db *gorm.DB
}

func NewProductStatisticRepo(db *gorm.DB) ProductStatisticRepo {
	return &productStatisticRepoImpl{db: db}
}

func (r *productStatisticRepoImpl) SaveOrUpdateStatistic(ctx context.Context, stat *model.ProductStatistic) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "campaign_id"}, {Name: "product_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"product_name",
			"views",
			"clicks",
			"add_to_cart",
			"add_to_favorites",
			"orders",
			"revenue",
			"ad_spent",
			"conversion_rate",
			"acos",
			"updated_at",
		}),
	}).Create(stat).Error
}

func (r *productStatisticRepoImpl) ListByCampaignAndRange(ctx context.Context, campaignID uint64, start, end time.Time) ([]*model.ProductStatistic, error) {
	rows := make([]*model.ProductStatistic, 0)
	result := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC, id ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (r *productStatisticRepoImpl) ListByUserAndRange(ctx context.Context, userID uint64, start, end time.Time) ([]*model.ProductStatistic, error) {
	rows := make([]*model.ProductStatistic, 0)
	result := r.db.WithContext(ctx).
		Joins("JOIN campaigns ON campaigns.id = product_statistics.campaign_id").
		Where("campaigns.user_id = ?", userID).
		Where("product_statistics.date >= ? AND product_statistics.date <= ?", start, end).
		Order("product_statistics.date ASC, product_statistics.id ASC").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	return rows, nil
}

func (r *productStatisticRepoImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("date < ?", cutoff).
		Delete(&model.ProductStatistic{})
	return result.RowsAffected, result.Error
}
