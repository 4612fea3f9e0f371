package repository

import (
	"context"
	"time"

	"MarketAI/internal/model"

	"gorm.io/gorm"
)

type SyncLogRepo interface {
	CreateSyncLog(ctx context.Context, entry *model.SyncLog) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type syncLogRepoImpl struct {
	db *gorm.DB
}

func NewSyncLogRepo(db *gorm.DB) SyncLogRepo {
	return &syncLogRepoImpl{db: db}
}

func (r *syncLogRepoImpl) CreateSyncLog(ctx context.Context, entry *model.SyncLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *syncLogRepoImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.SyncLog{})
	return result.RowsAffected, result.Error
}
