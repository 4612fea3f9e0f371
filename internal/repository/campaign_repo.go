package repository

import (
	"context"
	"errors"

	"MarketAI/internal/model"

	"gorm.io/gorm"
)

// CampaignFilters narrows campaign listings; zero values mean "no filter".
type CampaignFilters struct {
	Marketplace model.Marketplace
	Status      model.CampaignStatus
}

type CampaignRepo interface {
	CreateCampaign(ctx context.Context, campaign *model.Campaign) error
	SaveCampaign(ctx context.Context, campaign *model.Campaign) error
	DeleteCampaign(ctx context.Context, id uint64) error
	GetCampaignByID(ctx context.Context, id uint64) (*model.Campaign, error)
	GetCampaignByIDAndUser(ctx context.Context, id, userID uint64) (*model.Campaign, error)
	ListCampaignsByUser(ctx context.Context, userID uint64, filters CampaignFilters) ([]*model.Campaign, error)
	ListUserIDsByMarketplace(ctx context.Context, marketplace model.Marketplace) ([]uint64, error)
	UpdateCampaignStatus(ctx context.Context, id uint64, status model.CampaignStatus) error
}

type campaignRepoImpl struct {
	db *gorm.DB
}

func NewCampaignRepo(db *gorm.DB) CampaignRepo {
	return &campaignRepoImpl{db: db}
}

func (r *campaignRepoImpl) CreateCampaign(ctx context.Context, campaign *model.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *campaignRepoImpl) SaveCampaign(ctx context.Context, campaign *model.Campaign) error {
	return r.db.WithContext(ctx).Save(campaign).Error
}

func (r *campaignRepoImpl) DeleteCampaign(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&model.Campaign{}, id).Error
}

func (r *campaignRepoImpl) GetCampaignByID(ctx context.Context, id uint64) (*model.Campaign, error) {
	var campaign model.Campaign
	err := r.db.WithContext(ctx).First(&campaign, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepoImpl) GetCampaignByIDAndUser(ctx context.Context, id, userID uint64) (*model.Campaign, error) {
	var campaign model.Campaign
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&campaign).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &campaign, nil
}

func (r *campaignRepoImpl) ListCampaignsByUser(ctx context.Context, userID uint64, filters CampaignFilters) ([]*model.Campaign, error) {
	campaigns := make([]*model.Campaign, 0)

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filters.Marketplace != "" {
		query = query.Where("marketplace = ?", filters.Marketplace)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	result := query.Order("created_at DESC").Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}
	return campaigns, nil
}

func (r *campaignRepoImpl) ListUserIDsByMarketplace(ctx context.Context, marketplace model.Marketplace) ([]uint64, error) {
	userIDs := make([]uint64, 0)
	result := r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Where("marketplace = ?", marketplace).
		Distinct("user_id").
		Pluck("user_id", &userIDs)
	if result.Error != nil {
		return nil, result.Error
	}
	return userIDs, nil
}

func (r *campaignRepoImpl) UpdateCampaignStatus(ctx context.Context, id uint64, status model.CampaignStatus) error {
	return r.db.WithContext(ctx).
		Model(&model.Campaign{}).
		Where("id = ?", id).
		Update("status", status).Error
}
