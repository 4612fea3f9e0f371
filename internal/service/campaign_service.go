package service

import (
	"context"

	"MarketAI/internal/api/dto"
	"MarketAI/internal/model"
	"MarketAI/internal/pkg/util"
	"MarketAI/internal/repository"
)

type CampaignService interface {
	CreateCampaign(ctx context.Context, userID uint64, createDTO *dto.CreateCampaignDTO) (*model.Campaign, error)
	UpdateCampaign(ctx context.Context, userID, campaignID uint64, updateDTO *dto.UpdateCampaignDTO) (*model.Campaign, error)
	DeleteCampaign(ctx context.Context, userID, campaignID uint64) error
	GetCampaign(ctx context.Context, userID, campaignID uint64) (*model.Campaign, error)
	ListCampaigns(ctx context.Context, userID uint64, query *dto.CampaignListQuery) ([]*model.Campaign, error)
	ActivateCampaign(ctx context.Context, userID, campaignID uint64) error
	PauseCampaign(ctx context.Context, userID, campaignID uint64) error
	ArchiveCampaign(ctx context.Context, userID, campaignID uint64) error
}

type campaignServiceImpl struct {
	campaignRepo repository.CampaignRepo
}

func NewCampaignService(campaignRepo repository.CampaignRepo) CampaignService {
	return &campaignServiceImpl{campaignRepo: campaignRepo}
}

func (s *campaignServiceImpl) CreateCampaign(ctx context.Context, userID uint64, createDTO *dto.CreateCampaignDTO) (*model.Campaign, error) {
	startDate, err := util.ParseDate(createDTO.StartDate)
	if err != nil {
		return nil, ErrParamInvalid
	}
	endDate, err := util.ParseDate(createDTO.EndDate)
	if err != nil {
		return nil, ErrParamInvalid
	}

	marketplace := model.Marketplace(createDTO.Marketplace)
	if marketplace == "" {
		marketplace = model.MarketplaceWildberries
	}

	campaign := &model.Campaign{
		UserID:      userID,
		Name:        createDTO.Name,
		Key:         createDTO.Key,
		Description: createDTO.Description,
		ExternalID:  createDTO.ExternalID,
		Marketplace: marketplace,
		Status:      model.StatusDraft,
		Budget:      createDTO.Budget,
		StartDate:   startDate,
		EndDate:     endDate,
	}

	if err = s.campaignRepo.CreateCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *campaignServiceImpl) UpdateCampaign(ctx context.Context, userID, campaignID uint64, updateDTO *dto.UpdateCampaignDTO) (*model.Campaign, error) {
	campaign, err := s.getOwned(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	if updateDTO.Name != nil {
		campaign.Name = *updateDTO.Name
	}
	if updateDTO.Key != nil {
		campaign.Key = *updateDTO.Key
	}
	if updateDTO.Description != nil {
		campaign.Description = updateDTO.Description
	}
	if updateDTO.ExternalID != nil {
		campaign.ExternalID = updateDTO.ExternalID
	}
	if updateDTO.Budget != nil {
		campaign.Budget = updateDTO.Budget
	}
	if updateDTO.StartDate != nil {
		startDate, err := util.ParseDate(*updateDTO.StartDate)
		if err != nil {
			return nil, ErrParamInvalid
		}
		campaign.StartDate = startDate
	}
	if updateDTO.EndDate != nil {
		endDate, err := util.ParseDate(*updateDTO.EndDate)
		if err != nil {
			return nil, ErrParamInvalid
		}
		campaign.EndDate = endDate
	}

	if err = s.campaignRepo.SaveCampaign(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *campaignServiceImpl) DeleteCampaign(ctx context.Context, userID, campaignID uint64) error {
	if _, err := s.getOwned(ctx, userID, campaignID); err != nil {
		return err
	}
	return s.campaignRepo.DeleteCampaign(ctx, campaignID)
}

func (s *campaignServiceImpl) GetCampaign(ctx context.Context, userID, campaignID uint64) (*model.Campaign, error) {
	return s.getOwned(ctx, userID, campaignID)
}

func (s *campaignServiceImpl) ListCampaigns(ctx context.Context, userID uint64, query *dto.CampaignListQuery) ([]*model.Campaign, error) {
	filters := repository.CampaignFilters{
		Marketplace: model.Marketplace(query.Marketplace),
		Status:      model.CampaignStatus(query.Status),
	}
	return s.campaignRepo.ListCampaignsByUser(ctx, userID, filters)
}

func (s *campaignServiceImpl) ActivateCampaign(ctx context.Context, userID, campaignID uint64) error {
	return s.transition(ctx, userID, campaignID, model.StatusActive)
}

func (s *campaignServiceImpl) PauseCampaign(ctx context.Context, userID, campaignID uint64) error {
	return s.transition(ctx, userID, campaignID, model.StatusPaused)
}

func (s *campaignServiceImpl) ArchiveCampaign(ctx context.Context, userID, campaignID uint64) error {
	return s.transition(ctx, userID, campaignID, model.StatusArchived)
}

func (s *campaignServiceImpl) transition(ctx context.Context, userID, campaignID uint64, status model.CampaignStatus) error {
	if _, err := s.getOwned(ctx, userID, campaignID); err != nil {
		return err
	}
	return s.campaignRepo.UpdateCampaignStatus(ctx, campaignID, status)
}

// getOwned fetches a campaign scoped to its owner. A campaign that exists but
// belongs to another user is reported as not found, never as forbidden.
func (s *campaignServiceImpl) getOwned(ctx context.Context, userID, campaignID uint64) (*model.Campaign, error) {
	campaign, err := s.campaignRepo.GetCampaignByIDAndUser(ctx, campaignID, userID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return campaign, nil
}
