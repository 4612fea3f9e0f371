package service

import (
	"context"
	"fmt"
	"log/slog"

	"MarketAI/internal/api/dto"
	"MarketAI/internal/model"
	"MarketAI/internal/pkg/consts"
	"MarketAI/internal/pkg/redis"
	"MarketAI/internal/pkg/util"
	"MarketAI/internal/repository"
)

// StatEntryService is the single write path for daily statistic rows. The
// Record* methods serve the authenticated API and enforce campaign ownership;
// the Ingest* methods serve trusted internal producers (marketplace sync,
// stat-event consumers) that already resolved the campaign.
type StatEntryService interface {
	RecordCampaignDay(ctx context.Context, userID uint64, entry *dto.CampaignDayDTO) (*model.CampaignStatistic, error)
	RecordProductDay(ctx context.Context, userID uint64, entry *dto.ProductDayDTO) (*model.ProductStatistic, error)
	IngestCampaignDay(ctx context.Context, entry *dto.CampaignDayDTO) error
	IngestProductDay(ctx context.Context, entry *dto.ProductDayDTO) error
}

type statEntryServiceImpl struct {
	campaignRepo     repository.CampaignRepo
	campaignStatRepo repository.CampaignStatisticRepo
	productStatRepo  repository.ProductStatisticRepo
}

func NewStatEntryService(
	campaignRepo repository.CampaignRepo,
	campaignStatRepo repository.CampaignStatisticRepo,
	productStatRepo repository.ProductStatisticRepo,
) StatEntryService {
	return &statEntryServiceImpl{
		campaignRepo:     campaignRepo,
		campaignStatRepo: campaignStatRepo,
		productStatRepo:  productStatRepo,
	}
}

func (s *statEntryServiceImpl) RecordCampaignDay(ctx context.Context, userID uint64, entry *dto.CampaignDayDTO) (*model.CampaignStatistic, error) {
	campaign, err := s.campaignRepo.GetCampaignByIDAndUser(ctx, entry.CampaignID, userID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	stat, err := s.saveCampaignDay(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.invalidateCaches(ctx, campaign.UserID, entry.CampaignID)
	return stat, nil
}

func (s *statEntryServiceImpl) RecordProductDay(ctx context.Context, userID uint64, entry *dto.ProductDayDTO) (*model.ProductStatistic, error) {
	campaign, err := s.campaignRepo.GetCampaignByIDAndUser(ctx, entry.CampaignID, userID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	stat, err := s.saveProductDay(ctx, entry)
	if err != nil {
		return nil, err
	}
	s.invalidateCaches(ctx, campaign.UserID, entry.CampaignID)
	return stat, nil
}

// IngestCampaignDay writes a day row for a campaign resolved by id only. An
// unknown campaign is reported as not found so consumers can drop the event.
func (s *statEntryServiceImpl) IngestCampaignDay(ctx context.Context, entry *dto.CampaignDayDTO) error {
	campaign, err := s.campaignRepo.GetCampaignByID(ctx, entry.CampaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}

	if _, err = s.saveCampaignDay(ctx, entry); err != nil {
		return err
	}
	s.invalidateCaches(ctx, campaign.UserID, entry.CampaignID)
	return nil
}

func (s *statEntryServiceImpl) IngestProductDay(ctx context.Context, entry *dto.ProductDayDTO) error {
	campaign, err := s.campaignRepo.GetCampaignByID(ctx, entry.CampaignID)
	if err != nil {
		return err
	}
	if campaign == nil {
		return ErrCampaignNotFound
	}

	if _, err = s.saveProductDay(ctx, entry); err != nil {
		return err
	}
	s.invalidateCaches(ctx, campaign.UserID, entry.CampaignID)
	return nil
}

func (s *statEntryServiceImpl) saveCampaignDay(ctx context.Context, entry *dto.CampaignDayDTO) (*model.CampaignStatistic, error) {
	date, err := util.ParseDate(entry.Date)
	if err != nil || date == nil {
		return nil, ErrParamInvalid
	}

	stat := &model.CampaignStatistic{
		CampaignID:  entry.CampaignID,
		Date:        *date,
		Impressions: entry.Impressions,
		Clicks:      entry.Clicks,
		Spent:       entry.Spent,
		Conversions: entry.Conversions,
		Revenue:     entry.Revenue,
		AddToCart:   entry.AddToCart,
	}
	if err = s.campaignStatRepo.SaveOrUpdateStatistic(ctx, stat); err != nil {
		return nil, err
	}
	return stat, nil
}

func (s *statEntryServiceImpl) saveProductDay(ctx context.Context, entry *dto.ProductDayDTO) (*model.ProductStatistic, error) {
	date, err := util.ParseDate(entry.Date)
	if err != nil || date == nil {
		return nil, ErrParamInvalid
	}

	stat := &model.ProductStatistic{
		CampaignID:     entry.CampaignID,
		ProductID:      entry.ProductID,
		ProductName:    entry.ProductName,
		Date:           *date,
		Views:          entry.Views,
		Clicks:         entry.Clicks,
		AddToCart:      entry.AddToCart,
		AddToFavorites: entry.AddToFavorites,
		Orders:         entry.Orders,
		Revenue:        entry.Revenue,
		AdSpent:        entry.AdSpent,
	}
	if err = s.productStatRepo.SaveOrUpdateStatistic(ctx, stat); err != nil {
		return nil, err
	}
	return stat, nil
}

// invalidateCaches drops the cached reports touched by the write. Cache
// eviction is best effort: a failure is logged, never surfaced to the writer.
func (s *statEntryServiceImpl) invalidateCaches(ctx context.Context, userID, campaignID uint64) {
	keys := []string{
		fmt.Sprintf("%s%d", consts.DashboardStatsKey, userID),
		fmt.Sprintf("%s%d", consts.CampaignDetailKey, campaignID),
	}
	for _, key := range keys {
		if err := redis.DeleteKey(ctx, key); err != nil {
			slog.WarnContext(ctx, "failed to invalidate stats cache", "key", key, "err", err)
		}
	}
}
