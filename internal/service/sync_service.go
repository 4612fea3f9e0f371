package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"MarketAI/internal/api/dto"
	"MarketAI/internal/model"
	"MarketAI/internal/pkg/consts"
	"MarketAI/internal/pkg/redis"
	"MarketAI/internal/pkg/wildberries"
	"MarketAI/internal/repository"

	"github.com/pkg/errors"
)

// SyncResult summarizes one marketplace synchronization for a user.
type SyncResult struct {
	UserID      uint64
	Marketplace model.Marketplace
	Synced      int
	Errors      []string
}

// SyncService pulls campaign statistics from marketplace APIs into the
// statistic tables, one user at a time.
type SyncService interface {
	SyncUser(ctx context.Context, userID uint64) (*SyncResult, error)
	SyncAllUsers(ctx context.Context) error
}

type syncServiceImpl struct {
	campaignRepo repository.CampaignRepo
	syncLogRepo  repository.SyncLogRepo
	statEntry    StatEntryService
	wbClient     *wildberries.Client
}

func NewSyncService(
	campaignRepo repository.CampaignRepo,
	syncLogRepo repository.SyncLogRepo,
	statEntry StatEntryService,
	wbClient *wildberries.Client,
) SyncService {
	return &syncServiceImpl{
		campaignRepo: campaignRepo,
		syncLogRepo:  syncLogRepo,
		statEntry:    statEntry,
		wbClient:     wbClient,
	}
}

// SyncUser refreshes yesterday's statistics for every Wildberries campaign a
// user owns. A per-user redis lock keeps the scheduled run and a manual
// trigger from overlapping. Each campaign failure is recorded but does not
// abort the remaining campaigns, and the run always ends with a SyncLog row.
func (s *syncServiceImpl) SyncUser(ctx context.Context, userID uint64) (*SyncResult, error) {
	lockKey := fmt.Sprintf("%s%d", consts.WildberriesSyncLock, userID)
	lockValue := time.Now().UnixNano()
	acquired, err := redis.TryLock(ctx, lockKey, lockValue, time.Minute*10, 1)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, errors.Errorf("sync already running for user %d", userID)
	}
	defer redis.UnLock(ctx, lockKey, lockValue)

	campaigns, err := s.campaignRepo.ListCampaignsByUser(ctx, userID, repository.CampaignFilters{
		Marketplace: model.MarketplaceWildberries,
	})
	if err != nil {
		return nil, err
	}

	result := &SyncResult{UserID: userID, Marketplace: model.MarketplaceWildberries}

	to := time.Now()
	from := to.AddDate(0, 0, -1)

	for _, campaign := range campaigns {
		if campaign.Key == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("campaign %d: %s", campaign.ID, ErrCampaignKeyMissing.Error()))
			continue
		}
		if campaign.ExternalID == nil {
			result.Errors = append(result.Errors, fmt.Sprintf("campaign %d: not linked to a marketplace advert", campaign.ID))
			continue
		}
		if err := s.syncCampaign(ctx, campaign, from, to); err != nil {
			slog.ErrorContext(ctx, "campaign sync failed", "campaign_id", campaign.ID, "err", err)
			result.Errors = append(result.Errors, fmt.Sprintf("campaign %d: %v", campaign.ID, err))
			continue
		}
		result.Synced++
	}

	s.writeSyncLog(ctx, result)
	return result, nil
}

// SyncAllUsers runs SyncUser for every user owning Wildberries campaigns.
func (s *syncServiceImpl) SyncAllUsers(ctx context.Context) error {
	userIDs, err := s.campaignRepo.ListUserIDsByMarketplace(ctx, model.MarketplaceWildberries)
	if err != nil {
		return err
	}

	for _, userID := range userIDs {
		if _, err := s.SyncUser(ctx, userID); err != nil {
			slog.ErrorContext(ctx, "user sync failed", "user_id", userID, "err", err)
		}
	}
	return nil
}

func (s *syncServiceImpl) syncCampaign(ctx context.Context, campaign *model.Campaign, from, to time.Time) error {
	wbStats, err := s.wbClient.GetCampaignStatistics(ctx, campaign.Key, *campaign.ExternalID, from, to)
	if err != nil {
		return err
	}

	for _, day := range wbStats.Days {
		entry := &dto.CampaignDayDTO{
			CampaignID:  campaign.ID,
			Date:        day.Date,
			Impressions: day.Views,
			Clicks:      day.Clicks,
			Spent:       day.Spent,
			Conversions: day.Orders,
			Revenue:     day.Sum,
			AddToCart:   day.AddToCart,
		}
		if err := s.statEntry.IngestCampaignDay(ctx, entry); err != nil {
			return errors.Wrapf(err, "day %s", day.Date)
		}
	}

	// Refresh the lifetime counters shown on campaign listings.
	campaign.Impressions = wbStats.Views
	campaign.Clicks = wbStats.Clicks
	campaign.Conversions = wbStats.Orders
	campaign.Revenue = wbStats.Sum
	campaign.Spent = wbStats.Spent
	return s.campaignRepo.SaveCampaign(ctx, campaign)
}

func (s *syncServiceImpl) writeSyncLog(ctx context.Context, result *SyncResult) {
	status := model.SyncStatusSuccess
	message := fmt.Sprintf("synced %d campaigns", result.Synced)
	if len(result.Errors) > 0 {
		status = model.SyncStatusError
		message = fmt.Sprintf("synced %d campaigns, %d failed: %s", result.Synced, len(result.Errors), result.Errors[0])
	}
	if len(message) > 500 {
		message = message[:500]
	}

	entry := &model.SyncLog{
		UserID:      result.UserID,
		Marketplace: result.Marketplace,
		Status:      status,
		Message:     message,
		SyncedCount: result.Synced,
	}
	if err := s.syncLogRepo.CreateSyncLog(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to write sync log", "user_id", result.UserID, "err", err)
	}
}
