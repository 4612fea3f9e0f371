package service

import (
	"context"
	"testing"

	"MarketAI/internal/api/dto"
	"MarketAI/internal/model"
	"MarketAI/internal/repository"

	"github.com/stretchr/testify/assert"
)

func buildStatEntryService(t *testing.T) StatEntryService {
	t.Helper()
	setTestConfig(t)
	db := newTestDB(t)
	_ = createTestUser(t, db, "entry@example.com")
	return NewStatEntryService(
		repository.NewCampaignRepo(db),
		repository.NewCampaignStatisticRepo(db),
		repository.NewProductStatisticRepo(db),
	)
}

func TestRecordCampaignDayUnknownCampaign(t *testing.T) {
	svc := buildStatEntryService(t)

	_, err := svc.RecordCampaignDay(context.Background(), 1, &dto.CampaignDayDTO{
		CampaignID: 9999,
		Date:       "2026-08-10",
	})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestRecordProductDayUnknownCampaign(t *testing.T) {
	svc := buildStatEntryService(t)

	_, err := svc.RecordProductDay(context.Background(), 1, &dto.ProductDayDTO{
		CampaignID: 9999,
		ProductID:  "SKU-1",
		Date:       "2026-08-10",
	})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestRecordCampaignDayForeignCampaignReadsAsNotFound(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	owner := createTestUser(t, db, "entry-owner@example.com")
	stranger := createTestUser(t, db, "entry-stranger@example.com")
	campaign := createTestCampaign(t, db, owner.ID, model.MarketplaceWildberries, model.StatusActive)

	svc := NewStatEntryService(
		repository.NewCampaignRepo(db),
		repository.NewCampaignStatisticRepo(db),
		repository.NewProductStatisticRepo(db),
	)

	_, err := svc.RecordCampaignDay(context.Background(), stranger.ID, &dto.CampaignDayDTO{
		CampaignID: campaign.ID,
		Date:       "2026-08-10",
	})
	assert.ErrorIs(t, err, ErrCampaignNotFound)
}

func TestRecordCampaignDayRejectsBadDate(t *testing.T) {
	setTestConfig(t)
	db := newTestDB(t)
	user := createTestUser(t, db, "entry-date@example.com")
	campaign := createTestCampaign(t, db, user.ID, model.MarketplaceWildberries, model.StatusActive)

	svc := NewStatEntryService(
		repository.NewCampaignRepo(db),
		repository.NewCampaignStatisticRepo(db),
		repository.NewProductStatisticRepo(db),
	)

	_, err := svc.RecordCampaignDay(context.Background(), user.ID, &dto.CampaignDayDTO{
		CampaignID: campaign.ID,
		Date:       "10/08/2026",
	})
	assert.ErrorIs(t, err, ErrParamInvalid)
}
