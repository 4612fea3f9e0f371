package repository

import (
	"context"
	"testing"

	"MarketAI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCampaignByIDAndUser(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCampaignRepo(db)

	owner := createTestUser(t, db, "owner@example.com")
	stranger := createTestUser(t, db, "stranger@example.com")
	campaign := createTestCampaign(t, db, owner.ID, model.StatusActive)

	found, err := repo.GetCampaignByIDAndUser(ctx, campaign.ID, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, campaign.ID, found.ID)

	found, err = repo.GetCampaignByIDAndUser(ctx, campaign.ID, stranger.ID)
	require.NoError(t, err)
	assert.Nil(t, found, "another user's campaign reads as absent")

	found, err = repo.GetCampaignByIDAndUser(ctx, 9999, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestListCampaignsByUserFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCampaignRepo(db)

	user := createTestUser(t, db, "filters@example.com")
	createTestCampaign(t, db, user.ID, model.StatusActive)
	createTestCampaign(t, db, user.ID, model.StatusPaused)
	ozon := &model.Campaign{UserID: user.ID, Name: "ozon", Key: "k", Marketplace: model.MarketplaceOzon, Status: model.StatusActive}
	require.NoError(t, db.Create(ozon).Error)

	all, err := repo.ListCampaignsByUser(ctx, user.ID, CampaignFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := repo.ListCampaignsByUser(ctx, user.ID, CampaignFilters{Status: model.StatusActive})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	wb, err := repo.ListCampaignsByUser(ctx, user.ID, CampaignFilters{Marketplace: model.MarketplaceWildberries})
	require.NoError(t, err)
	assert.Len(t, wb, 2)
}

func TestUpdateCampaignStatus(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCampaignRepo(db)

	user := createTestUser(t, db, "status@example.com")
	campaign := createTestCampaign(t, db, user.ID, model.StatusDraft)

	require.NoError(t, repo.UpdateCampaignStatus(ctx, campaign.ID, model.StatusActive))

	found, err := repo.GetCampaignByID(ctx, campaign.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, model.StatusActive, found.Status)
}

func TestListUserIDsByMarketplace(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	repo := NewCampaignRepo(db)

	first := createTestUser(t, db, "first@example.com")
	second := createTestUser(t, db, "second@example.com")
	createTestCampaign(t, db, first.ID, model.StatusActive)
	createTestCampaign(t, db, first.ID, model.StatusPaused)
	createTestCampaign(t, db, second.ID, model.StatusActive)

	userIDs, err := repo.ListUserIDsByMarketplace(ctx, model.MarketplaceWildberries)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint64{first.ID, second.ID}, userIDs, "duplicates collapse to one entry per user")
}
