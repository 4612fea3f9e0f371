package stats

import (
	"testing"

	"MarketAI/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func row(campaignID uint64, impressions, clicks, conversions int64, spent, revenue int64) *model.CampaignStatistic {
	s := &model.CampaignStatistic{
		CampaignID:  campaignID,
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: conversions,
		Spent:       decimal.NewFromInt(spent),
		Revenue:     decimal.NewFromInt(revenue),
	}
	s.Recalculate()
	return s
}

func TestAggregateRatioOfSums(t *testing.T) {
	// Per-row CTRs are 50% and 0.5%; a naive mean would report 25.25%.
	rows := []*model.CampaignStatistic{
		row(1, 10, 5, 0, 0, 0),
		row(2, 1000, 5, 0, 0, 0),
	}

	totals := Aggregate(rows)

	assert.Equal(t, int64(1010), totals.Impressions)
	assert.Equal(t, int64(10), totals.Clicks)
	assert.True(t, totals.CTR.Equal(decimal.NewFromFloat(0.99)), "ctr = %s", totals.CTR)
}

func TestAggregateROIFromSums(t *testing.T) {
	rows := []*model.CampaignStatistic{
		row(1, 0, 0, 0, 100, 300),
		row(2, 0, 0, 0, 300, 300),
	}

	totals := Aggregate(rows)

	// (600-400)/400*100
	assert.True(t, totals.ROI.Equal(decimal.NewFromInt(50)), "roi = %s", totals.ROI)
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)

	assert.Equal(t, int64(0), totals.Impressions)
	assert.True(t, totals.Spent.IsZero())
	assert.True(t, totals.CTR.IsZero())
	assert.True(t, totals.ROI.IsZero())
}

func TestGroupBySkipsEmptyKey(t *testing.T) {
	rows := []*model.CampaignStatistic{
		row(1, 100, 10, 0, 0, 0),
		row(2, 100, 10, 0, 0, 0),
	}

	grouped := GroupBy(rows, func(r *model.CampaignStatistic) string {
		if r.CampaignID == 2 {
			return ""
		}
		return "wildberries"
	})

	assert.Len(t, grouped, 1)
	assert.Equal(t, int64(100), grouped["wildberries"].Impressions)
}

func TestGroupByStatusZeroFillsAllStatuses(t *testing.T) {
	rows := []*model.CampaignStatistic{
		row(1, 200, 20, 2, 50, 150),
	}

	grouped := GroupByStatus(rows, func(r *model.CampaignStatistic) model.CampaignStatus {
		return model.StatusActive
	})

	assert.Len(t, grouped, len(model.CampaignStatuses()))
	for _, status := range model.CampaignStatuses() {
		_, ok := grouped[status]
		assert.True(t, ok, "status %s must be present", status)
	}

	assert.Equal(t, int64(200), grouped[model.StatusActive].Impressions)
	assert.Equal(t, int64(0), grouped[model.StatusPaused].Impressions)
	assert.True(t, grouped[model.StatusPaused].Spent.IsZero())
}
