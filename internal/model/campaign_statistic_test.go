package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCampaignStatisticRecalculate(t *testing.T) {
	stat := &CampaignStatistic{
		CampaignID:  1,
		Date:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Impressions: 1000,
		Clicks:      37,
		Spent:       decimal.NewFromInt(150),
		Conversions: 5,
		Revenue:     decimal.NewFromInt(450),
		AddToCart:   12,
	}
	stat.Recalculate()

	assert.True(t, stat.CTR.Equal(decimal.NewFromFloat(3.7)), "ctr = %s", stat.CTR)
	assert.True(t, stat.CPC.Equal(decimal.NewFromFloat(4.05)), "cpc = %s", stat.CPC)
	assert.True(t, stat.ConversionRate.Equal(decimal.NewFromFloat(13.51)), "conversion rate = %s", stat.ConversionRate)
	assert.True(t, stat.ROI.Equal(decimal.NewFromInt(200)), "roi = %s", stat.ROI)
	assert.True(t, stat.CartRate.Equal(decimal.NewFromFloat(32.43)), "cart rate = %s", stat.CartRate)
}

func TestCampaignStatisticRecalculateZeroDenominators(t *testing.T) {
	stat := &CampaignStatistic{
		CampaignID: 1,
		Date:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Revenue:    decimal.NewFromInt(100),
	}
	stat.Recalculate()

	assert.True(t, stat.CTR.IsZero())
	assert.True(t, stat.CPC.IsZero())
	assert.True(t, stat.ConversionRate.IsZero())
	assert.True(t, stat.ROI.IsZero(), "roi must be 0 when nothing was spent, got %s", stat.ROI)
	assert.True(t, stat.CartRate.IsZero())
}

func TestCampaignStatisticRecalculateOverwritesStale(t *testing.T) {
	stat := &CampaignStatistic{
		Impressions: 100,
		Clicks:      10,
		CTR:         decimal.NewFromInt(99),
	}
	stat.Recalculate()

	assert.True(t, stat.CTR.Equal(decimal.NewFromInt(10)), "stale ctr must be replaced, got %s", stat.CTR)
}

func TestCampaignROIFromLifetimeCounters(t *testing.T) {
	campaign := &Campaign{
		Spent:       decimal.NewFromInt(200),
		Revenue:     decimal.NewFromInt(500),
		Impressions: 400,
		Clicks:      100,
		Conversions: 25,
	}

	assert.True(t, campaign.ROI().Equal(decimal.NewFromInt(150)))
	assert.True(t, campaign.CTR().Equal(decimal.NewFromInt(25)))
	assert.True(t, campaign.ConversionRate().Equal(decimal.NewFromInt(25)))
}
