package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestProductStatisticRecalculate(t *testing.T) {
	stat := &ProductStatistic{
		CampaignID: 1,
		ProductID:  "SKU-1",
		Views:      500,
		Clicks:     80,
		Orders:     6,
		Revenue:    decimal.NewFromInt(1200),
		AdSpent:    decimal.NewFromInt(300),
	}
	stat.Recalculate()

	assert.True(t, stat.ConversionRate.Equal(decimal.NewFromFloat(7.5)), "conversion rate = %s", stat.ConversionRate)
	assert.True(t, stat.ACoS.Equal(decimal.NewFromInt(25)), "acos = %s", stat.ACoS)
}

func TestProductStatisticRecalculateZeroDenominators(t *testing.T) {
	stat := &ProductStatistic{
		CampaignID: 1,
		ProductID:  "SKU-1",
		AdSpent:    decimal.NewFromInt(50),
	}
	stat.Recalculate()

	assert.True(t, stat.ConversionRate.IsZero(), "no clicks means 0 conversion rate")
	assert.True(t, stat.ACoS.IsZero(), "no revenue means 0 acos")
}
