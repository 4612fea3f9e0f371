package stats

import (
	"testing"

	"MarketAI/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func productRow(productID string, clicks, orders int64, revenue, adSpent int64) *model.ProductStatistic {
	s := &model.ProductStatistic{
		CampaignID: 1,
		ProductID:  productID,
		Clicks:     clicks,
		Orders:     orders,
		Revenue:    decimal.NewFromInt(revenue),
		AdSpent:    decimal.NewFromInt(adSpent),
	}
	s.Recalculate()
	return s
}

func TestTopProductsRankedByRevenue(t *testing.T) {
	rows := []*model.ProductStatistic{
		productRow("SKU-low", 10, 1, 100, 10),
		productRow("SKU-high", 10, 1, 900, 10),
		productRow("SKU-mid", 10, 1, 500, 10),
	}

	top := TopProducts(rows, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, "SKU-high", top[0].ProductID)
	assert.Equal(t, "SKU-mid", top[1].ProductID)
}

func TestTopProductsSumsAcrossDays(t *testing.T) {
	rows := []*model.ProductStatistic{
		productRow("SKU-1", 10, 2, 100, 20),
		productRow("SKU-1", 30, 3, 200, 40),
	}

	top := TopProducts(rows, 10)

	assert.Len(t, top, 1)
	assert.Equal(t, int64(40), top[0].Clicks)
	assert.Equal(t, int64(5), top[0].Orders)
	assert.True(t, top[0].Revenue.Equal(decimal.NewFromInt(300)))
	assert.True(t, top[0].AdSpent.Equal(decimal.NewFromInt(60)))
}

func TestTopProductsAveragesPerRowRatios(t *testing.T) {
	// Row conversion rates are 20% and 10%; the product reports their mean,
	// not the ratio of summed counters.
	rows := []*model.ProductStatistic{
		productRow("SKU-1", 10, 2, 100, 25),
		productRow("SKU-1", 30, 3, 100, 50),
	}

	top := TopProducts(rows, 1)

	assert.True(t, top[0].ConversionRate.Equal(decimal.NewFromInt(15)), "conversion rate = %s", top[0].ConversionRate)
	// Row ACoS are 25% and 50%.
	assert.True(t, top[0].ACoS.Equal(decimal.NewFromFloat(37.5)), "acos = %s", top[0].ACoS)
}

func TestTopProductsStableOnRevenueTies(t *testing.T) {
	rows := []*model.ProductStatistic{
		productRow("SKU-first", 1, 0, 100, 0),
		productRow("SKU-second", 1, 0, 100, 0),
		productRow("SKU-third", 1, 0, 100, 0),
	}

	top := TopProducts(rows, 3)

	assert.Equal(t, "SKU-first", top[0].ProductID)
	assert.Equal(t, "SKU-second", top[1].ProductID)
	assert.Equal(t, "SKU-third", top[2].ProductID)
}

func TestTopProductsLimitLargerThanGroups(t *testing.T) {
	rows := []*model.ProductStatistic{
		productRow("SKU-1", 1, 0, 100, 0),
	}

	assert.Len(t, TopProducts(rows, 100), 1)
	assert.Empty(t, TopProducts(rows, 0))
	assert.Empty(t, TopProducts(nil, 10))
}
