package stats

import (
	"sort"

	"MarketAI/internal/model"

	"github.com/shopspring/decimal"
)

// ProductTotals is a per-product rollup over product statistic rows.
//
// ConversionRate and ACoS are straight means of the per-row percentages
// (they are already normalized), unlike the ratio-of-sums convention used
// for campaign totals.
type ProductTotals struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Views          int64           `json:"total_views"`
	Clicks         int64           `json:"total_clicks"`
	Orders         int64           `json:"total_orders"`
	Revenue        decimal.Decimal `json:"total_revenue"`
	AdSpent        decimal.Decimal `json:"total_ad_spent"`
	ConversionRate decimal.Decimal `json:"conversion_rate"`
	ACoS           decimal.Decimal `json:"acos"`
}

// TopProducts groups rows by product id, sums the counters, averages the
// per-row conversion rate and ACoS, and returns the n products with the
// highest summed revenue. The sort is stable: ties keep first-seen order.
func TopProducts(rows []*model.ProductStatistic, n int) []ProductTotals {
	if n <= 0 {
		return []ProductTotals{}
	}

	index := make(map[string]int)
	groups := make([]ProductTotals, 0)
	counts := make([]int64, 0)

	for _, r := range rows {
		i, ok := index[r.ProductID]
		if !ok {
			i = len(groups)
			index[r.ProductID] = i
			groups = append(groups, ProductTotals{
				ProductID:      r.ProductID,
				ProductName:    r.ProductName,
				Revenue:        decimal.Zero,
				AdSpent:        decimal.Zero,
				ConversionRate: decimal.Zero,
				ACoS:           decimal.Zero,
			})
			counts = append(counts, 0)
		}

		g := &groups[i]
		g.Views += r.Views
		g.Clicks += r.Clicks
		g.Orders += r.Orders
		g.Revenue = g.Revenue.Add(r.Revenue)
		g.AdSpent = g.AdSpent.Add(r.AdSpent)
		g.ConversionRate = g.ConversionRate.Add(r.ConversionRate)
		g.ACoS = g.ACoS.Add(r.ACoS)
		if g.ProductName == "" && r.ProductName != "" {
			g.ProductName = r.ProductName
		}
		counts[i]++
	}

	for i := range groups {
		if counts[i] > 0 {
			cnt := decimal.NewFromInt(counts[i])
			groups[i].ConversionRate = groups[i].ConversionRate.Div(cnt).Round(2)
			groups[i].ACoS = groups[i].ACoS.Div(cnt).Round(2)
		}
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Revenue.GreaterThan(groups[b].Revenue)
	})

	if n > len(groups) {
		n = len(groups)
	}
	return groups[:n]
}
