// Package stats contains the pure aggregation functions used by the report
// services. Nothing in this package touches storage: callers fetch statistic
// rows through the repositories and hand them in as slices.
package stats

import (
	"MarketAI/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals is a summed-up view over a set of campaign statistic rows.
//
// CTR and ROI are computed from the summed raw counters (ratio of sums), not
// averaged per-row, so rows with tiny denominators cannot distort the result.
type Totals struct {
	Impressions int64           `json:"total_impressions"`
	Clicks      int64           `json:"total_clicks"`
	Spent       decimal.Decimal `json:"total_spent"`
	Revenue     decimal.Decimal `json:"total_revenue"`
	Conversions int64           `json:"total_conversions"`
	CTR         decimal.Decimal `json:"ctr"`
	ROI         decimal.Decimal `json:"roi"`
}

// ZeroTotals returns a Totals with decimal fields initialized, so empty
// groups marshal as 0 instead of null.
func ZeroTotals() Totals {
	return Totals{
		Spent:   decimal.Zero,
		Revenue: decimal.Zero,
		CTR:     decimal.Zero,
		ROI:     decimal.Zero,
	}
}

// Aggregate sums the raw counters across rows and derives CTR/ROI from the
// sums. An empty row set yields all-zero totals, never an error.
func Aggregate(rows []*model.CampaignStatistic) Totals {
	t := ZeroTotals()
	for _, r := range rows {
		t.Impressions += r.Impressions
		t.Clicks += r.Clicks
		t.Conversions += r.Conversions
		t.Spent = t.Spent.Add(r.Spent)
		t.Revenue = t.Revenue.Add(r.Revenue)
	}
	t.CTR = ratioPercent(decimal.NewFromInt(t.Clicks), decimal.NewFromInt(t.Impressions))
	t.ROI = roiPercent(t.Revenue, t.Spent)
	return t
}

// GroupBy buckets rows by an arbitrary key and aggregates each bucket.
// Rows mapped to an empty key are skipped.
func GroupBy(rows []*model.CampaignStatistic, keyOf func(*model.CampaignStatistic) string) map[string]Totals {
	buckets := make(map[string][]*model.CampaignStatistic)
	for _, r := range rows {
		key := keyOf(r)
		if key == "" {
			continue
		}
		buckets[key] = append(buckets[key], r)
	}

	out := make(map[string]Totals, len(buckets))
	for key, group := range buckets {
		out[key] = Aggregate(group)
	}
	return out
}

// GroupByStatus aggregates rows per campaign status. Every known status gets
// an entry, zero-filled when no row matches, so downstream reports can render
// a stable status legend.
func GroupByStatus(rows []*model.CampaignStatistic, statusOf func(*model.CampaignStatistic) model.CampaignStatus) map[model.CampaignStatus]Totals {
	out := make(map[model.CampaignStatus]Totals, len(model.CampaignStatuses()))
	for _, status := range model.CampaignStatuses() {
		out[status] = ZeroTotals()
	}

	buckets := make(map[model.CampaignStatus][]*model.CampaignStatistic)
	for _, r := range rows {
		status := statusOf(r)
		buckets[status] = append(buckets[status], r)
	}
	for status, group := range buckets {
		out[status] = Aggregate(group)
	}
	return out
}

func ratioPercent(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred).Round(2)
}

func roiPercent(revenue, spent decimal.Decimal) decimal.Decimal {
	if spent.IsZero() {
		return decimal.Zero
	}
	return revenue.Sub(spent).Div(spent).Mul(hundred).Round(2)
}
