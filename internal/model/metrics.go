package model

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ratioPercent computes num/den*100 rounded to 2 decimal places.
// A zero denominator always yields 0, never an error.
func ratioPercent(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred).Round(2)
}

// roiPercent computes (revenue-spent)/spent*100 rounded to 2 decimal places,
// 0 when nothing was spent.
func roiPercent(revenue, spent decimal.Decimal) decimal.Decimal {
	if spent.IsZero() {
		return decimal.Zero
	}
	return revenue.Sub(spent).Div(spent).Mul(hundred).Round(2)
}

// costPer computes spent/count rounded to 2 decimal places, 0 for zero count.
func costPer(spent decimal.Decimal, count int64) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return spent.Div(decimal.NewFromInt(count)).Round(2)
}
