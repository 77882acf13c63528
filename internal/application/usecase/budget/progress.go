// Package budget contains budget-related use cases.
package budget

import "github.com/shopspring/decimal"

// Progress describes how far a budget's month has been consumed.
type Progress struct {
	SpentCents     int64
	RemainingCents int64 // negative when overspent
	Percentage     float64
}

// ComputeProgress derives budget progress from the budget ceiling and the
// month's summed expense cents. The percentage is capped at 100 for display;
// callers needing the true overage ratio must divide SpentCents by the
// budget amount themselves. A zero or absent ceiling reports 0%.
func ComputeProgress(amountCents, spentCents int64) Progress {
	var percentage float64
	if amountCents > 0 {
		pct := decimal.NewFromInt(spentCents).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(amountCents))
		percentage, _ = pct.Round(1).Float64()
		if percentage > 100 {
			percentage = 100
		}
	}

	return Progress{
		SpentCents:     spentCents,
		RemainingCents: amountCents - spentCents,
		Percentage:     percentage,
	}
}
