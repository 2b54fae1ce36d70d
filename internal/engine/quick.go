package engine

import "opportunity-engine/internal/model"

// QuickCompare is the single-period comparison: no horizon, no compounding.
func QuickCompare(a, b model.QuickOption) model.QuickComparison {
	ra := quickResult(a)
	rb := quickResult(b)
	return model.QuickComparison{
		OptionA:         ra,
		OptionB:         rb,
		OpportunityCost: ra.NetValue - rb.NetValue,
	}
}

func quickResult(o model.QuickOption) model.QuickResult {
	return model.QuickResult{
		Name:          o.Name,
		NetValue:      o.ExpectedReturn - o.Cost,
		AnnualizedROI: AnnualizedROI(o.Cost, o.ExpectedReturn, o.Months),
	}
}

// AnnualizedROI scales the simple return over months to a yearly percentage.
// It is 0 when cost or months is 0.
func AnnualizedROI(cost, expectedReturn, months float64) float64 {
	if cost == 0 || months == 0 {
		return 0
	}
	return (expectedReturn - cost) / cost * (12 / months) * 100
}
