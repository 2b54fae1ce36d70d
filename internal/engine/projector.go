package engine

import (
	"math"

	"opportunity-engine/internal/model"
)

// FutureValue compounds every cash flow individually to the end of the
// horizon and sums them. Tuition compounds as a cost even while the path is
// in debt, so the result differs from the last CumulativeSeries value
// whenever the running balance goes negative.
func FutureValue(o model.Option, p model.Parameters) float64 {
	growth := 1 + p.Rate()
	fv := 0.0

	for year := 1; year <= min(o.TuitionYears, p.Years); year++ {
		fv -= o.TuitionCost * math.Pow(growth, float64(p.Years-year+1))
	}

	start := o.StartYear()
	for year := max(start+1, 1); year <= p.Years; year++ {
		salary := salaryFor(o, max(0, year-start-1))
		fv += salary * math.Pow(growth, float64(p.Years-year+1))
	}

	return fv
}

// CumulativeSeries simulates the running balance year by year. The year's
// cash flow is added first; the balance then earns interest only if it is
// positive and it is not the first year. Debt never compounds.
func CumulativeSeries(o model.Option, p model.Parameters) []model.SeriesPoint {
	schedule := ScheduleOf(o, p.Years)
	series := make([]model.SeriesPoint, 0, len(schedule))
	growth := 1 + p.Rate()

	balance := 0.0
	for _, cf := range schedule {
		balance += cf.Value
		if cf.Year > 1 && balance > 0 {
			balance *= growth
		}
		series = append(series, model.SeriesPoint{Year: cf.Year, Value: balance})
	}
	return series
}

// FinalBalance is the last value of the running-balance series, 0 for an empty horizon.
func FinalBalance(series []model.SeriesPoint) float64 {
	if len(series) == 0 {
		return 0
	}
	return series[len(series)-1].Value
}
