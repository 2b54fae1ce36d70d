package engine

import "opportunity-engine/internal/model"

// BreakdownOf builds the year-by-year ledger. It recomputes cash flows rather
// than reading ScheduleOf, but applies exactly the interest rule of
// CumulativeSeries, so NetWorth matches that series value for value.
func BreakdownOf(o model.Option, p model.Parameters) []model.BreakdownYear {
	if p.Years <= 0 {
		return []model.BreakdownYear{}
	}
	rows := make([]model.BreakdownYear, 0, p.Years)
	growth := 1 + p.Rate()

	netWorth := 0.0
	withoutInterest := 0.0
	for y := 1; y <= p.Years; y++ {
		flow, phase := flowFor(o, y)
		withoutInterest += flow

		balance := netWorth + flow
		interest := 0.0
		if y > 1 && balance > 0 {
			compounded := balance * growth
			interest = compounded - balance
			balance = compounded
		}
		netWorth = balance

		rows = append(rows, model.BreakdownYear{
			Year:                 y,
			NetWorth:             netWorth,
			ValueWithoutInterest: withoutInterest,
			InterestGainLoss:     interest,
			CashFlowGainLoss:     flow,
			TotalGainLoss:        flow + interest,
			Description:          phase,
		})
	}
	return rows
}
