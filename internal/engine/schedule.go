package engine

import "opportunity-engine/internal/model"

// ScheduleOf returns one signed cash flow per year of the horizon.
func ScheduleOf(o model.Option, years int) []model.CashFlowYear {
	if years <= 0 {
		return []model.CashFlowYear{}
	}
	schedule := make([]model.CashFlowYear, years)
	for y := 1; y <= years; y++ {
		value, _ := flowFor(o, y)
		schedule[y-1] = model.CashFlowYear{Year: y, Value: value}
	}
	return schedule
}
