package engine

import (
	"math"

	"opportunity-engine/internal/model"
)

// flowFor derives the signed cash flow of year y (1-based) and the phase that
// produced it. The schedule, the breakdown and the closed-form projector all
// read cash flows through this function.
//
// Years 1..TuitionYears pay tuition. Salary starts the year after
// YearsDelay+TuitionYears and grows from its second year on. Anything else is
// an idle year: Studying once the delay has passed, Waiting before that.
func flowFor(o model.Option, y int) (float64, string) {
	start := o.StartYear()
	switch {
	case y <= o.TuitionYears:
		return 0 - o.TuitionCost, model.PhaseTuition // 0 - x avoids a negative zero
	case y > start:
		return salaryFor(o, max(0, y-start-1)), model.PhaseSalary
	case y > o.YearsDelay:
		return 0, model.PhaseStudying
	default:
		return 0, model.PhaseWaiting
	}
}

func salaryFor(o model.Option, yearsWorked int) float64 {
	if yearsWorked == 0 {
		return o.InitialSalary
	}
	return o.InitialSalary * math.Pow(1+o.SalaryGrowthRate/100, float64(yearsWorked))
}
