package engine

import (
	"math"

	"opportunity-engine/internal/model"
)

// Compare projects both options with FutureValue. A positive opportunity cost
// means a ends ahead of b.
func Compare(a, b model.Option, p model.Parameters) model.Comparison {
	fvA := FutureValue(a, p)
	fvB := FutureValue(b, p)
	return comparisonOf(fvA, fvB)
}

func comparisonOf(fvA, fvB float64) model.Comparison {
	oc := fvA - fvB
	var pct float64
	if fvB != 0 {
		pct = oc / math.Abs(fvB) * 100
	}
	return model.Comparison{
		FutureValueA:    fvA,
		FutureValueB:    fvB,
		OpportunityCost: oc,
		PercentageDiff:  pct,
	}
}
