package engine

import (
	"fmt"
	"math"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"opportunity-engine/internal/fields"
	"opportunity-engine/internal/jsonpatch"
	"opportunity-engine/internal/model"
)

// Process applies the request's field updates in order and, unless an update
// is rejected, projects both options over the horizon.
func Process(req *model.CalculationRequest) *model.CalculationResponse {
	start := time.Now()

	optA, optB := req.OptionA, req.OptionB
	params := req.Parameters

	var allMessages []model.CalculationMessage
	outcome := model.OutcomeSuccess
	hasCritical := false

	record := func(msgs []model.CalculationMessage) {
		for _, m := range msgs {
			m.ID = len(allMessages)
			allMessages = append(allMessages, m)
			if m.Level == model.LevelCritical {
				hasCritical = true
			}
		}
	}

	for i, upd := range req.Updates {
		field, ok := fields.Lookup(upd.Field)
		if !ok {
			record([]model.CalculationMessage{{
				Level:   model.LevelCritical,
				Code:    model.CodeUnknownField,
				Message: fmt.Sprintf("Unknown field %q in update %d", upd.Field, i),
			}})
			break
		}

		u := fields.FromJSON(field, upd.Value)
		switch upd.Option {
		case model.SideA:
			optA = u.Apply(optA)
		case model.SideB:
			optB = u.Apply(optB)
		default:
			record([]model.CalculationMessage{{
				Level:   model.LevelCritical,
				Code:    model.CodeUnknownOption,
				Message: fmt.Sprintf("Unknown option %q in update %d", upd.Option, i),
			}})
		}
		if hasCritical {
			break
		}
	}

	var result model.CalculationResult
	if hasCritical {
		outcome = model.OutcomeFailure
		result.Parameters = params
	} else {
		record(validateParameters(params))
		record(validateOption(model.SideA, optA))
		record(validateOption(model.SideB, optB))

		a := Project(optA, params)
		b := Project(optB, params)
		cmp := comparisonOf(a.FutureValue, b.FutureValue)

		result.Parameters = params
		if finiteProjection(a) && finiteProjection(b) && finiteComparison(cmp) {
			result.OptionA = &a
			result.OptionB = &b
			result.Comparison = &cmp
		} else {
			record([]model.CalculationMessage{{
				Level:   model.LevelCritical,
				Code:    model.CodeNonFinite,
				Message: fmt.Sprintf("Projection over %d years at %s%% exceeds the float64 range", params.Years, strconv.FormatFloat(params.MarketRate, 'f', -1, 64)),
			}})
			outcome = model.OutcomeFailure
		}
	}

	before := model.CalculationRequest{Parameters: req.Parameters, OptionA: req.OptionA, OptionB: req.OptionB}
	after := model.CalculationRequest{Parameters: params, OptionA: optA, OptionB: optB}
	patch, err := jsonpatch.Between(before, after)
	if err != nil {
		patch = json.RawMessage("[]")
	}
	result.ParameterPatch = patch

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}
	result.Messages = allMessages

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.CalculationResponse{
		CalculationMetadata: model.CalculationMetadata{
			CalculationID:          uuid.New().String(),
			TenantID:               req.TenantID,
			CalculationStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			CalculationCompletedAt: now.Format(time.RFC3339),
			CalculationDurationMs:  elapsed.Milliseconds(),
			CalculationOutcome:     outcome,
		},
		CalculationResult: result,
	}
}

// Project computes every data product for one option.
func Project(o model.Option, p model.Parameters) model.OptionProjection {
	series := CumulativeSeries(o, p)
	return model.OptionProjection{
		Option:           o,
		FutureValue:      FutureValue(o, p),
		FinalBalance:     FinalBalance(series),
		Schedule:         ScheduleOf(o, p.Years),
		CumulativeSeries: series,
		Breakdown:        BreakdownOf(o, p),
	}
}

func validateParameters(p model.Parameters) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	if p.Years <= 0 {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeEmptyHorizon,
			Message: fmt.Sprintf("Horizon of %d years produces empty projections", p.Years),
		})
	}
	if p.MarketRate < 0 {
		msgs = append(msgs, model.CalculationMessage{
			Level:   model.LevelWarning,
			Code:    model.CodeNegativeValue,
			Message: "market_rate is negative; computed as-is",
		})
	}
	return msgs
}

func validateOption(side string, o model.Option) []model.CalculationMessage {
	var msgs []model.CalculationMessage
	for _, f := range fields.All() {
		if f.IsText() {
			continue
		}
		msgs = append(msgs, fields.FromRaw(f, f.Format(o)).Validate()...)
	}
	for i := range msgs {
		msgs[i].Message = "option " + side + ": " + msgs[i].Message
	}
	return msgs
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// finiteProjection reports whether every value of p is representable in JSON.
func finiteProjection(p model.OptionProjection) bool {
	if !finite(p.FutureValue) || !finite(p.FinalBalance) {
		return false
	}
	for _, cf := range p.Schedule {
		if !finite(cf.Value) {
			return false
		}
	}
	for _, pt := range p.CumulativeSeries {
		if !finite(pt.Value) {
			return false
		}
	}
	for _, row := range p.Breakdown {
		if !finite(row.NetWorth) || !finite(row.ValueWithoutInterest) || !finite(row.InterestGainLoss) || !finite(row.TotalGainLoss) {
			return false
		}
	}
	return true
}

func finiteComparison(c model.Comparison) bool {
	return finite(c.FutureValueA) && finite(c.FutureValueB) && finite(c.OpportunityCost) && finite(c.PercentageDiff)
}
