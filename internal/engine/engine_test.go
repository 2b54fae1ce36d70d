package engine

import (
	"testing"

	json "github.com/goccy/go-json"

	"opportunity-engine/internal/model"
)

func baseRequest() *model.CalculationRequest {
	return &model.CalculationRequest{
		TenantID:   "test-tenant",
		Parameters: model.Parameters{Years: 3, MarketRate: 0},
		OptionA:    model.Option{Name: "Work now", InitialSalary: 75000},
		OptionB:    model.Option{Name: "Study", TuitionCost: 50000, TuitionYears: 1},
	}
}

func TestProcess(t *testing.T) {
	resp := Process(baseRequest())

	if resp.CalculationMetadata.CalculationOutcome != "SUCCESS" {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationMetadata.TenantID != "test-tenant" {
		t.Fatalf("expected tenant_id test-tenant, got %s", resp.CalculationMetadata.TenantID)
	}
	if resp.CalculationMetadata.CalculationID == "" {
		t.Fatal("expected a calculation id")
	}

	res := resp.CalculationResult
	if len(res.Messages) != 0 {
		t.Fatalf("expected 0 messages, got %d", len(res.Messages))
	}
	if res.OptionA == nil || res.OptionB == nil || res.Comparison == nil {
		t.Fatal("expected both projections and a comparison")
	}
	if res.OptionA.FutureValue != 225000 {
		t.Fatalf("expected future value 225000, got %f", res.OptionA.FutureValue)
	}
	if len(res.OptionA.Schedule) != 3 || len(res.OptionA.CumulativeSeries) != 3 || len(res.OptionA.Breakdown) != 3 {
		t.Fatal("expected 3-year products for option a")
	}
	if res.OptionA.FinalBalance != 225000 {
		t.Fatalf("expected final balance 225000, got %f", res.OptionA.FinalBalance)
	}
	if res.Comparison.OpportunityCost != 275000 {
		t.Fatalf("expected opportunity cost 275000, got %f", res.Comparison.OpportunityCost)
	}
	if string(res.ParameterPatch) != "[]" {
		t.Fatalf("expected empty parameter patch, got %s", res.ParameterPatch)
	}
}

func TestProcessAppliesUpdatesInOrder(t *testing.T) {
	req := baseRequest()
	req.Updates = []model.FieldUpdate{
		{Option: "a", Field: "initial_salary", Value: json.RawMessage(`"80000"`)},
		{Option: "b", Field: "name", Value: json.RawMessage(`"Masters"`)},
		{Option: "a", Field: "initial_salary", Value: json.RawMessage(`90000`)},
		{Option: "b", Field: "tuition_years", Value: json.RawMessage(`"not a number"`)},
	}

	resp := Process(req)
	res := resp.CalculationResult

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("expected SUCCESS, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if res.OptionA.Option.InitialSalary != 90000 {
		t.Fatalf("expected last update to win, got %f", res.OptionA.Option.InitialSalary)
	}
	if res.OptionB.Option.Name != "Masters" {
		t.Fatalf("expected renamed option, got %s", res.OptionB.Option.Name)
	}
	if res.OptionB.Option.TuitionYears != 0 {
		t.Fatalf("expected invalid input to behave as 0, got %d", res.OptionB.Option.TuitionYears)
	}
	if req.OptionA.InitialSalary != 75000 {
		t.Fatal("request must not be mutated")
	}

	var ops []map[string]any
	if err := json.Unmarshal(res.ParameterPatch, &ops); err != nil {
		t.Fatalf("invalid patch: %v", err)
	}
	if len(ops) != 3 {
		t.Fatalf("expected 3 patch operations, got %d: %s", len(ops), res.ParameterPatch)
	}
}

func TestProcessUnknownField(t *testing.T) {
	req := baseRequest()
	req.Updates = []model.FieldUpdate{
		{Option: "a", Field: "initial_salary", Value: json.RawMessage(`1`)},
		{Option: "a", Field: "bonus", Value: json.RawMessage(`1`)},
		{Option: "a", Field: "initial_salary", Value: json.RawMessage(`2`)},
	}

	resp := Process(req)
	res := resp.CalculationResult

	if resp.CalculationMetadata.CalculationOutcome != "FAILURE" {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(res.Messages) != 1 || res.Messages[0].Code != "UNKNOWN_FIELD" {
		t.Fatalf("expected a single UNKNOWN_FIELD message, got %+v", res.Messages)
	}
	if res.OptionA != nil || res.Comparison != nil {
		t.Fatal("expected no projections on failure")
	}
}

func TestProcessUnknownOption(t *testing.T) {
	req := baseRequest()
	req.Updates = []model.FieldUpdate{{Option: "c", Field: "name", Value: json.RawMessage(`"x"`)}}

	resp := Process(req)

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if resp.CalculationResult.Messages[0].Code != model.CodeUnknownOption {
		t.Fatalf("expected UNKNOWN_OPTION, got %s", resp.CalculationResult.Messages[0].Code)
	}
}

func TestProcessWarnings(t *testing.T) {
	req := baseRequest()
	req.Parameters = model.Parameters{Years: 0, MarketRate: -1}
	req.OptionB.TuitionCost = -10

	resp := Process(req)
	res := resp.CalculationResult

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeSuccess {
		t.Fatalf("warnings must not fail the calculation, got %s", resp.CalculationMetadata.CalculationOutcome)
	}

	codes := map[string]int{}
	for i, m := range res.Messages {
		if m.ID != i {
			t.Fatalf("expected message id %d, got %d", i, m.ID)
		}
		if m.Level != model.LevelWarning {
			t.Fatalf("expected only warnings, got %s", m.Level)
		}
		codes[m.Code]++
	}
	if codes[model.CodeEmptyHorizon] != 1 || codes[model.CodeNegativeValue] != 2 {
		t.Fatalf("unexpected message codes: %v", codes)
	}
	if len(res.OptionA.Schedule) != 0 || res.Comparison.PercentageDiff != 0 {
		t.Fatal("expected empty projections for a zero horizon")
	}
}

func TestProcessNonFiniteResult(t *testing.T) {
	req := &model.CalculationRequest{
		Parameters: model.Parameters{Years: 200, MarketRate: 100000},
		OptionA:    model.Option{InitialSalary: 50000},
		OptionB:    model.Option{TuitionCost: 1, TuitionYears: 1},
	}

	resp := Process(req)
	res := resp.CalculationResult

	if resp.CalculationMetadata.CalculationOutcome != model.OutcomeFailure {
		t.Fatalf("expected FAILURE, got %s", resp.CalculationMetadata.CalculationOutcome)
	}
	if len(res.Messages) != 1 || res.Messages[0].Code != model.CodeNonFinite || res.Messages[0].Level != model.LevelCritical {
		t.Fatalf("expected a single critical NON_FINITE_RESULT message, got %+v", res.Messages)
	}
	if res.OptionA != nil || res.OptionB != nil || res.Comparison != nil {
		t.Fatal("expected no projections when values overflow")
	}
	if _, err := json.Marshal(resp); err != nil {
		t.Fatalf("expected an encodable response, got %v", err)
	}
}
