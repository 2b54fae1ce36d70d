package model

import json "github.com/goccy/go-json"

type CalculationResponse struct {
	CalculationMetadata CalculationMetadata `json:"calculation_metadata"`
	CalculationResult   CalculationResult   `json:"calculation_result"`
}

type CalculationMetadata struct {
	CalculationID          string `json:"calculation_id"`
	TenantID               string `json:"tenant_id"`
	CalculationStartedAt   string `json:"calculation_started_at"`
	CalculationCompletedAt string `json:"calculation_completed_at"`
	CalculationDurationMs  int64  `json:"calculation_duration_ms"`
	CalculationOutcome     string `json:"calculation_outcome"`
}

type CalculationResult struct {
	Messages       []CalculationMessage `json:"messages"`
	Parameters     Parameters           `json:"parameters"`
	ParameterPatch json.RawMessage      `json:"parameter_patch"`
	OptionA        *OptionProjection    `json:"option_a,omitempty"`
	OptionB        *OptionProjection    `json:"option_b,omitempty"`
	Comparison     *Comparison          `json:"comparison,omitempty"`
}

type ShareResponse struct {
	Query string `json:"query"`
}

type RatePreset struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	AnnualReturn float64 `json:"annual_return"` // percent
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
