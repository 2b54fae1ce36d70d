package model

import json "github.com/goccy/go-json"

type CalculationRequest struct {
	TenantID   string        `json:"tenant_id,omitempty"`
	Parameters Parameters    `json:"parameters"`
	OptionA    Option        `json:"option_a"`
	OptionB    Option        `json:"option_b"`
	Updates    []FieldUpdate `json:"updates,omitempty"`
}

// FieldUpdate sets one field of one option. Value may be a JSON number or a string.
type FieldUpdate struct {
	Option string          `json:"option"`
	Field  string          `json:"field"`
	Value  json.RawMessage `json:"value"`
}

type QuickRequest struct {
	OptionA QuickOption `json:"option_a"`
	OptionB QuickOption `json:"option_b"`
}
