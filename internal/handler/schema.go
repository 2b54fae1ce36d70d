package handler

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const optionSchema = `{
	"type": "object",
	"properties": {
		"name":               {"type": "string"},
		"initial_salary":     {"type": "number"},
		"salary_growth_rate": {"type": "number"},
		"tuition_cost":       {"type": "number"},
		"tuition_years":      {"type": "integer"},
		"years_delay":        {"type": "integer"}
	}
}`

const quickOptionSchema = `{
	"type": "object",
	"properties": {
		"name":            {"type": "string"},
		"cost":            {"type": "number"},
		"expected_return": {"type": "number"},
		"months":          {"type": "number"}
	}
}`

var (
	calculationSchema = mustSchema(`{
	"type": "object",
	"properties": {
		"tenant_id": {"type": "string"},
		"parameters": {
			"type": "object",
			"properties": {
				"years":              {"type": "integer"},
				"market_rate":        {"type": "number"},
				"market_rate_source": {"type": "string"}
			}
		},
		"option_a": ` + optionSchema + `,
		"option_b": ` + optionSchema + `,
		"updates": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["option", "field"],
				"properties": {
					"option": {"type": "string"},
					"field":  {"type": "string"}
				}
			}
		}
	}
}`)

	quickSchema = mustSchema(`{
	"type": "object",
	"required": ["option_a", "option_b"],
	"properties": {
		"option_a": ` + quickOptionSchema + `,
		"option_b": ` + quickOptionSchema + `
	}
}`)
)

func mustSchema(src string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		panic(fmt.Sprintf("compile request schema: %v", err))
	}
	return s
}

// validateBody checks an already well-formed JSON body against schema and
// returns every violation joined into one message.
func validateBody(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}
	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return fmt.Errorf("request does not match schema: %s", strings.Join(errs, "; "))
}
