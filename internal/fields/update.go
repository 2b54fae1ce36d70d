package fields

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"opportunity-engine/internal/model"
)

// Update assigns one field of an option. Number is used by numeric fields,
// Text by Name.
type Update struct {
	Field  Field
	Number float64
	Text   string
}

// Apply returns a copy of o with the update applied. Integer fields truncate toward zero.
func (u Update) Apply(o model.Option) model.Option {
	switch u.Field {
	case Name:
		o.Name = u.Text
	case InitialSalary:
		o.InitialSalary = u.Number
	case SalaryGrowthRate:
		o.SalaryGrowthRate = u.Number
	case TuitionCost:
		o.TuitionCost = u.Number
	case TuitionYears:
		o.TuitionYears = int(u.Number)
	case YearsDelay:
		o.YearsDelay = int(u.Number)
	}
	return o
}

// Validate reports warnings for the update. Negative values are accepted but flagged.
func (u Update) Validate() []model.CalculationMessage {
	if u.Field.IsText() || u.Number >= 0 {
		return nil
	}
	return []model.CalculationMessage{{
		Level:   model.LevelWarning,
		Code:    model.CodeNegativeValue,
		Message: fmt.Sprintf("%s is negative (%s); computed as-is", u.Field.Key(), formatFloat(u.Number)),
	}}
}

// numericPrefix matches a leading decimal number: "12abc" reads as 12, "3.5e2x" as 350.
var numericPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseNumber converts user input to a number using its longest numeric
// prefix. Empty, non-numeric and non-finite input all yield 0.
func ParseNumber(raw string) float64 {
	m := numericPrefix.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func FromRaw(f Field, raw string) Update {
	if f.IsText() {
		return Update{Field: f, Text: raw}
	}
	return Update{Field: f, Number: ParseNumber(raw)}
}

// FromJSON accepts a JSON string or number. Any other JSON value behaves like 0
// (or an empty name).
func FromJSON(f Field, raw json.RawMessage) Update {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return FromRaw(f, s)
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if f.IsText() {
			return Update{Field: f, Text: formatFloat(n)}
		}
		return FromRaw(f, formatFloat(n))
	}
	return FromRaw(f, "")
}
