// Package fields implements typed updates to the parameters of an option.
//
// Each updatable field of model.Option has a Field constant and a stable wire
// key. Raw user input is converted with ParseNumber, which treats anything that
// is not a finite number as 0.
package fields

import (
	"strconv"

	"opportunity-engine/internal/model"
)

type Field int

const (
	Name Field = iota + 1
	InitialSalary
	SalaryGrowthRate
	TuitionCost
	TuitionYears
	YearsDelay
)

var keys = map[Field]string{
	Name:             "name",
	InitialSalary:    "initial_salary",
	SalaryGrowthRate: "salary_growth_rate",
	TuitionCost:      "tuition_cost",
	TuitionYears:     "tuition_years",
	YearsDelay:       "years_delay",
}

var registry = map[string]Field{
	"name":               Name,
	"initial_salary":     InitialSalary,
	"salary_growth_rate": SalaryGrowthRate,
	"tuition_cost":       TuitionCost,
	"tuition_years":      TuitionYears,
	"years_delay":        YearsDelay,
}

// All lists every field in declaration order.
func All() []Field {
	return []Field{Name, InitialSalary, SalaryGrowthRate, TuitionCost, TuitionYears, YearsDelay}
}

func Lookup(key string) (Field, bool) {
	f, ok := registry[key]
	return f, ok
}

func (f Field) Key() string {
	return keys[f]
}

func (f Field) String() string {
	if k, ok := keys[f]; ok {
		return k
	}
	return "field(" + strconv.Itoa(int(f)) + ")"
}

func (f Field) IsText() bool {
	return f == Name
}

func (f Field) IsInteger() bool {
	return f == TuitionYears || f == YearsDelay
}

// Format renders the current value of f on o in the form ParseNumber accepts.
func (f Field) Format(o model.Option) string {
	switch f {
	case Name:
		return o.Name
	case InitialSalary:
		return formatFloat(o.InitialSalary)
	case SalaryGrowthRate:
		return formatFloat(o.SalaryGrowthRate)
	case TuitionCost:
		return formatFloat(o.TuitionCost)
	case TuitionYears:
		return strconv.Itoa(o.TuitionYears)
	case YearsDelay:
		return strconv.Itoa(o.YearsDelay)
	}
	return ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
