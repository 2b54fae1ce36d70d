package model

// Option is one financial path under comparison.
type Option struct {
	Name             string  `json:"name" yaml:"name"`
	InitialSalary    float64 `json:"initial_salary" yaml:"initial_salary"`
	SalaryGrowthRate float64 `json:"salary_growth_rate" yaml:"salary_growth_rate"` // percent
	TuitionCost      float64 `json:"tuition_cost" yaml:"tuition_cost"`
	TuitionYears     int     `json:"tuition_years" yaml:"tuition_years"`
	YearsDelay       int     `json:"years_delay" yaml:"years_delay"`
}

// StartYear is the last year before salary starts.
func (o Option) StartYear() int {
	return o.YearsDelay + o.TuitionYears
}

type Parameters struct {
	Years      int     `json:"years" yaml:"years"`
	MarketRate float64 `json:"market_rate" yaml:"market_rate"` // percent
	// MarketRateSource names a rate preset that overrides MarketRate when resolved by an adapter.
	MarketRateSource string `json:"market_rate_source,omitempty" yaml:"market_rate_source,omitempty"`
}

// Rate returns the market rate as a decimal fraction.
func (p Parameters) Rate() float64 {
	return p.MarketRate / 100
}

const (
	SideA = "a"
	SideB = "b"
)

// QuickOption is the single-period form: pay cost now, receive expected return after Months.
type QuickOption struct {
	Name           string  `json:"name"`
	Cost           float64 `json:"cost"`
	ExpectedReturn float64 `json:"expected_return"`
	Months         float64 `json:"months"`
}
