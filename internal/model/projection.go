package model

type CashFlowYear struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

type SeriesPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

type BreakdownYear struct {
	Year                 int     `json:"year"`
	NetWorth             float64 `json:"net_worth"`
	ValueWithoutInterest float64 `json:"value_without_interest"`
	InterestGainLoss     float64 `json:"interest_gain_loss"`
	CashFlowGainLoss     float64 `json:"cash_flow_gain_loss"`
	TotalGainLoss        float64 `json:"total_gain_loss"`
	Description          string  `json:"description"`
}

const (
	PhaseTuition  = "Tuition"
	PhaseSalary   = "Salary"
	PhaseStudying = "Studying"
	PhaseWaiting  = "Waiting"
)

type Comparison struct {
	FutureValueA    float64 `json:"future_value_a"`
	FutureValueB    float64 `json:"future_value_b"`
	OpportunityCost float64 `json:"opportunity_cost"`
	PercentageDiff  float64 `json:"percentage_diff"`
}

// OptionProjection bundles every per-option data product.
type OptionProjection struct {
	Option           Option          `json:"option"`
	FutureValue      float64         `json:"future_value"`
	FinalBalance     float64         `json:"final_balance"`
	Schedule         []CashFlowYear  `json:"schedule"`
	CumulativeSeries []SeriesPoint   `json:"cumulative_series"`
	Breakdown        []BreakdownYear `json:"breakdown"`
}

type QuickResult struct {
	Name          string  `json:"name"`
	NetValue      float64 `json:"net_value"`
	AnnualizedROI float64 `json:"annualized_roi"`
}

type QuickComparison struct {
	OptionA         QuickResult `json:"option_a"`
	OptionB         QuickResult `json:"option_b"`
	OpportunityCost float64     `json:"opportunity_cost"`
}
