package rates

import "opportunity-engine/internal/model"

// Long-run annualised nominal index returns, percent. Not inflation adjusted.
var presets = []model.RatePreset{
	{ID: "ftse100", Name: "FTSE 100", AnnualReturn: 7.4},
	{ID: "ftse250", Name: "FTSE 250", AnnualReturn: 9.5},
	{ID: "ftseAllShare", Name: "FTSE All-Share", AnnualReturn: 7.8},
	{ID: "sp500", Name: "S&P 500", AnnualReturn: 10.4},
	{ID: "nasdaq", Name: "NASDAQ Composite", AnnualReturn: 10.5},
	{ID: "dowJones", Name: "Dow Jones Industrial Average", AnnualReturn: 7.5},
	{ID: "dax", Name: "Xetra DAX", AnnualReturn: 8.0},
	{ID: "nikkei225", Name: "Nikkei 225", AnnualReturn: 4.5},
	{ID: "msciWorld", Name: "MSCI World", AnnualReturn: 8.5},
	{ID: "ftseAllWorld", Name: "FTSE All-World", AnnualReturn: 8.0},
}

// Presets returns a copy of the built-in preset table.
func Presets() []model.RatePreset {
	out := make([]model.RatePreset, len(presets))
	copy(out, presets)
	return out
}

func lookupPreset(id string) (model.RatePreset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return model.RatePreset{}, false
}
