package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"opportunity-engine/internal/model"
)

var csvHeader = []string{
	"year", "description", "cash_flow_gain_loss", "interest_gain_loss",
	"total_gain_loss", "net_worth", "value_without_interest",
}

// WriteCSV writes one row per breakdown year.
func WriteCSV(w io.Writer, rows []model.BreakdownYear) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Year),
			r.Description,
			Money(r.CashFlowGainLoss),
			Money(r.InterestGainLoss),
			Money(r.TotalGainLoss),
			Money(r.NetWorth),
			Money(r.ValueWithoutInterest),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
