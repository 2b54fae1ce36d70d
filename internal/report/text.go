// Package report renders calculation results for export: a plain-text
// summary for the clipboard, a CSV ledger and a PDF document.
package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"opportunity-engine/internal/model"
)

// Money rounds half away from zero to two decimals. Infinities and NaN are
// rendered as symbols.
func Money(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

func Percent(v float64) string {
	if s, ok := nonFinite(v); ok {
		return s + "%"
	}
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsPositive() {
		return "+" + d.StringFixed(2) + "%"
	}
	return d.StringFixed(2) + "%"
}

// nonFinite formats values decimal.Decimal cannot hold.
func nonFinite(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return "NaN", true
	case math.IsInf(v, 1):
		return "∞", true
	case math.IsInf(v, -1):
		return "-∞", true
	}
	return "", false
}

// Recommendation names the option that ends ahead under the closed-form projection.
func Recommendation(c model.Comparison, nameA, nameB string) string {
	switch {
	case c.OpportunityCost > 0:
		return fmt.Sprintf("%s is better by %s", nameA, Money(c.OpportunityCost))
	case c.OpportunityCost < 0:
		return fmt.Sprintf("%s is better by %s", nameB, Money(-c.OpportunityCost))
	default:
		return "Both options have equal value"
	}
}

// Text renders the summary copied to the clipboard.
func Text(resp *model.CalculationResponse) string {
	res := resp.CalculationResult
	var b strings.Builder

	if res.Comparison == nil || res.OptionA == nil || res.OptionB == nil {
		fmt.Fprintf(&b, "Calculation %s failed\n", resp.CalculationMetadata.CalculationID)
		for _, m := range res.Messages {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", m.Level, m.Code, m.Message)
		}
		return b.String()
	}

	a, o := res.OptionA, res.OptionB
	c := res.Comparison

	fmt.Fprintf(&b, "Opportunity cost over %d years at %s%% market rate\n\n",
		res.Parameters.Years, strconv.FormatFloat(res.Parameters.MarketRate, 'f', -1, 64))
	for _, p := range []*model.OptionProjection{a, o} {
		fmt.Fprintf(&b, "%s\n", p.Option.Name)
		fmt.Fprintf(&b, "  Future value:  %s\n", Money(p.FutureValue))
		fmt.Fprintf(&b, "  Final balance: %s\n", Money(p.FinalBalance))
	}
	fmt.Fprintf(&b, "\nChoosing %s over %s: %s (%s)\n",
		a.Option.Name, o.Option.Name, Money(c.OpportunityCost), Percent(c.PercentageDiff))
	fmt.Fprintf(&b, "Choosing %s over %s: %s\n",
		o.Option.Name, a.Option.Name, Money(-c.OpportunityCost))
	fmt.Fprintf(&b, "%s\n", Recommendation(*c, a.Option.Name, o.Option.Name))

	for _, m := range res.Messages {
		fmt.Fprintf(&b, "Note: %s\n", m.Message)
	}
	return b.String()
}
