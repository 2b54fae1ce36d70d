package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"opportunity-engine/internal/model"
)

const (
	pageWidth    = 210.0
	marginLR     = 15.0
	contentWidth = pageWidth - 2*marginLR
)

var ledgerColumns = []struct {
	title string
	width float64
}{
	{"Year", 14},
	{"Phase", 24},
	{"Cash flow", 28},
	{"Interest", 28},
	{"Total", 28},
	{"Net worth", 30},
	{"No interest", 28},
}

// PDFReport lays out a comparison on A4 pages.
type PDFReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// PDF renders the summary followed by both yearly ledgers.
func PDF(resp *model.CalculationResponse) ([]byte, error) {
	res := resp.CalculationResult
	if res.Comparison == nil || res.OptionA == nil || res.OptionB == nil {
		return nil, fmt.Errorf("calculation %s has no results to render", resp.CalculationMetadata.CalculationID)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLR, 15, marginLR)
	pdf.SetAutoPageBreak(true, 15)
	r := &PDFReport{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	r.summaryPage(resp)
	r.ledger(res.OptionA)
	r.ledger(res.OptionB)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *PDFReport) summaryPage(resp *model.CalculationResponse) {
	res := resp.CalculationResult
	a, b, c := res.OptionA, res.OptionB, res.Comparison

	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.CellFormat(contentWidth, 12, "Opportunity Cost Analysis", "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "I", 10)
	r.pdf.CellFormat(contentWidth, 6, fmt.Sprintf("%d years at %s%% market rate, generated %s",
		res.Parameters.Years, strconv.FormatFloat(res.Parameters.MarketRate, 'f', -1, 64),
		time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	r.pdf.SetFillColor(235, 240, 250)
	r.pdf.SetFont("Arial", "B", 11)
	half := contentWidth / 2
	r.pdf.CellFormat(half, 8, "", "1", 0, "L", true, 0, "")
	r.pdf.CellFormat(half/2, 8, r.tr(a.Option.Name), "1", 0, "C", true, 0, "")
	r.pdf.CellFormat(half/2, 8, r.tr(b.Option.Name), "1", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	rows := []struct {
		label string
		a, b  string
	}{
		{"Initial salary", Money(a.Option.InitialSalary), Money(b.Option.InitialSalary)},
		{"Salary growth (%)", strconv.FormatFloat(a.Option.SalaryGrowthRate, 'f', -1, 64), strconv.FormatFloat(b.Option.SalaryGrowthRate, 'f', -1, 64)},
		{"Tuition per year", Money(a.Option.TuitionCost), Money(b.Option.TuitionCost)},
		{"Tuition years", strconv.Itoa(a.Option.TuitionYears), strconv.Itoa(b.Option.TuitionYears)},
		{"Years delay", strconv.Itoa(a.Option.YearsDelay), strconv.Itoa(b.Option.YearsDelay)},
		{"Future value (closed form)", Money(a.FutureValue), Money(b.FutureValue)},
		{"Final balance (running)", Money(a.FinalBalance), Money(b.FinalBalance)},
	}
	for _, row := range rows {
		r.pdf.CellFormat(half, 7, row.label, "1", 0, "L", false, 0, "")
		r.pdf.CellFormat(half/2, 7, row.a, "1", 0, "R", false, 0, "")
		r.pdf.CellFormat(half/2, 7, row.b, "1", 1, "R", false, 0, "")
	}

	r.pdf.Ln(6)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.CellFormat(contentWidth, 8, r.tr(fmt.Sprintf("Opportunity cost: %s (%s)",
		Money(c.OpportunityCost), Percent(c.PercentageDiff))), "", 1, "L", false, 0, "")
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.CellFormat(contentWidth, 7, r.tr(Recommendation(*c, a.Option.Name, b.Option.Name)), "", 1, "L", false, 0, "")

	if len(res.Messages) > 0 {
		r.pdf.Ln(4)
		r.pdf.SetFont("Arial", "I", 9)
		for _, m := range res.Messages {
			r.pdf.MultiCell(contentWidth, 5, r.tr(m.Code+": "+m.Message), "", "L", false)
		}
	}
}

func (r *PDFReport) ledger(p *model.OptionProjection) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.CellFormat(contentWidth, 10, r.tr(p.Option.Name+": yearly breakdown"), "", 1, "L", false, 0, "")

	header := func() {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(235, 240, 250)
		for _, col := range ledgerColumns {
			r.pdf.CellFormat(col.width, 7, col.title, "1", 0, "C", true, 0, "")
		}
		r.pdf.Ln(-1)
		r.pdf.SetFont("Arial", "", 9)
	}
	header()

	_, pageHeight := r.pdf.GetPageSize()
	_, _, _, bottom := r.pdf.GetMargins()
	for _, row := range p.Breakdown {
		if r.pdf.GetY()+6 > pageHeight-bottom {
			r.pdf.AddPage()
			header()
		}
		cells := []string{
			strconv.Itoa(row.Year),
			row.Description,
			Money(row.CashFlowGainLoss),
			Money(row.InterestGainLoss),
			Money(row.TotalGainLoss),
			Money(row.NetWorth),
			Money(row.ValueWithoutInterest),
		}
		for i, col := range ledgerColumns {
			align := "R"
			if i == 1 {
				align = "L"
			}
			r.pdf.CellFormat(col.width, 6, cells[i], "1", 0, align, false, 0, "")
		}
		r.pdf.Ln(-1)
	}
}
