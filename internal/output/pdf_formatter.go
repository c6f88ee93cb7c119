package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/realestimate/realestimate/internal/domain"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfMarginBottom = 20.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders a printable A4 report, one section per scenario.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	r.pdf.SetCreationDate(report.GeneratedAt)
	r.pdf.SetTitle("Buy vs Rent Comparison", false)

	r.addTitle(report)
	for i, sr := range report.Scenarios {
		r.addScenario(i+1, sr)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf *fpdf.Fpdf
}

func (r *pdfReport) addTitle(report *domain.ComparisonReport) {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 15, "Buy vs Rent Comparison", "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.CellFormat(pdfContentWidth, 8, fmt.Sprintf("Generated: %s", report.GeneratedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)

	if len(report.Scenarios) > 1 {
		rec := AnalyzeScenarios(report)
		r.drawSectionHeader("Overall")
		widths := []float64{pdfContentWidth * 0.6, pdfContentWidth * 0.4}
		r.drawTableRow([]string{"Scenarios where buying is cheaper", intToString(rec.BuyingCheaper)}, widths, false)
		r.drawTableRow([]string{"Scenarios where renting is cheaper", intToString(rec.RentingCheaper)}, widths, false)
		r.drawTableRow([]string{"Most favorable for buying", rec.ScenarioName}, widths, true)
		r.pdf.Ln(6)
	}
}

func (r *pdfReport) addScenario(n int, sr domain.ScenarioReport) {
	res := sr.Result
	r.drawSectionHeader(fmt.Sprintf("Scenario %d: %s", n, sr.Name))

	r.pdf.SetFont("Arial", "B", 12)
	if sr.Summary.BuyingCheaper {
		r.pdf.SetTextColor(30, 132, 73)
	} else {
		r.pdf.SetTextColor(176, 58, 46)
	}
	r.pdf.CellFormat(pdfContentWidth, 8, fmt.Sprintf("Is buying cheaper? %s. Recommendation: %s", sr.Summary.Verdict, sr.Summary.Recommendation), "", 1, "L", false, 0, "")
	r.pdf.Ln(2)

	widths := []float64{pdfContentWidth * 0.6, pdfContentWidth * 0.4}
	r.drawTableHeader([]string{"Item", "Value"}, widths)
	rows := [][]string{
		{"Property Price", FormatCurrency(sr.Terms.PropertyPrice)},
		{"Loan Amount", FormatCurrency(sr.Plan.LoanAmount)},
		{"First Period Payment", FormatCurrency(sr.Plan.FirstPeriodPayment)},
		{"Subsequent Payment", FormatCurrency(sr.Plan.SubsequentPayment)},
		{"Monthly Rent", FormatCurrency(sr.Rent.MonthlyRent)},
		{"Total Mortgage Cost", FormatCurrency(res.TotalMortgageCost)},
		{"Total Interest Paid", FormatCurrency(res.TotalInterestPaid)},
		{"Total Rent Cost", FormatCurrency(res.TotalRentCost)},
		{"Final Investment Fund", FormatCurrency(res.FinalInvestmentFund)},
		{"Wealth If Buying", FormatCurrency(res.WealthIfBuying)},
		{"Wealth If Renting", FormatCurrency(res.WealthIfRenting)},
		{"Rent Savings", FormatPercentage(sr.Summary.RentSavingsPercent)},
		{"Break-even Rent", breakEvenAmount(sr.BreakEven)},
	}
	for _, row := range rows {
		r.drawTableRow(row, widths, false)
	}
	r.drawTableRow([]string{"Net Benefit of Buying", FormatCurrency(res.NetBenefitBuying)}, widths, true)
	r.pdf.Ln(4)

	if sr.Range != nil {
		rangeWidths := []float64{pdfContentWidth * 0.2, pdfContentWidth * 0.25, pdfContentWidth * 0.25, pdfContentWidth * 0.3}
		r.drawTableHeader([]string{"Rate", "Payment", "Interest", "Net Benefit"}, rangeWidths)
		r.drawTableRow([]string{FormatRate(sr.Range.MinRate), FormatCurrency(sr.Range.MinPlan.SubsequentPayment), FormatCurrency(sr.Range.Min.TotalInterestPaid), FormatCurrency(sr.Range.Min.NetBenefitBuying)}, rangeWidths, false)
		r.drawTableRow([]string{FormatRate(sr.Range.MaxRate), FormatCurrency(sr.Range.MaxPlan.SubsequentPayment), FormatCurrency(sr.Range.Max.TotalInterestPaid), FormatCurrency(sr.Range.Max.NetBenefitBuying)}, rangeWidths, false)
		r.pdf.SetFont("Arial", "I", 9)
		r.pdf.CellFormat(pdfContentWidth, 6, sr.Range.Outcome.Description(), "", 1, "L", false, 0, "")
		r.pdf.Ln(4)
	}

	yearWidths := []float64{pdfContentWidth * 0.1, pdfContentWidth * 0.18, pdfContentWidth * 0.18, pdfContentWidth * 0.18, pdfContentWidth * 0.18, pdfContentWidth * 0.18}
	r.drawTableHeader([]string{"Year", "Payments", "Rent", "Interest", "Balance", "Fund"}, yearWidths)
	for _, y := range res.Yearly {
		r.drawTableRow([]string{
			intToString(y.Year),
			FormatCurrency(y.TotalPayments),
			FormatCurrency(y.TotalRent),
			FormatCurrency(y.TotalInterest),
			FormatCurrency(y.EndingBalance),
			FormatCurrency(y.EndingInvestmentFund),
		}, yearWidths, false)
	}
	r.pdf.Ln(8)
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(4)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)
	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)
	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}
	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
