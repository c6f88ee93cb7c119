package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/realestimate/realestimate/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ComparisonReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "LoanAmount", "FirstPeriodPayment", "SubsequentPayment", "TotalMortgageCost", "TotalRentCost", "TotalPrincipalPaid", "TotalInterestPaid", "TotalRentAndSavings", "FinalInvestmentFund", "TotalInvestmentGrowth", "WealthIfBuying", "WealthIfRenting", "NetBenefitBuying", "RentSavingsPercent", "BreakEvenRent", "BuyingCheaper", "Recommendation"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ScenarioReport(nil), report.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sr := range scenarios {
		r := sr.Result
		row := []string{
			sr.Name,
			sr.Plan.LoanAmount.StringFixed(2),
			sr.Plan.FirstPeriodPayment.StringFixed(2),
			sr.Plan.SubsequentPayment.StringFixed(2),
			r.TotalMortgageCost.StringFixed(2),
			r.TotalRentCost.StringFixed(2),
			r.TotalPrincipalPaid.StringFixed(2),
			r.TotalInterestPaid.StringFixed(2),
			r.TotalRentAndSavings.StringFixed(2),
			r.FinalInvestmentFund.StringFixed(2),
			r.TotalInvestmentGrowth.StringFixed(2),
			r.WealthIfBuying.StringFixed(2),
			r.WealthIfRenting.StringFixed(2),
			r.NetBenefitBuying.StringFixed(2),
			sr.Summary.RentSavingsPercent.StringFixed(2),
			breakEvenAmount(sr.BreakEven),
			boolToString(sr.Summary.BuyingCheaper),
			sr.Summary.Recommendation,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
