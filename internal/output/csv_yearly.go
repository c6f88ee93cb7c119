package output

import (
	"bytes"
	"encoding/csv"

	"github.com/realestimate/realestimate/internal/domain"
)

// CSVYearlyExporter writes one row per scenario and loan year.
type CSVYearlyExporter struct{}

func (c CSVYearlyExporter) Name() string { return "yearly-csv" }

func (c CSVYearlyExporter) Format(report *domain.ComparisonReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Months", "AveragePayment", "AverageRent", "TotalPayments", "TotalRent", "TotalPrincipal", "TotalInterest", "InvestmentContribution", "InvestmentGrowth", "EndingBalance", "EndingInvestmentFund"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sr := range report.Scenarios {
		for _, y := range sr.Result.Yearly {
			row := []string{
				sr.Name,
				intToString(y.Year),
				intToString(y.Months),
				y.AveragePayment.StringFixed(2),
				y.AverageRent.StringFixed(2),
				y.TotalPayments.StringFixed(2),
				y.TotalRent.StringFixed(2),
				y.TotalPrincipal.StringFixed(2),
				y.TotalInterest.StringFixed(2),
				y.InvestmentContribution.StringFixed(2),
				y.InvestmentGrowth.StringFixed(2),
				y.EndingBalance.StringFixed(2),
				y.EndingInvestmentFund.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
