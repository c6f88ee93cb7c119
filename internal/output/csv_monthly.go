package output

import (
	"bytes"
	"encoding/csv"

	"github.com/realestimate/realestimate/internal/domain"
	"github.com/realestimate/realestimate/pkg/dateutil"
)

// CSVMonthlyExporter writes the full month-by-month schedule per scenario.
type CSVMonthlyExporter struct{}

func (c CSVMonthlyExporter) Name() string { return "monthly-csv" }

func (c CSVMonthlyExporter) Format(report *domain.ComparisonReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Month", "Date", "Year", "MonthOfYear", "Phase", "Payment", "Principal", "Interest", "RemainingBalance", "Rent", "RentAndSavings", "Difference", "InvestmentContribution", "InvestmentGrowth", "InvestmentFund"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sr := range report.Scenarios {
		for _, m := range sr.Result.Monthly {
			row := []string{
				sr.Name,
				intToString(m.Month),
				paymentMonthLabel(sr.StartMonth, m.Month),
				intToString(m.Year),
				intToString(m.MonthOfYear),
				string(m.Phase),
				m.Payment.StringFixed(2),
				m.Principal.StringFixed(2),
				m.Interest.StringFixed(2),
				m.RemainingBalance.StringFixed(2),
				m.Rent.StringFixed(2),
				m.RentAndSavings.StringFixed(2),
				m.Difference.StringFixed(2),
				m.InvestmentContribution.StringFixed(2),
				m.InvestmentGrowth.StringFixed(2),
				m.InvestmentFund.StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// paymentMonthLabel returns the calendar month (YYYY-MM) of payment m, or ""
// when the scenario has no start month.
func paymentMonthLabel(startMonth string, m int) string {
	if startMonth == "" {
		return ""
	}
	start, err := dateutil.ParseMonth(startMonth)
	if err != nil {
		return ""
	}
	return dateutil.PaymentDate(start, m).Format(dateutil.MonthLayout)
}
