package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/realestimate/realestimate/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "BUY VS RENT SUMMARY")
	fmt.Fprintln(&buf, "================================")
	scenarios := append([]domain.ScenarioReport(nil), report.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sr := range scenarios {
		fmt.Fprintf(&buf, "%s: Payment=%s/%s Rent=%s BuyingCheaper=%s\n",
			sr.Name,
			FormatCurrency(sr.Plan.FirstPeriodPayment),
			FormatCurrency(sr.Plan.SubsequentPayment),
			FormatCurrency(sr.Rent.MonthlyRent),
			sr.Summary.Verdict,
		)
		fmt.Fprintf(&buf, "  Interest=%s NetBenefitBuying=%s RentSavings=%s\n",
			FormatCurrency(sr.Result.TotalInterestPaid),
			FormatCurrency(sr.Summary.NetBenefitBuying),
			FormatPercentage(sr.Summary.RentSavingsPercent))
		if sr.Range != nil {
			fmt.Fprintf(&buf, "  Range %s-%s: %s\n", FormatRate(sr.Range.MinRate), FormatRate(sr.Range.MaxRate), sr.Range.Outcome.Description())
		}
	}
	rec := AnalyzeScenarios(report)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s, net benefit of buying %s)\n", rec.ScenarioName, rec.Action, FormatCurrency(rec.NetBenefitBuying))
	}
	return buf.Bytes(), nil
}
