package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/realestimate/realestimate/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(report *domain.ComparisonReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "BUY VS RENT COMPARISON")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)

	for i, sr := range report.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sr.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		writeAssumptions(&buf, sr)
		writeInputs(&buf, sr)
		writePlan(&buf, sr)
		writeTotals(&buf, sr)
		writePeriods(&buf, sr.Result)
		writeYearly(&buf, sr.Result.Yearly)
		writeRange(&buf, sr.Range)
		writeVerdict(&buf, sr)
		fmt.Fprintln(&buf)
	}

	if len(report.Scenarios) > 1 {
		rec := AnalyzeScenarios(report)
		fmt.Fprintln(&buf, "OVERALL")
		fmt.Fprintln(&buf, "-------")
		fmt.Fprintf(&buf, "Buying cheaper in %d of %d scenarios\n", rec.BuyingCheaper, len(report.Scenarios))
		fmt.Fprintf(&buf, "Most favorable for buying: %s (net benefit %s)\n", rec.ScenarioName, FormatCurrency(rec.NetBenefitBuying))
	}
	return buf.Bytes(), nil
}

func writeAssumptions(buf *bytes.Buffer, sr domain.ScenarioReport) {
	fmt.Fprintln(buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(sr) {
		fmt.Fprintf(buf, "• %s\n", a)
	}
	fmt.Fprintln(buf)
}

func writeInputs(buf *bytes.Buffer, sr domain.ScenarioReport) {
	fmt.Fprintln(buf, "INPUTS:")
	fmt.Fprintf(buf, "  Property Price:          %s\n", FormatCurrency(sr.Terms.PropertyPrice))
	fmt.Fprintf(buf, "  Down Payment:            %s (%s)\n", FormatCurrency(sr.Terms.DownPayment()), FormatRate(sr.Terms.DownPaymentFraction))
	fmt.Fprintf(buf, "  Monthly Rent:            %s\n", FormatCurrency(sr.Rent.MonthlyRent))
	fmt.Fprintf(buf, "  Investment Return:       %s annually\n", FormatRate(sr.Rent.AnnualInvestmentReturn))
	fmt.Fprintf(buf, "  Term:                    %d years (%d fixed)\n", sr.Terms.TermYears, sr.Terms.FixedPeriodYears)
	if sr.StartMonth != "" {
		fmt.Fprintf(buf, "  First Payment:           %s\n", sr.StartMonth)
	}
	fmt.Fprintln(buf)
}

func writePlan(buf *bytes.Buffer, sr domain.ScenarioReport) {
	plan := sr.Plan
	fmt.Fprintln(buf, "PAYMENT PLAN:")
	fmt.Fprintf(buf, "  Loan Amount:             %s\n", FormatCurrency(plan.LoanAmount))
	fmt.Fprintf(buf, "  Monthly Payment (first %d years): %s\n", sr.Terms.FixedPeriodYears, FormatCurrency(plan.FirstPeriodPayment))
	if plan.HasVariablePeriod() {
		fmt.Fprintf(buf, "  Balance After Fixed Period: %s\n", FormatCurrency(plan.BalanceAtSplit))
		if sr.Range != nil {
			fmt.Fprintf(buf, "  Monthly Payment (after fixed period): %s to %s\n",
				FormatCurrency(sr.Range.MinPlan.SubsequentPayment), FormatCurrency(sr.Range.MaxPlan.SubsequentPayment))
		} else {
			fmt.Fprintf(buf, "  Monthly Payment (after fixed period): %s\n", FormatCurrency(plan.SubsequentPayment))
		}
	}
	fmt.Fprintln(buf)
}

func writeTotals(buf *bytes.Buffer, sr domain.ScenarioReport) {
	r := sr.Result
	fmt.Fprintln(buf, "TOTALS:")
	fmt.Fprintf(buf, "  Total Principal Paid:    %s\n", FormatCurrency(r.TotalPrincipalPaid))
	fmt.Fprintf(buf, "  Total Interest Paid:     %s\n", FormatCurrency(r.TotalInterestPaid))
	fmt.Fprintf(buf, "  Total Mortgage Cost:     %s\n", FormatCurrency(r.TotalMortgageCost))
	fmt.Fprintf(buf, "  Total Rent Cost:         %s\n", FormatCurrency(r.TotalRentCost))
	fmt.Fprintf(buf, "  Total Rent and Savings:  %s\n", FormatCurrency(r.TotalRentAndSavings))
	fmt.Fprintf(buf, "  Financial Difference:    %s\n", FormatCurrency(r.TotalMortgageCost.Sub(r.TotalRentAndSavings)))
	fmt.Fprintf(buf, "  Investment Fund (renting): %s\n", FormatCurrency(r.FinalInvestmentFund))
	fmt.Fprintf(buf, "  Investment Growth:       %s\n", FormatCurrency(r.TotalInvestmentGrowth))
	fmt.Fprintln(buf)
}

func writePeriods(buf *bytes.Buffer, r *domain.ComparisonResult) {
	fmt.Fprintln(buf, "PERIOD BREAKDOWN:")
	fmt.Fprintf(buf, "  %-9s %7s %22s %22s %22s %10s\n", "Period", "Months", "Mortgage", "Rent", "Interest", "Savings")
	for _, p := range []domain.PeriodBreakdown{r.FixedPeriod, r.VariablePeriod} {
		if p.Months == 0 {
			continue
		}
		fmt.Fprintf(buf, "  %-9s %7d %22s %22s %22s %10s\n", p.Phase, p.Months,
			FormatCurrency(p.MortgageCost), FormatCurrency(p.RentCost), FormatCurrency(p.InterestPaid), FormatPercentage(p.RentSavingsPercent))
	}
	fmt.Fprintln(buf)
}

func writeYearly(buf *bytes.Buffer, years []domain.YearlySummary) {
	fmt.Fprintln(buf, "YEARLY SUMMARY:")
	fmt.Fprintf(buf, "  %4s %20s %20s %20s %22s %22s\n", "Year", "Avg Payment", "Principal", "Interest", "Balance", "Investment Fund")
	for _, y := range years {
		fmt.Fprintf(buf, "  %4d %20s %20s %20s %22s %22s\n", y.Year,
			FormatCurrency(y.AveragePayment), FormatCurrency(y.TotalPrincipal), FormatCurrency(y.TotalInterest),
			FormatCurrency(y.EndingBalance), FormatCurrency(y.EndingInvestmentFund))
	}
	fmt.Fprintln(buf)
}

func writeRange(buf *bytes.Buffer, rng *domain.RangeResult) {
	if rng == nil {
		return
	}
	fmt.Fprintln(buf, "SUBSEQUENT RATE RANGE:")
	fmt.Fprintf(buf, "  At %s: net benefit of buying %s\n", FormatRate(rng.MinRate), FormatCurrency(rng.Min.NetBenefitBuying))
	fmt.Fprintf(buf, "  At %s: net benefit of buying %s\n", FormatRate(rng.MaxRate), FormatCurrency(rng.Max.NetBenefitBuying))
	fmt.Fprintf(buf, "  Conclusion: %s\n", rng.Outcome.Description())
	fmt.Fprintln(buf)
}

func writeVerdict(buf *bytes.Buffer, sr domain.ScenarioReport) {
	s := sr.Summary
	fmt.Fprintln(buf, "VERDICT:")
	fmt.Fprintf(buf, "  Is buying cheaper?       %s\n", s.Verdict)
	fmt.Fprintf(buf, "  Net Benefit of Buying:   %s\n", FormatCurrency(s.NetBenefitBuying))
	fmt.Fprintf(buf, "  Rent Savings:            %s (fixed %s, variable %s)\n",
		FormatPercentage(s.RentSavingsPercent), FormatPercentage(s.FixedPeriodSavingsPercent), FormatPercentage(s.VariablePeriodSavingsPercent))
	fmt.Fprintf(buf, "  Interest Share of Payments: %s\n", FormatPercentage(s.InterestSharePercent))
	fmt.Fprintf(buf, "  Break-even Rent:         %s\n", BreakEvenDescription(sr.BreakEven))
	fmt.Fprintf(buf, "  Recommendation:          %s\n", strings.ToUpper(s.Recommendation))
}
