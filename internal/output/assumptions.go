package output

import (
	"fmt"

	"github.com/realestimate/realestimate/internal/domain"
)

// DefaultAssumptions lists the modeling assumptions shared by every scenario.
var DefaultAssumptions = []string{
	"Monthly payments are level within each rate period",
	"The variable period re-amortizes the remaining balance at the subsequent rate",
	"Payment minus rent is invested each month and compounded monthly",
	"Taxes, insurance, maintenance and transaction costs are not modeled",
}

// GenerateAssumptions lists the assumptions for one scenario, including its inputs.
func GenerateAssumptions(sr domain.ScenarioReport) []string {
	out := []string{
		fmt.Sprintf("Fixed rate %s for %d years, then %s for the remaining %d years",
			FormatRate(sr.Terms.FirstPeriodRate), sr.Terms.FixedPeriodYears,
			FormatRate(sr.Terms.SubsequentRate), sr.Terms.TermYears-sr.Terms.FixedPeriodYears),
		fmt.Sprintf("Down payment: %s of the property price", FormatRate(sr.Terms.DownPaymentFraction)),
		fmt.Sprintf("Investment return if renting: %s annually", FormatRate(sr.Rent.AnnualInvestmentReturn)),
	}
	if sr.Range != nil {
		out = append(out, fmt.Sprintf("Subsequent rate range: %s to %s", FormatRate(sr.Range.MinRate), FormatRate(sr.Range.MaxRate)))
	}
	return append(out, DefaultAssumptions...)
}
