package calculation

import (
	"github.com/realestimate/realestimate/internal/domain"
	dec "github.com/realestimate/realestimate/pkg/decimal"
	"github.com/shopspring/decimal"
)

const (
	VerdictYes           = "Yes"
	VerdictNo            = "No"
	RecommendationBuy    = "buy"
	RecommendationRent   = "rent"
	displayPercentPlaces = 2
)

// Summarize derives the display verdict from a comparison result.
// Percentages are rounded to two places and never shown below zero.
func Summarize(result *domain.ComparisonResult) domain.Summary {
	if result == nil {
		return domain.Summary{Verdict: VerdictNo, Recommendation: RecommendationRent}
	}
	summary := domain.Summary{
		BuyingCheaper:                result.IsBuyingCheaper,
		Verdict:                      VerdictNo,
		Recommendation:               RecommendationRent,
		NetBenefitBuying:             result.NetBenefitBuying,
		RentSavingsPercent:           displayPercent(result.RentSavingsPercent),
		FixedPeriodSavingsPercent:    displayPercent(result.FixedPeriod.RentSavingsPercent),
		VariablePeriodSavingsPercent: displayPercent(result.VariablePeriod.RentSavingsPercent),
		InterestSharePercent:         displayPercent(result.InterestSharePercent),
	}
	if result.IsBuyingCheaper {
		summary.Verdict = VerdictYes
		summary.Recommendation = RecommendationBuy
	}
	return summary
}

func displayPercent(d decimal.Decimal) decimal.Decimal {
	return dec.ClampZero(d).Round(displayPercentPlaces)
}
