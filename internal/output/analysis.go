package output

import (
	"sort"

	"github.com/realestimate/realestimate/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the scenario where buying is most favorable.
type Recommendation struct {
	ScenarioName     string
	NetBenefitBuying decimal.Decimal
	Action           string
	BuyingCheaper    int
	RentingCheaper   int
}

// AnalyzeScenarios ranks scenarios by net benefit of buying.
func AnalyzeScenarios(report *domain.ComparisonReport) Recommendation {
	if report == nil || len(report.Scenarios) == 0 {
		return Recommendation{}
	}
	ranked := append([]domain.ScenarioReport(nil), report.Scenarios...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Summary.NetBenefitBuying.GreaterThan(ranked[j].Summary.NetBenefitBuying)
	})

	var rec Recommendation
	for _, sr := range report.Scenarios {
		if sr.Summary.BuyingCheaper {
			rec.BuyingCheaper++
		} else {
			rec.RentingCheaper++
		}
	}
	best := ranked[0]
	rec.ScenarioName = best.Name
	rec.NetBenefitBuying = best.Summary.NetBenefitBuying
	rec.Action = best.Summary.Recommendation
	return rec
}
