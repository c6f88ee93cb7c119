package calculation

import (
	"fmt"

	"github.com/realestimate/realestimate/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareRange runs the comparison at the terms' subsequent rate and at
// maxRate, and classifies whether the verdict holds across the range.
// When maxRate equals the subsequent rate both ends are identical.
func (e *Engine) CompareRange(terms domain.LoanTerms, maxRate decimal.Decimal, rent domain.RentScenario) (*domain.RangeResult, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if maxRate.LessThan(terms.SubsequentRate) {
		return nil, domain.NewInputError("subsequent_rate_max", maxRate, "cannot be less than subsequent_rate")
	}

	minPlan, err := e.BuildPaymentPlan(terms)
	if err != nil {
		return nil, fmt.Errorf("min rate plan: %w", err)
	}
	minResult, err := e.Compare(minPlan, terms, rent)
	if err != nil {
		return nil, fmt.Errorf("min rate comparison: %w", err)
	}

	maxTerms := terms.WithSubsequentRate(maxRate)
	maxPlan, err := e.BuildPaymentPlan(maxTerms)
	if err != nil {
		return nil, fmt.Errorf("max rate plan: %w", err)
	}
	maxResult, err := e.Compare(maxPlan, maxTerms, rent)
	if err != nil {
		return nil, fmt.Errorf("max rate comparison: %w", err)
	}

	return &domain.RangeResult{
		MinRate: terms.SubsequentRate,
		MaxRate: maxRate,
		MinPlan: minPlan,
		MaxPlan: maxPlan,
		Min:     minResult,
		Max:     maxResult,
		Outcome: ClassifyRange(minResult, maxResult),
	}, nil
}

// ClassifyRange reports whether buying wins at both ends, loses at both, or neither.
func ClassifyRange(low, high *domain.ComparisonResult) domain.RangeOutcome {
	switch {
	case low.IsBuyingCheaper && high.IsBuyingCheaper:
		return domain.OutcomeBuyingCheaperAll
	case !low.IsBuyingCheaper && !high.IsBuyingCheaper:
		return domain.OutcomeRentingCheaperAll
	default:
		return domain.OutcomeDependsOnRates
	}
}
