package calculation

import (
	"fmt"

	"github.com/realestimate/realestimate/internal/domain"
	dec "github.com/realestimate/realestimate/pkg/decimal"
	"github.com/shopspring/decimal"
)

var breakEvenProbeRent = decimal.NewFromInt(1)

// BreakEvenRent finds the monthly rent at which NetBenefitBuying is zero for
// the given plan and investment return. It returns nil when no positive rent
// balances the two sides, including when rent has no effect on the outcome
// (a zero investment return).
//
// The investment fund is linear in the contributions, so NetBenefitBuying is
// affine in rent and two probes determine the root.
func (e *Engine) BreakEvenRent(plan *domain.PaymentPlan, terms domain.LoanTerms, annualReturn decimal.Decimal) (*domain.BreakEvenRent, error) {
	if plan == nil {
		return nil, domain.NewInputError("plan", "nil", "payment plan is required")
	}
	low := breakEvenProbeRent
	high := decimal.Max(plan.FirstPeriodPayment, low.Add(decimal.NewFromInt(1)))

	netLow, err := e.netBenefitAtRent(plan, terms, low, annualReturn)
	if err != nil {
		return nil, fmt.Errorf("break-even probe at %s: %w", low, err)
	}
	netHigh, err := e.netBenefitAtRent(plan, terms, high, annualReturn)
	if err != nil {
		return nil, fmt.Errorf("break-even probe at %s: %w", high, err)
	}

	slope := e.policy.Div(netHigh.Sub(netLow), high.Sub(low))
	if dec.IsNearZero(slope, dec.RateEpsilon) {
		e.Logger.Debugf("break-even rent: outcome does not depend on rent")
		return nil, nil
	}
	rent := low.Sub(e.policy.Div(netLow, slope))
	if !rent.IsPositive() {
		e.Logger.Debugf("break-even rent: no positive solution (%s)", rent.StringFixed(2))
		return nil, nil
	}
	e.Logger.Debugf("break-even rent: %s", rent.StringFixed(2))
	return &domain.BreakEvenRent{
		MonthlyRent:        e.policy.Round(rent),
		BuyingCheaperAbove: slope.IsPositive(),
	}, nil
}

func (e *Engine) netBenefitAtRent(plan *domain.PaymentPlan, terms domain.LoanTerms, rent, annualReturn decimal.Decimal) (decimal.Decimal, error) {
	result, err := e.Compare(plan, terms, domain.RentScenario{MonthlyRent: rent, AnnualInvestmentReturn: annualReturn})
	if err != nil {
		return decimal.Zero, err
	}
	return result.NetBenefitBuying, nil
}
