package domain

import (
	"github.com/shopspring/decimal"
)

// PaymentPlan is the two-phase level-payment schedule derived from LoanTerms.
type PaymentPlan struct {
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	FirstPeriodPayment decimal.Decimal `json:"first_period_payment"`
	SubsequentPayment  decimal.Decimal `json:"subsequent_payment"`
	BalanceAtSplit     decimal.Decimal `json:"balance_at_split"`
	TermMonths         int             `json:"term_months"`
	FixedPeriodMonths  int             `json:"fixed_period_months"`
}

// HasVariablePeriod reports whether the plan re-amortizes after the fixed period.
func (p PaymentPlan) HasVariablePeriod() bool { return p.FixedPeriodMonths < p.TermMonths }

// PhaseForMonth returns the rate phase governing the given 1-based month.
func (p PaymentPlan) PhaseForMonth(month int) Phase {
	switch {
	case month > p.TermMonths:
		return PhaseTerminal
	case month <= p.FixedPeriodMonths:
		return PhaseFixed
	default:
		return PhaseVariable
	}
}

// PaymentForMonth returns the level payment due in the given 1-based month.
func (p PaymentPlan) PaymentForMonth(month int) decimal.Decimal {
	if p.PhaseForMonth(month) == PhaseFixed {
		return p.FirstPeriodPayment
	}
	return p.SubsequentPayment
}
