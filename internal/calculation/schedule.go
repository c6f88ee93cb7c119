package calculation

import (
	"fmt"

	"github.com/realestimate/realestimate/internal/domain"
	"github.com/shopspring/decimal"
)

// BuildPaymentPlan derives the two-phase payment plan for the given terms.
// The first-period payment amortizes the loan over the full term; when a
// variable period follows, the balance left at the split is re-amortized
// over the remaining months at the subsequent rate.
func (e *Engine) BuildPaymentPlan(terms domain.LoanTerms) (*domain.PaymentPlan, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	loanAmount, err := e.payments.LoanAmount(terms.PropertyPrice, terms.DownPaymentFraction)
	if err != nil {
		return nil, err
	}
	termMonths := terms.TermMonths()
	fixedMonths := terms.FixedMonths()

	firstPayment, err := e.payments.LevelPayment(loanAmount, terms.FirstPeriodRate, termMonths)
	if err != nil {
		return nil, fmt.Errorf("first period payment: %w", err)
	}

	plan := &domain.PaymentPlan{
		LoanAmount:         loanAmount,
		FirstPeriodPayment: firstPayment,
		SubsequentPayment:  firstPayment,
		BalanceAtSplit:     decimal.Zero,
		TermMonths:         termMonths,
		FixedPeriodMonths:  fixedMonths,
	}
	if fixedMonths == termMonths {
		e.Logger.Debugf("payment plan: single phase, loan=%s payment=%s", loanAmount.StringFixed(2), firstPayment.StringFixed(2))
		return plan, nil
	}

	balance, err := e.payments.RemainingBalance(loanAmount, terms.FirstPeriodRate, fixedMonths, firstPayment)
	if err != nil {
		return nil, fmt.Errorf("balance at split: %w", err)
	}
	subsequent, err := e.payments.LevelPayment(balance, terms.SubsequentRate, termMonths-fixedMonths)
	if err != nil {
		return nil, fmt.Errorf("subsequent period payment: %w", err)
	}
	plan.BalanceAtSplit = balance
	plan.SubsequentPayment = subsequent

	e.Logger.Debugf("payment plan: loan=%s first=%s split_balance=%s subsequent=%s",
		loanAmount.StringFixed(2), firstPayment.StringFixed(2), balance.StringFixed(2), subsequent.StringFixed(2))
	return plan, nil
}

// BuildPaymentPlan derives a payment plan using a default engine.
func BuildPaymentPlan(terms domain.LoanTerms) (*domain.PaymentPlan, error) {
	return NewEngine().BuildPaymentPlan(terms)
}
