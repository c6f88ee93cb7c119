package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/realestimate/realestimate/internal/domain"
	dec "github.com/realestimate/realestimate/pkg/decimal"
)

// PaymentCalculator implements the level-payment and future-value formulas
// on top of a fixed-scale arithmetic policy.
type PaymentCalculator struct {
	policy dec.Policy
}

// NewPaymentCalculator creates a calculator using the given policy.
func NewPaymentCalculator(policy dec.Policy) *PaymentCalculator {
	return &PaymentCalculator{policy: policy}
}

var defaultPaymentCalculator = NewPaymentCalculator(dec.DefaultPolicy())

// LoanAmount returns the financed amount, price × (1 − downFraction).
func (pc *PaymentCalculator) LoanAmount(price, downFraction decimal.Decimal) (decimal.Decimal, error) {
	if !price.IsPositive() {
		return decimal.Zero, domain.NewInputError("property_price", price, "must be positive")
	}
	if downFraction.IsNegative() || downFraction.GreaterThan(dec.One) {
		return decimal.Zero, domain.NewInputError("down_payment_fraction", downFraction, "must be between 0 and 1")
	}
	return pc.policy.Mul(price, dec.One.Sub(downFraction)), nil
}

// LevelPayment returns the constant monthly payment that amortizes principal
// over termMonths at the given annual rate. Rates below RateEpsilon are
// treated as zero and repaid linearly.
func (pc *PaymentCalculator) LevelPayment(principal, annualRate decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	if termMonths <= 0 {
		return decimal.Zero, &domain.CalculationError{Op: "LevelPayment", Reason: "term months must be positive"}
	}
	p := pc.policy
	if annualRate.LessThan(dec.RateEpsilon) {
		return p.Div(principal, decimal.NewFromInt(int64(termMonths))), nil
	}
	r := p.Monthly(annualRate)
	f := p.PowInt(dec.One.Add(r), termMonths)
	if r.IsZero() || f.Equal(dec.One) {
		return decimal.Zero, &domain.CalculationError{Op: "LevelPayment", Reason: fmt.Sprintf("monthly rate rounds to zero at scale %d", p.Scale())}
	}
	// principal * r / (1 - (1+r)^-n) == principal * r * f / (f - 1)
	return p.Div(p.Mul(p.Mul(principal, r), f), f.Sub(dec.One)), nil
}

// RemainingBalance returns the outstanding principal after elapsedMonths
// level payments, clamped at zero.
func (pc *PaymentCalculator) RemainingBalance(principal, annualRate decimal.Decimal, elapsedMonths int, payment decimal.Decimal) (decimal.Decimal, error) {
	if elapsedMonths < 0 {
		return decimal.Zero, &domain.CalculationError{Op: "RemainingBalance", Reason: "elapsed months cannot be negative"}
	}
	p := pc.policy
	if annualRate.LessThan(dec.RateEpsilon) {
		paid := p.Mul(payment, decimal.NewFromInt(int64(elapsedMonths)))
		return dec.ClampZero(principal.Sub(paid)), nil
	}
	r := p.Monthly(annualRate)
	if r.IsZero() {
		return decimal.Zero, &domain.CalculationError{Op: "RemainingBalance", Reason: fmt.Sprintf("monthly rate rounds to zero at scale %d", p.Scale())}
	}
	f := p.PowInt(dec.One.Add(r), elapsedMonths)
	balance := p.Mul(principal, f).Sub(p.Div(p.Mul(payment, f.Sub(dec.One)), r))
	return dec.ClampZero(balance), nil
}

// LoanAmount computes the financed amount at the default precision.
func LoanAmount(price, downFraction decimal.Decimal) (decimal.Decimal, error) {
	return defaultPaymentCalculator.LoanAmount(price, downFraction)
}

// LevelPayment computes the level monthly payment at the default precision.
func LevelPayment(principal, annualRate decimal.Decimal, termMonths int) (decimal.Decimal, error) {
	return defaultPaymentCalculator.LevelPayment(principal, annualRate, termMonths)
}

// RemainingBalance computes the outstanding balance at the default precision.
func RemainingBalance(principal, annualRate decimal.Decimal, elapsedMonths int, payment decimal.Decimal) (decimal.Decimal, error) {
	return defaultPaymentCalculator.RemainingBalance(principal, annualRate, elapsedMonths, payment)
}
