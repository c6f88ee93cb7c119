package calculation

import (
	"testing"

	"github.com/realestimate/realestimate/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// assertDecimalNear fails when |expected - actual| > tolerance.
func assertDecimalNear(t *testing.T, expected string, actual decimal.Decimal, tolerance string, msgAndArgs ...any) {
	t.Helper()
	diff := decimal.RequireFromString(expected).Sub(actual).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString(tolerance)),
		append([]any{"expected %s, got %s (diff %s)", expected, actual.StringFixed(6), diff.String()}, msgAndArgs...)...)
}

func exampleTerms() domain.LoanTerms {
	return domain.LoanTerms{
		PropertyPrice:       decimal.NewFromInt(750_000_000),
		DownPaymentFraction: decimal.RequireFromString("0.20"),
		FirstPeriodRate:     decimal.RequireFromString("0.0792"),
		SubsequentRate:      decimal.RequireFromString("0.12"),
		TermYears:           5,
		FixedPeriodYears:    3,
	}
}

func exampleRent() domain.RentScenario {
	return domain.RentScenario{
		MonthlyRent:            decimal.NewFromInt(5_000_000),
		AnnualInvestmentReturn: decimal.RequireFromString("0.06"),
	}
}

func mustCompare(t *testing.T, e *Engine, terms domain.LoanTerms, rent domain.RentScenario) (*domain.PaymentPlan, *domain.ComparisonResult) {
	t.Helper()
	plan, err := e.BuildPaymentPlan(terms)
	if err != nil {
		t.Fatalf("BuildPaymentPlan: %v", err)
	}
	result, err := e.Compare(plan, terms, rent)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	return plan, result
}
