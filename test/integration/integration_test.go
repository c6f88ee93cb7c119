package integration

import (
	"context"
	"testing"
	"time"

	"github.com/realestimate/realestimate/internal/cache"
	"github.com/realestimate/realestimate/internal/config"
	"github.com/realestimate/realestimate/internal/domain"
	"github.com/realestimate/realestimate/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfigPath = "../testdata/example_config.yaml"

func loadExample(t *testing.T) *domain.Configuration {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile(exampleConfigPath)
	require.NoError(t, err)
	return cfg
}

func near(t *testing.T, want string, got decimal.Decimal, tolerance string) {
	t.Helper()
	diff := decimal.RequireFromString(want).Sub(got).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.RequireFromString(tolerance)),
		"want %s, got %s", want, got.StringFixed(4))
}

func TestEndToEndComparison(t *testing.T) {
	cfg := loadExample(t)
	require.Len(t, cfg.Scenarios, 2)

	svc := service.NewComparisonService(nil, cache.NewMemoryCache(time.Hour), "it:", nil)
	report, err := svc.RunAll(context.Background(), cfg)
	require.NoError(t, err)
	require.Len(t, report.Scenarios, 2)

	apt := report.Scenarios[0]
	assert.Equal(t, "Apartment 750M, 3y fixed", apt.Name)
	near(t, "600000000", apt.Plan.LoanAmount, "0")
	near(t, "12142877.5232", apt.Plan.FirstPeriodPayment, "0.001")
	near(t, "268702343.4481", apt.Plan.BalanceAtSplit, "0.001")
	near(t, "12648752.3006", apt.Plan.SubsequentPayment, "0.001")
	near(t, "740713646.0494", apt.Result.TotalMortgageCost, "0.01")
	near(t, "140713646.0494", apt.Result.TotalInterestPaid, "0.01")
	near(t, "513732354.5663", apt.Result.FinalInvestmentFund, "0.01")
	near(t, "536267645.4337", apt.Result.NetBenefitBuying, "0.01")
	near(t, "0", apt.Result.FinalRemainingBalance, "0.0001")
	assert.Len(t, apt.Result.Monthly, 60)
	assert.Len(t, apt.Result.Yearly, 5)
	assert.True(t, apt.Summary.BuyingCheaper)
	assert.Equal(t, "Yes", apt.Summary.Verdict)

	require.NotNil(t, apt.Range)
	near(t, "13028475.9562", apt.Range.MaxPlan.SubsequentPayment, "0.001")
	near(t, "526562244.8473", apt.Range.Max.NetBenefitBuying, "0.01")
	assert.Equal(t, domain.OutcomeBuyingCheaperAll, apt.Range.Outcome)

	studio := report.Scenarios[1]
	assert.False(t, studio.Summary.BuyingCheaper)
	assert.Equal(t, "rent", studio.Summary.Recommendation)
	assert.True(t, studio.Result.WealthIfBuying.IsNegative(), "interest exceeds the property price")
	assert.Nil(t, studio.Range)
	assert.Equal(t, 0, studio.Result.VariablePeriod.Months)
}

func TestEndToEndInvariants(t *testing.T) {
	cfg := loadExample(t)
	report, err := service.NewComparisonService(nil, nil, "", nil).RunAll(context.Background(), cfg)
	require.NoError(t, err)

	for _, sr := range report.Scenarios {
		t.Run(sr.Name, func(t *testing.T) {
			r := sr.Result
			assert.Len(t, r.Monthly, sr.Terms.TermMonths())
			near(t, r.TotalMortgageCost.String(), r.TotalPrincipalPaid.Add(r.TotalInterestPaid), "0.000001")
			near(t, r.TotalMortgageCost.String(), r.FixedPeriod.MortgageCost.Add(r.VariablePeriod.MortgageCost), "0.000001")
			near(t, r.TotalInvestmentGrowth.String(), r.FinalInvestmentFund.Sub(r.TotalInvestmentContribution), "0.000001")
			near(t, r.NetBenefitBuying.String(), r.WealthIfBuying.Sub(r.WealthIfRenting), "0.000001")
			assert.Equal(t, r.NetBenefitBuying.IsPositive(), r.IsBuyingCheaper)

			var months int
			for _, y := range r.Yearly {
				months += y.Months
			}
			assert.Equal(t, sr.Terms.TermMonths(), months)
		})
	}
}

func TestCachedRunMatchesFreshRun(t *testing.T) {
	cfg := loadExample(t)
	mem := cache.NewMemoryCache(time.Hour)
	svc := service.NewComparisonService(nil, mem, "it:", nil)

	first, err := svc.RunAll(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, len(cfg.Scenarios), mem.Len())

	second, err := svc.RunAll(context.Background(), cfg)
	require.NoError(t, err)
	for i := range first.Scenarios {
		assert.True(t, first.Scenarios[i].Result.NetBenefitBuying.Equal(second.Scenarios[i].Result.NetBenefitBuying))
		assert.Len(t, second.Scenarios[i].Result.Monthly, len(first.Scenarios[i].Result.Monthly))
	}
}
