package calculation

import (
	"fmt"

	"github.com/realestimate/realestimate/internal/domain"
	"github.com/realestimate/realestimate/pkg/dateutil"
	dec "github.com/realestimate/realestimate/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Engine runs the month-by-month buy-vs-rent comparison. It holds only a
// read-only policy and logger, so a single Engine may be shared across
// goroutines.
type Engine struct {
	policy   dec.Policy
	payments *PaymentCalculator
	Logger   Logger
}

// NewEngine creates an engine at the default precision.
func NewEngine() *Engine {
	return NewEngineWithPolicy(dec.DefaultPolicy())
}

// NewEngineWithPolicy creates an engine using the given arithmetic policy.
func NewEngineWithPolicy(policy dec.Policy) *Engine {
	return &Engine{
		policy:   policy,
		payments: NewPaymentCalculator(policy),
		Logger:   NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Policy returns the arithmetic policy used by the engine.
func (e *Engine) Policy() dec.Policy { return e.policy }

// rates holds the per-month factors for one comparison run.
type rates struct {
	fixedMonthly    decimal.Decimal
	variableMonthly decimal.Decimal
	growthFactor    decimal.Decimal
}

// comparisonState is the mutable state of a single run. It never escapes Compare.
type comparisonState struct {
	policy  dec.Policy
	plan    *domain.PaymentPlan
	rent    decimal.Decimal
	rates   rates
	balance decimal.Decimal
	fund    decimal.Decimal
	year    yearAccumulator
	result  *domain.ComparisonResult
}

func newComparisonState(policy dec.Policy, plan *domain.PaymentPlan, terms domain.LoanTerms, rent domain.RentScenario) *comparisonState {
	result := &domain.ComparisonResult{
		Monthly: make([]domain.MonthlyRecord, 0, plan.TermMonths),
		Yearly:  make([]domain.YearlySummary, 0, dateutil.YearCount(plan.TermMonths)),
	}
	return &comparisonState{
		policy: policy,
		plan:   plan,
		rent:   rent.MonthlyRent,
		rates: rates{
			fixedMonthly:    policy.Monthly(terms.FirstPeriodRate),
			variableMonthly: policy.Monthly(terms.SubsequentRate),
			growthFactor:    dec.One.Add(policy.Monthly(rent.AnnualInvestmentReturn)),
		},
		balance: plan.LoanAmount,
		fund:    decimal.Zero,
		year:    newYearAccumulator(policy),
		result:  result,
	}
}

// step simulates month m (1-based) and appends its record.
func (s *comparisonState) step(m int) {
	p := s.policy
	phase := s.plan.PhaseForMonth(m)
	payment := s.plan.PaymentForMonth(m)
	monthlyRate := s.rates.variableMonthly
	if phase == domain.PhaseFixed {
		monthlyRate = s.rates.fixedMonthly
	}

	interest := p.Mul(s.balance, monthlyRate)
	principal := payment.Sub(interest)
	s.balance = s.balance.Sub(principal)

	contribution := payment.Sub(s.rent)
	growth := decimal.Zero
	if m == 1 {
		s.fund = contribution
	} else {
		before := s.fund
		s.fund = p.Mul(s.fund.Add(contribution), s.rates.growthFactor)
		growth = s.fund.Sub(before).Sub(contribution)
	}

	year, monthOfYear := dateutil.MonthPosition(m)
	rentAndSavings := s.rent.Add(principal)
	record := domain.MonthlyRecord{
		Month:                  m,
		Year:                   year,
		MonthOfYear:            monthOfYear,
		Phase:                  phase,
		Payment:                payment,
		Principal:              principal,
		Interest:               interest,
		BalanceChange:          principal.Neg(),
		RemainingBalance:       s.balance,
		Rent:                   s.rent,
		InvestmentContribution: contribution,
		InvestmentGrowth:       growth,
		InvestmentFund:         s.fund,
		RentAndSavings:         rentAndSavings,
		Difference:             payment.Sub(rentAndSavings),
	}
	s.result.Monthly = append(s.result.Monthly, record)

	t := s.result
	t.TotalMortgageCost = t.TotalMortgageCost.Add(payment)
	t.TotalRentCost = t.TotalRentCost.Add(s.rent)
	t.TotalPrincipalPaid = t.TotalPrincipalPaid.Add(principal)
	t.TotalInterestPaid = t.TotalInterestPaid.Add(interest)
	t.TotalRentAndSavings = t.TotalRentAndSavings.Add(rentAndSavings)
	t.TotalInvestmentContribution = t.TotalInvestmentContribution.Add(contribution)

	s.year.add(record)
	if dateutil.IsYearEnd(m, s.plan.TermMonths) {
		s.result.Yearly = append(s.result.Yearly, s.year.flush(year))
	}
}

// finish derives the post-loop totals, wealth figures and period breakdowns.
func (s *comparisonState) finish(propertyPrice decimal.Decimal) *domain.ComparisonResult {
	p := s.policy
	r := s.result

	r.FinalInvestmentFund = s.fund
	r.TotalInvestmentGrowth = s.fund.Sub(r.TotalInvestmentContribution)
	r.FinalRemainingBalance = s.balance

	r.WealthIfRenting = r.TotalInvestmentGrowth
	r.WealthIfBuying = propertyPrice.Sub(r.TotalInterestPaid)
	r.NetBenefitBuying = r.WealthIfBuying.Sub(r.WealthIfRenting)
	r.IsBuyingCheaper = r.NetBenefitBuying.IsPositive()
	r.RentSavingsPercent = p.Percent(r.TotalMortgageCost.Sub(r.TotalRentCost), r.TotalMortgageCost)
	r.InterestSharePercent = p.Percent(r.TotalInterestPaid, r.TotalMortgageCost)

	fixed := s.plan.FixedPeriodMonths
	r.FixedPeriod = periodBreakdown(p, domain.PhaseFixed, r.Monthly[:fixed])
	r.VariablePeriod = periodBreakdown(p, domain.PhaseVariable, r.Monthly[fixed:])
	return r
}

// periodBreakdown aggregates a contiguous slice of monthly records.
func periodBreakdown(p dec.Policy, phase domain.Phase, records []domain.MonthlyRecord) domain.PeriodBreakdown {
	b := domain.PeriodBreakdown{Phase: phase, Months: len(records)}
	for _, rec := range records {
		b.MortgageCost = b.MortgageCost.Add(rec.Payment)
		b.RentCost = b.RentCost.Add(rec.Rent)
		b.PrincipalPaid = b.PrincipalPaid.Add(rec.Principal)
		b.InterestPaid = b.InterestPaid.Add(rec.Interest)
	}
	b.CostDifference = b.MortgageCost.Sub(b.RentCost)
	b.RentSavingsPercent = p.Percent(b.CostDifference, b.MortgageCost)
	b.InterestSharePercent = p.Percent(b.InterestPaid, b.MortgageCost)
	return b
}

// Compare simulates the full term month by month and returns the aggregated
// comparison. All inputs are checked before the first month is simulated;
// on error no partial result is returned.
func (e *Engine) Compare(plan *domain.PaymentPlan, terms domain.LoanTerms, rent domain.RentScenario) (*domain.ComparisonResult, error) {
	if plan == nil {
		return nil, domain.NewInputError("plan", "nil", "payment plan is required")
	}
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if err := rent.Validate(); err != nil {
		return nil, err
	}
	if plan.TermMonths != terms.TermMonths() || plan.FixedPeriodMonths != terms.FixedMonths() {
		return nil, domain.NewInputError("plan",
			fmt.Sprintf("%d/%d months", plan.FixedPeriodMonths, plan.TermMonths),
			fmt.Sprintf("does not match loan terms (%d/%d months)", terms.FixedMonths(), terms.TermMonths()))
	}

	e.Logger.Debugf("comparing %d months (%d fixed), rent=%s return=%s",
		plan.TermMonths, plan.FixedPeriodMonths, rent.MonthlyRent.StringFixed(2), rent.AnnualInvestmentReturn.String())

	state := newComparisonState(e.policy, plan, terms, rent)
	for m := 1; m <= plan.TermMonths; m++ {
		state.step(m)
	}
	result := state.finish(terms.PropertyPrice)

	e.Logger.Infof("comparison complete: mortgage=%s rent=%s net_benefit_buying=%s",
		result.TotalMortgageCost.StringFixed(2), result.TotalRentCost.StringFixed(2), result.NetBenefitBuying.StringFixed(2))
	return result, nil
}
