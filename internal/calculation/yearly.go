package calculation

import (
	"github.com/realestimate/realestimate/internal/domain"
	dec "github.com/realestimate/realestimate/pkg/decimal"
	"github.com/shopspring/decimal"
)

// yearAccumulator collects monthly records until a year boundary.
type yearAccumulator struct {
	policy  dec.Policy
	summary domain.YearlySummary
}

func newYearAccumulator(policy dec.Policy) yearAccumulator {
	return yearAccumulator{policy: policy}
}

func (ya *yearAccumulator) add(rec domain.MonthlyRecord) {
	s := &ya.summary
	s.Months++
	s.TotalPayments = s.TotalPayments.Add(rec.Payment)
	s.TotalRent = s.TotalRent.Add(rec.Rent)
	s.TotalPrincipal = s.TotalPrincipal.Add(rec.Principal)
	s.TotalInterest = s.TotalInterest.Add(rec.Interest)
	s.InvestmentContribution = s.InvestmentContribution.Add(rec.InvestmentContribution)
	s.InvestmentGrowth = s.InvestmentGrowth.Add(rec.InvestmentGrowth)
	s.EndingBalance = rec.RemainingBalance
	s.EndingInvestmentFund = rec.InvestmentFund
}

// flush returns the summary for year and resets the accumulator.
func (ya *yearAccumulator) flush(year int) domain.YearlySummary {
	s := ya.summary
	s.Year = year
	if s.Months > 0 {
		months := decimal.NewFromInt(int64(s.Months))
		s.AveragePayment = ya.policy.Div(s.TotalPayments, months)
		s.AverageRent = ya.policy.Div(s.TotalRent, months)
	}
	ya.summary = domain.YearlySummary{}
	return s
}
