package domain

import (
	"github.com/shopspring/decimal"
)

// Phase identifies which rate regime governs a month.
type Phase string

const (
	PhaseFixed    Phase = "fixed"
	PhaseVariable Phase = "variable"
	PhaseTerminal Phase = "terminal"
)

// MonthlyRecord captures one simulated month of the buy-vs-rent comparison
type MonthlyRecord struct {
	Month       int   `json:"month" yaml:"month"`
	Year        int   `json:"year" yaml:"year"`
	MonthOfYear int   `json:"month_of_year" yaml:"month_of_year"`
	Phase       Phase `json:"phase" yaml:"phase"`

	// Mortgage side
	Payment          decimal.Decimal `json:"payment" yaml:"payment"`
	Principal        decimal.Decimal `json:"principal" yaml:"principal"`
	Interest         decimal.Decimal `json:"interest" yaml:"interest"`
	BalanceChange    decimal.Decimal `json:"balance_change" yaml:"balance_change"`
	RemainingBalance decimal.Decimal `json:"remaining_balance" yaml:"remaining_balance"`

	// Renting side
	Rent                   decimal.Decimal `json:"rent" yaml:"rent"`
	InvestmentContribution decimal.Decimal `json:"investment_contribution" yaml:"investment_contribution"`
	InvestmentGrowth       decimal.Decimal `json:"investment_growth" yaml:"investment_growth"`
	InvestmentFund         decimal.Decimal `json:"investment_fund" yaml:"investment_fund"`
	RentAndSavings         decimal.Decimal `json:"rent_and_savings" yaml:"rent_and_savings"`
	Difference             decimal.Decimal `json:"difference" yaml:"difference"`
}

// YearlySummary rolls up the months of one loan year. The final year may be partial.
type YearlySummary struct {
	Year                   int             `json:"year" yaml:"year"`
	Months                 int             `json:"months" yaml:"months"`
	AveragePayment         decimal.Decimal `json:"average_payment" yaml:"average_payment"`
	AverageRent            decimal.Decimal `json:"average_rent" yaml:"average_rent"`
	TotalPayments          decimal.Decimal `json:"total_payments" yaml:"total_payments"`
	TotalRent              decimal.Decimal `json:"total_rent" yaml:"total_rent"`
	TotalPrincipal         decimal.Decimal `json:"total_principal" yaml:"total_principal"`
	TotalInterest          decimal.Decimal `json:"total_interest" yaml:"total_interest"`
	InvestmentContribution decimal.Decimal `json:"investment_contribution" yaml:"investment_contribution"`
	InvestmentGrowth       decimal.Decimal `json:"investment_growth" yaml:"investment_growth"`
	EndingBalance          decimal.Decimal `json:"ending_balance" yaml:"ending_balance"`
	EndingInvestmentFund   decimal.Decimal `json:"ending_investment_fund" yaml:"ending_investment_fund"`
}

// PeriodBreakdown aggregates the months of a single rate phase.
type PeriodBreakdown struct {
	Phase                Phase           `json:"phase" yaml:"phase"`
	Months               int             `json:"months" yaml:"months"`
	MortgageCost         decimal.Decimal `json:"mortgage_cost" yaml:"mortgage_cost"`
	RentCost             decimal.Decimal `json:"rent_cost" yaml:"rent_cost"`
	PrincipalPaid        decimal.Decimal `json:"principal_paid" yaml:"principal_paid"`
	InterestPaid         decimal.Decimal `json:"interest_paid" yaml:"interest_paid"`
	CostDifference       decimal.Decimal `json:"cost_difference" yaml:"cost_difference"`
	RentSavingsPercent   decimal.Decimal `json:"rent_savings_percent" yaml:"rent_savings_percent"`
	InterestSharePercent decimal.Decimal `json:"interest_share_percent" yaml:"interest_share_percent"`
}

// ComparisonResult is the full output of one engine run. Percentages are
// unclamped; see Summary for the display view.
type ComparisonResult struct {
	TotalMortgageCost           decimal.Decimal `json:"total_mortgage_cost" yaml:"total_mortgage_cost"`
	TotalRentCost               decimal.Decimal `json:"total_rent_cost" yaml:"total_rent_cost"`
	TotalPrincipalPaid          decimal.Decimal `json:"total_principal_paid" yaml:"total_principal_paid"`
	TotalInterestPaid           decimal.Decimal `json:"total_interest_paid" yaml:"total_interest_paid"`
	TotalRentAndSavings         decimal.Decimal `json:"total_rent_and_savings" yaml:"total_rent_and_savings"`
	TotalInvestmentContribution decimal.Decimal `json:"total_investment_contribution" yaml:"total_investment_contribution"`
	FinalInvestmentFund         decimal.Decimal `json:"final_investment_fund" yaml:"final_investment_fund"`
	TotalInvestmentGrowth       decimal.Decimal `json:"total_investment_growth" yaml:"total_investment_growth"`
	FinalRemainingBalance       decimal.Decimal `json:"final_remaining_balance" yaml:"final_remaining_balance"`

	WealthIfBuying       decimal.Decimal `json:"wealth_if_buying" yaml:"wealth_if_buying"`
	WealthIfRenting      decimal.Decimal `json:"wealth_if_renting" yaml:"wealth_if_renting"`
	NetBenefitBuying     decimal.Decimal `json:"net_benefit_buying" yaml:"net_benefit_buying"`
	IsBuyingCheaper      bool            `json:"is_buying_cheaper" yaml:"is_buying_cheaper"`
	RentSavingsPercent   decimal.Decimal `json:"rent_savings_percent" yaml:"rent_savings_percent"`
	InterestSharePercent decimal.Decimal `json:"interest_share_percent" yaml:"interest_share_percent"`

	FixedPeriod    PeriodBreakdown `json:"fixed_period" yaml:"fixed_period"`
	VariablePeriod PeriodBreakdown `json:"variable_period" yaml:"variable_period"`

	Monthly []MonthlyRecord `json:"monthly" yaml:"monthly"`
	Yearly  []YearlySummary `json:"yearly" yaml:"yearly"`
}

// Summary is the presentation-ready verdict derived from a ComparisonResult.
type Summary struct {
	BuyingCheaper                bool            `json:"buying_cheaper" yaml:"buying_cheaper"`
	Verdict                      string          `json:"verdict" yaml:"verdict"`
	Recommendation               string          `json:"recommendation" yaml:"recommendation"`
	NetBenefitBuying             decimal.Decimal `json:"net_benefit_buying" yaml:"net_benefit_buying"`
	RentSavingsPercent           decimal.Decimal `json:"rent_savings_percent" yaml:"rent_savings_percent"`
	FixedPeriodSavingsPercent    decimal.Decimal `json:"fixed_period_savings_percent" yaml:"fixed_period_savings_percent"`
	VariablePeriodSavingsPercent decimal.Decimal `json:"variable_period_savings_percent" yaml:"variable_period_savings_percent"`
	InterestSharePercent         decimal.Decimal `json:"interest_share_percent" yaml:"interest_share_percent"`
}

// RangeOutcome classifies a min/max subsequent-rate comparison.
type RangeOutcome string

const (
	OutcomeBuyingCheaperAll  RangeOutcome = "buying_cheaper_all"
	OutcomeRentingCheaperAll RangeOutcome = "renting_cheaper_all"
	OutcomeDependsOnRates    RangeOutcome = "depends_on_rates"
)

// RangeResult holds the comparison at both ends of a subsequent-rate range.
type RangeResult struct {
	MinRate decimal.Decimal   `json:"min_rate" yaml:"min_rate"`
	MaxRate decimal.Decimal   `json:"max_rate" yaml:"max_rate"`
	MinPlan *PaymentPlan      `json:"min_plan" yaml:"min_plan"`
	MaxPlan *PaymentPlan      `json:"max_plan" yaml:"max_plan"`
	Min     *ComparisonResult `json:"min" yaml:"min"`
	Max     *ComparisonResult `json:"max" yaml:"max"`
	Outcome RangeOutcome      `json:"outcome" yaml:"outcome"`
}

// Description returns a human readable sentence for the outcome.
func (o RangeOutcome) Description() string {
	switch o {
	case OutcomeBuyingCheaperAll:
		return "Buying is cheaper in all rate scenarios"
	case OutcomeRentingCheaperAll:
		return "Renting is cheaper in all rate scenarios"
	default:
		return "The better choice depends on the subsequent interest rate"
	}
}

// BreakEvenRent is the monthly rent at which buying and renting leave equal
// wealth, all other inputs held fixed.
type BreakEvenRent struct {
	MonthlyRent decimal.Decimal `json:"monthly_rent" yaml:"monthly_rent"`
	// BuyingCheaperAbove is false when buying wins only below MonthlyRent,
	// which happens with a negative investment return.
	BuyingCheaperAbove bool `json:"buying_cheaper_above" yaml:"buying_cheaper_above"`
}
