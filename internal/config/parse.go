package config

import (
	"strings"
	"time"

	"github.com/realestimate/realestimate/internal/domain"
	"github.com/realestimate/realestimate/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ParseAmount parses a user-supplied number, ignoring thousands separators
// (comma, underscore and spaces).
func ParseAmount(field, value string) (decimal.Decimal, error) {
	return domain.ParseDecimal(field, value)
}

// ParsePercent parses a whole-number percentage ("7.92") into a fraction (0.0792).
func ParsePercent(field, value string) (decimal.Decimal, error) {
	d, err := ParseAmount(field, value)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Shift(-2), nil
}

// ParseOptionalPercent is ParsePercent that returns nil for a blank value.
func ParseOptionalPercent(field, value string) (*decimal.Decimal, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	d, err := ParsePercent(field, value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseYears parses a whole number of years.
func ParseYears(field, value string) (int, error) {
	return domain.ParseWholeYears(field, value)
}

func parseStartMonth(value string) (time.Time, error) {
	t, err := dateutil.ParseMonth(value)
	if err != nil {
		return time.Time{}, domain.NewInputError("start_month", value, err.Error())
	}
	return t, nil
}

// ScenarioInput is the string form of a scenario as typed on the command
// line or posted to the HTTP API. Rates are whole-number percentages.
type ScenarioInput struct {
	Name                     string `json:"name" form:"name"`
	StartMonth               string `json:"start_month" form:"start_month"`
	PropertyPrice            string `json:"property_price" form:"property_price"`
	DownPaymentPercent       string `json:"down_payment_percent" form:"down_payment_percent"`
	FirstPeriodRatePercent   string `json:"first_period_rate_percent" form:"first_period_rate_percent"`
	SubsequentRatePercent    string `json:"subsequent_rate_percent" form:"subsequent_rate_percent"`
	SubsequentRateMaxPercent string `json:"subsequent_rate_max_percent" form:"subsequent_rate_max_percent"`
	TermYears                string `json:"term_years" form:"term_years"`
	FixedPeriodYears         string `json:"fixed_period_years" form:"fixed_period_years"`
	MonthlyRent              string `json:"monthly_rent" form:"monthly_rent"`
	InvestmentReturnPercent  string `json:"investment_return_percent" form:"investment_return_percent"`
}

// DefaultScenarioName is used when a ScenarioInput carries no name.
const DefaultScenarioName = "Quick comparison"

// ToScenario parses every field and validates the resulting scenario.
// The first failure is returned as a *domain.InputError.
func (in ScenarioInput) ToScenario() (domain.Scenario, error) {
	var (
		s   domain.Scenario
		err error
	)
	s.Name = strings.TrimSpace(in.Name)
	if s.Name == "" {
		s.Name = DefaultScenarioName
	}
	if s.StartMonth = strings.TrimSpace(in.StartMonth); s.StartMonth != "" {
		if _, err = parseStartMonth(s.StartMonth); err != nil {
			return s, err
		}
	}
	if s.Loan.PropertyPrice, err = ParseAmount("property_price", in.PropertyPrice); err != nil {
		return s, err
	}
	if s.Loan.DownPaymentFraction, err = ParsePercent("down_payment_percent", in.DownPaymentPercent); err != nil {
		return s, err
	}
	if s.Loan.FirstPeriodRate, err = ParsePercent("first_period_rate_percent", in.FirstPeriodRatePercent); err != nil {
		return s, err
	}
	if s.Loan.SubsequentRate, err = ParsePercent("subsequent_rate_percent", in.SubsequentRatePercent); err != nil {
		return s, err
	}
	if s.SubsequentRateMax, err = ParseOptionalPercent("subsequent_rate_max_percent", in.SubsequentRateMaxPercent); err != nil {
		return s, err
	}
	if s.Loan.TermYears, err = ParseYears("term_years", in.TermYears); err != nil {
		return s, err
	}
	if s.Loan.FixedPeriodYears, err = ParseYears("fixed_period_years", in.FixedPeriodYears); err != nil {
		return s, err
	}
	if s.Rent.MonthlyRent, err = ParseAmount("monthly_rent", in.MonthlyRent); err != nil {
		return s, err
	}
	if s.Rent.AnnualInvestmentReturn, err = ParsePercent("investment_return_percent", in.InvestmentReturnPercent); err != nil {
		return s, err
	}
	return s, s.Validate()
}
