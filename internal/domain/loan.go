package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// MaxTermYears bounds the simulated term (1200 months).
const MaxTermYears = 100

// MaxPropertyPrice bounds the accepted property price.
var MaxPropertyPrice = decimal.New(1, 12)

var minInvestmentReturn = decimal.NewFromInt(-1)

var numberSeparators = strings.NewReplacer(",", "", "_", "", " ", "")

// ParseDecimal parses a user-supplied number, ignoring thousands separators
// (comma, underscore and spaces).
func ParseDecimal(field, value string) (decimal.Decimal, error) {
	cleaned := numberSeparators.Replace(strings.TrimSpace(value))
	if cleaned == "" {
		return decimal.Zero, NewInputError(field, value, "value is required")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, NewInputError(field, value, "not a valid number")
	}
	return d, nil
}

// ParseWholeYears parses a whole number of years.
func ParseWholeYears(field, value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, NewInputError(field, value, "value is required")
	}
	years, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, NewInputError(field, value, "not a whole number of years")
	}
	return years, nil
}

// decodeFields parses the non-blank scalars of a file section. Absent fields
// keep their zero value and are reported by Validate.
type decodeFields struct {
	err error
}

func (d *decodeFields) number(field, value string, dst *decimal.Decimal) {
	if d.err != nil || strings.TrimSpace(value) == "" {
		return
	}
	*dst, d.err = ParseDecimal(field, value)
}

func (d *decodeFields) years(field, value string, dst *int) {
	if d.err != nil || strings.TrimSpace(value) == "" {
		return
	}
	*dst, d.err = ParseWholeYears(field, value)
}

// LoanTerms describes a mortgage with an initial fixed-rate period followed
// by a variable period at a subsequent rate.
type LoanTerms struct {
	PropertyPrice       decimal.Decimal `yaml:"property_price" json:"property_price"`
	DownPaymentFraction decimal.Decimal `yaml:"down_payment_fraction" json:"down_payment_fraction"`
	FirstPeriodRate     decimal.Decimal `yaml:"first_period_rate" json:"first_period_rate"`
	SubsequentRate      decimal.Decimal `yaml:"subsequent_rate" json:"subsequent_rate"`
	TermYears           int             `yaml:"term_years" json:"term_years"`
	FixedPeriodYears    int             `yaml:"fixed_period_years" json:"fixed_period_years"`
}

// UnmarshalYAML reads numbers as plain scalars or quoted strings with
// thousands separators. Unparsable values are reported as *InputError.
func (lt *LoanTerms) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		PropertyPrice       string `yaml:"property_price"`
		DownPaymentFraction string `yaml:"down_payment_fraction"`
		FirstPeriodRate     string `yaml:"first_period_rate"`
		SubsequentRate      string `yaml:"subsequent_rate"`
		TermYears           string `yaml:"term_years"`
		FixedPeriodYears    string `yaml:"fixed_period_years"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	var parsed LoanTerms
	var d decodeFields
	d.number("property_price", raw.PropertyPrice, &parsed.PropertyPrice)
	d.number("down_payment_fraction", raw.DownPaymentFraction, &parsed.DownPaymentFraction)
	d.number("first_period_rate", raw.FirstPeriodRate, &parsed.FirstPeriodRate)
	d.number("subsequent_rate", raw.SubsequentRate, &parsed.SubsequentRate)
	d.years("term_years", raw.TermYears, &parsed.TermYears)
	d.years("fixed_period_years", raw.FixedPeriodYears, &parsed.FixedPeriodYears)
	if d.err != nil {
		return d.err
	}
	*lt = parsed
	return nil
}

// Validate checks the terms and returns the first violation as an *InputError.
func (lt LoanTerms) Validate() error {
	if !lt.PropertyPrice.IsPositive() {
		return NewInputError("property_price", lt.PropertyPrice, "must be positive")
	}
	if lt.PropertyPrice.GreaterThan(MaxPropertyPrice) {
		return NewInputError("property_price", lt.PropertyPrice, "exceeds maximum of "+MaxPropertyPrice.String())
	}
	if lt.DownPaymentFraction.IsNegative() || lt.DownPaymentFraction.GreaterThan(decimal.NewFromInt(1)) {
		return NewInputError("down_payment_fraction", lt.DownPaymentFraction, "must be between 0 and 1")
	}
	if lt.FirstPeriodRate.IsNegative() {
		return NewInputError("first_period_rate", lt.FirstPeriodRate, "cannot be negative")
	}
	if lt.SubsequentRate.IsNegative() {
		return NewInputError("subsequent_rate", lt.SubsequentRate, "cannot be negative")
	}
	if lt.TermYears <= 0 {
		return NewInputError("term_years", lt.TermYears, "must be positive")
	}
	if lt.TermYears > MaxTermYears {
		return NewInputError("term_years", lt.TermYears, "cannot exceed 100 years")
	}
	if lt.FixedPeriodYears < 0 {
		return NewInputError("fixed_period_years", lt.FixedPeriodYears, "cannot be negative")
	}
	if lt.FixedPeriodYears > lt.TermYears {
		return NewInputError("fixed_period_years", lt.FixedPeriodYears, "cannot exceed term_years")
	}
	return nil
}

// TermMonths returns the full term in months.
func (lt LoanTerms) TermMonths() int { return lt.TermYears * 12 }

// FixedMonths returns the fixed-rate period in months.
func (lt LoanTerms) FixedMonths() int { return lt.FixedPeriodYears * 12 }

// HasVariablePeriod reports whether a second rate phase follows the fixed period.
func (lt LoanTerms) HasVariablePeriod() bool { return lt.FixedPeriodYears < lt.TermYears }

// DownPayment returns the cash paid up front.
func (lt LoanTerms) DownPayment() decimal.Decimal {
	return lt.PropertyPrice.Mul(lt.DownPaymentFraction)
}

// WithSubsequentRate returns a copy of the terms using a different subsequent rate.
func (lt LoanTerms) WithSubsequentRate(rate decimal.Decimal) LoanTerms {
	lt.SubsequentRate = rate
	return lt
}

// RentScenario describes the renting alternative.
type RentScenario struct {
	MonthlyRent            decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	AnnualInvestmentReturn decimal.Decimal `yaml:"annual_investment_return" json:"annual_investment_return"`
}

// UnmarshalYAML reads numbers the same way as LoanTerms.
func (rs *RentScenario) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		MonthlyRent            string `yaml:"monthly_rent"`
		AnnualInvestmentReturn string `yaml:"annual_investment_return"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	var parsed RentScenario
	var d decodeFields
	d.number("monthly_rent", raw.MonthlyRent, &parsed.MonthlyRent)
	d.number("annual_investment_return", raw.AnnualInvestmentReturn, &parsed.AnnualInvestmentReturn)
	if d.err != nil {
		return d.err
	}
	*rs = parsed
	return nil
}

// Validate checks the rent scenario and returns the first violation as an *InputError.
func (rs RentScenario) Validate() error {
	if !rs.MonthlyRent.IsPositive() {
		return NewInputError("monthly_rent", rs.MonthlyRent, "must be positive")
	}
	if rs.AnnualInvestmentReturn.LessThan(minInvestmentReturn) {
		return NewInputError("annual_investment_return", rs.AnnualInvestmentReturn, "cannot be less than -100%")
	}
	return nil
}
