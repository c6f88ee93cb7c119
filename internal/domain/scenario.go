package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Scenario is a named buy-vs-rent comparison input.
type Scenario struct {
	Name              string           `yaml:"name" json:"name"`
	StartMonth        string           `yaml:"start_month,omitempty" json:"start_month,omitempty"`
	Loan              LoanTerms        `yaml:"loan" json:"loan"`
	Rent              RentScenario     `yaml:"rent" json:"rent"`
	SubsequentRateMax *decimal.Decimal `yaml:"subsequent_rate_max,omitempty" json:"subsequent_rate_max,omitempty"`
}

// HasRange reports whether the scenario asks for a min/max subsequent-rate comparison.
func (s Scenario) HasRange() bool { return s.SubsequentRateMax != nil }

// Validate checks the loan terms, rent scenario and optional rate range.
func (s Scenario) Validate() error {
	if err := s.Loan.Validate(); err != nil {
		return err
	}
	if err := s.Rent.Validate(); err != nil {
		return err
	}
	if s.SubsequentRateMax != nil && s.SubsequentRateMax.LessThan(s.Loan.SubsequentRate) {
		return NewInputError("subsequent_rate_max", *s.SubsequentRateMax, "cannot be less than subsequent_rate")
	}
	return nil
}

// UnmarshalYAML accepts the max rate as a plain number or a quoted string.
// Unparsable values are reported as *InputError naming the scenario.
func (s *Scenario) UnmarshalYAML(value *yaml.Node) error {
	type rawScenario struct {
		Name              string       `yaml:"name"`
		StartMonth        string       `yaml:"start_month"`
		Loan              LoanTerms    `yaml:"loan"`
		Rent              RentScenario `yaml:"rent"`
		SubsequentRateMax *string      `yaml:"subsequent_rate_max"`
	}
	var raw rawScenario
	if err := value.Decode(&raw); err != nil {
		var inputErr *InputError
		if errors.As(err, &inputErr) {
			return fmt.Errorf("scenario %q: %w", raw.Name, err)
		}
		return err
	}
	s.Name = raw.Name
	s.StartMonth = raw.StartMonth
	s.Loan = raw.Loan
	s.Rent = raw.Rent
	s.SubsequentRateMax = nil
	if raw.SubsequentRateMax != nil && *raw.SubsequentRateMax != "" {
		d, err := ParseDecimal("subsequent_rate_max", *raw.SubsequentRateMax)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", raw.Name, err)
		}
		s.SubsequentRateMax = &d
	}
	return nil
}

// Configuration is the top-level scenario file.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// ScenarioReport bundles everything computed for one scenario.
type ScenarioReport struct {
	Name       string            `json:"name" yaml:"name"`
	StartMonth string            `json:"start_month,omitempty" yaml:"start_month,omitempty"`
	Terms      LoanTerms         `json:"terms" yaml:"terms"`
	Rent       RentScenario      `json:"rent" yaml:"rent"`
	Plan       *PaymentPlan      `json:"plan" yaml:"plan"`
	Result     *ComparisonResult `json:"result" yaml:"result"`
	Summary    Summary           `json:"summary" yaml:"summary"`
	Range      *RangeResult      `json:"range,omitempty" yaml:"range,omitempty"`
	BreakEven  *BreakEvenRent    `json:"break_even,omitempty" yaml:"break_even,omitempty"`
}

// ComparisonReport is the unit consumed by the output formatters.
type ComparisonReport struct {
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Scenarios   []ScenarioReport `json:"scenarios" yaml:"scenarios"`
}
