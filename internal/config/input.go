package config

import (
	"fmt"
	"os"

	"github.com/realestimate/realestimate/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates configuration bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return domain.NewInputError("scenarios", "[]", "no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if scenario.Name == "" {
			return domain.NewInputError(fmt.Sprintf("scenarios[%d].name", i), "", "scenario name is required")
		}
		if seen[scenario.Name] {
			return domain.NewInputError(fmt.Sprintf("scenarios[%d].name", i), scenario.Name, "duplicate scenario name")
		}
		seen[scenario.Name] = true

		if err := ip.validateScenario(&scenario); err != nil {
			return fmt.Errorf("scenario %d (%s) validation failed: %w", i, scenario.Name, err)
		}
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario) error {
	if err := scenario.Validate(); err != nil {
		return err
	}
	if scenario.StartMonth != "" {
		if _, err := parseStartMonth(scenario.StartMonth); err != nil {
			return err
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	maxRate := decimal.RequireFromString("0.15")

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:       "Apartment 750M, 3y fixed",
				StartMonth: "2025-01",
				Loan: domain.LoanTerms{
					PropertyPrice:       decimal.NewFromInt(750_000_000),
					DownPaymentFraction: decimal.RequireFromString("0.20"),
					FirstPeriodRate:     decimal.RequireFromString("0.0792"),
					SubsequentRate:      decimal.RequireFromString("0.12"),
					TermYears:           5,
					FixedPeriodYears:    3,
				},
				Rent: domain.RentScenario{
					MonthlyRent:            decimal.NewFromInt(5_000_000),
					AnnualInvestmentReturn: decimal.RequireFromString("0.06"),
				},
				SubsequentRateMax: &maxRate,
			},
			{
				Name: "House 1.5B, 20y",
				Loan: domain.LoanTerms{
					PropertyPrice:       decimal.NewFromInt(1_500_000_000),
					DownPaymentFraction: decimal.RequireFromString("0.10"),
					FirstPeriodRate:     decimal.RequireFromString("0.065"),
					SubsequentRate:      decimal.RequireFromString("0.095"),
					TermYears:           20,
					FixedPeriodYears:    5,
				},
				Rent: domain.RentScenario{
					MonthlyRent:            decimal.NewFromInt(7_500_000),
					AnnualInvestmentReturn: decimal.RequireFromString("0.07"),
				},
			},
		},
	}
}
