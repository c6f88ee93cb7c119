// Package service runs scenario comparisons end to end and caches the results.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"

	"github.com/realestimate/realestimate/internal/cache"
	"github.com/realestimate/realestimate/internal/calculation"
	"github.com/realestimate/realestimate/internal/domain"
)

// ComparisonService validates a scenario, runs the engine and summarizes
// the outcome. Reports are cached by a hash of their inputs.
type ComparisonService struct {
	engine *calculation.Engine
	cache  cache.Cache
	prefix string
	logger *zap.Logger
	now    func() time.Time
}

// NewComparisonService wires a service. A nil cache disables caching and a
// nil logger discards log output.
func NewComparisonService(engine *calculation.Engine, c cache.Cache, prefix string, logger *zap.Logger) *ComparisonService {
	if engine == nil {
		engine = calculation.NewEngine()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComparisonService{
		engine: engine,
		cache:  c,
		prefix: prefix,
		logger: logger,
		now:    time.Now,
	}
}

// CacheKey returns the cache key for a scenario at the given precision.
func CacheKey(prefix string, scale int32, scenario domain.Scenario) string {
	var b strings.Builder
	fields := []string{
		scenario.Name,
		scenario.StartMonth,
		scenario.Loan.PropertyPrice.String(),
		scenario.Loan.DownPaymentFraction.String(),
		scenario.Loan.FirstPeriodRate.String(),
		scenario.Loan.SubsequentRate.String(),
		strconv.Itoa(scenario.Loan.TermYears),
		strconv.Itoa(scenario.Loan.FixedPeriodYears),
		scenario.Rent.MonthlyRent.String(),
		scenario.Rent.AnnualInvestmentReturn.String(),
		strconv.Itoa(int(scale)),
	}
	if scenario.SubsequentRateMax != nil {
		fields = append(fields, scenario.SubsequentRateMax.String())
	}
	for _, f := range fields {
		b.WriteString(f)
		b.WriteByte(0)
	}
	return prefix + strconv.FormatUint(xxhash.Sum64String(b.String()), 16)
}

// Run computes the report for one scenario, consulting the cache first.
// Cache failures are logged and never fail the comparison.
func (s *ComparisonService) Run(ctx context.Context, scenario domain.Scenario) (*domain.ScenarioReport, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}

	key := CacheKey(s.prefix, s.engine.Policy().Scale(), scenario)
	log := s.logger.With(zap.String("op", "compare"), zap.String("scenario", scenario.Name), zap.String("key", key))

	if report, ok := s.lookup(ctx, key, log); ok {
		return report, nil
	}

	report, err := s.compute(scenario)
	if err != nil {
		log.Error("comparison failed", zap.Error(err))
		return nil, err
	}

	s.store(ctx, key, report, log)
	log.Info("comparison complete",
		zap.String("recommendation", report.Summary.Recommendation),
		zap.String("net_benefit_buying", report.Summary.NetBenefitBuying.StringFixed(2)))
	return report, nil
}

// RunAll computes reports for every scenario in the configuration.
func (s *ComparisonService) RunAll(ctx context.Context, config *domain.Configuration) (*domain.ComparisonReport, error) {
	report := &domain.ComparisonReport{
		GeneratedAt: s.now(),
		Scenarios:   make([]domain.ScenarioReport, 0, len(config.Scenarios)),
	}
	for _, scenario := range config.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sr, err := s.Run(ctx, scenario)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		report.Scenarios = append(report.Scenarios, *sr)
	}
	return report, nil
}

// Report wraps already computed scenario reports for the formatters.
func (s *ComparisonService) Report(scenarios ...domain.ScenarioReport) *domain.ComparisonReport {
	return &domain.ComparisonReport{GeneratedAt: s.now(), Scenarios: scenarios}
}

func (s *ComparisonService) compute(scenario domain.Scenario) (*domain.ScenarioReport, error) {
	plan, err := s.engine.BuildPaymentPlan(scenario.Loan)
	if err != nil {
		return nil, fmt.Errorf("failed to build payment plan: %w", err)
	}
	result, err := s.engine.Compare(plan, scenario.Loan, scenario.Rent)
	if err != nil {
		return nil, fmt.Errorf("failed to compare: %w", err)
	}

	report := &domain.ScenarioReport{
		Name:       scenario.Name,
		StartMonth: scenario.StartMonth,
		Terms:      scenario.Loan,
		Rent:       scenario.Rent,
		Plan:       plan,
		Result:     result,
		Summary:    calculation.Summarize(result),
	}
	if scenario.HasRange() {
		rng, err := s.engine.CompareRange(scenario.Loan, *scenario.SubsequentRateMax, scenario.Rent)
		if err != nil {
			return nil, fmt.Errorf("failed to compare rate range: %w", err)
		}
		report.Range = rng
	}
	be, err := s.engine.BreakEvenRent(plan, scenario.Loan, scenario.Rent.AnnualInvestmentReturn)
	if err != nil {
		return nil, fmt.Errorf("failed to find break-even rent: %w", err)
	}
	report.BreakEven = be
	return report, nil
}

func (s *ComparisonService) lookup(ctx context.Context, key string, log *zap.Logger) (*domain.ScenarioReport, bool) {
	if s.cache == nil {
		return nil, false
	}
	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.Warn("cache lookup failed", zap.Error(err))
		return nil, false
	}
	if !ok {
		log.Debug("cache miss")
		return nil, false
	}
	var report domain.ScenarioReport
	if err := json.Unmarshal([]byte(cached), &report); err != nil {
		log.Warn("discarding unreadable cache entry", zap.Error(err))
		return nil, false
	}
	log.Debug("cache hit")
	return &report, true
}

func (s *ComparisonService) store(ctx context.Context, key string, report *domain.ScenarioReport, log *zap.Logger) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(report)
	if err != nil {
		log.Warn("failed to encode report for cache", zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(data)); err != nil {
		log.Warn("cache store failed", zap.Error(err))
	}
}
