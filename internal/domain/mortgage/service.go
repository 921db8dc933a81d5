package mortgage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"mortgage-engine/internal/infrastructure/monitoring"
	"mortgage-engine/internal/pkg/apperrors"
)

// ScenarioInput names a loan configuration for comparison; results are
// computed by the service.
type ScenarioInput struct {
	Name    string
	Details LoanDetails
}

type CalculationService interface {
	Calculate(ctx context.Context, details LoanDetails) (*CalculationResults, error)

	CompareScenarios(ctx context.Context, scenarios []ScenarioInput) (*ScenarioComparison, error)

	AnalyzeOverpaymentImpact(ctx context.Context, details LoanDetails, maxMonthlyAmount Money, steps int) ([]OverpaymentImpact, error)
}

type calculationServiceImpl struct {
	logger *slog.Logger
}

func NewCalculationService(logger *slog.Logger) CalculationService {
	return &calculationServiceImpl{logger: logger.With("component", "CalculationService")}
}

func (s *calculationServiceImpl) Calculate(ctx context.Context, details LoanDetails) (*CalculationResults, error) {
	s.logger.Info("Generating amortization schedule",
		"principal", details.Principal, "termYears", details.TermYears, "model", details.Model)
	start := time.Now()

	results, err := GenerateSchedule(details)
	if err != nil {
		if errors.Is(err, apperrors.ErrNonConvergence) {
			// Non-fatal: the truncated schedule is still usable.
			s.logger.Warn("Schedule truncated at iteration cap", "error", err,
				"periods", results.ActualTermMonths)
			monitoring.RecordCalculation("calculate", "truncated", time.Since(start))
			return results, nil
		}
		s.logger.Error("Schedule generation failed", "error", err)
		monitoring.RecordCalculation("calculate", "failure", time.Since(start))
		return nil, err
	}

	monitoring.RecordCalculation("calculate", "success", time.Since(start))
	monitoring.RecordScheduleLength(results.ActualTermMonths)
	s.logger.Info("Schedule generated",
		"periods", results.ActualTermMonths, "totalInterest", results.TotalInterest)
	return results, nil
}

func (s *calculationServiceImpl) CompareScenarios(ctx context.Context, scenarios []ScenarioInput) (*ScenarioComparison, error) {
	s.logger.Info("Comparing scenarios", "count", len(scenarios))
	start := time.Now()

	if len(scenarios) < 2 {
		monitoring.RecordCalculation("compare", "failure", time.Since(start))
		return nil, fmt.Errorf("%w: got %d", apperrors.ErrInsufficientScenarios, len(scenarios))
	}

	computed := make([]Scenario, 0, len(scenarios))
	for _, input := range scenarios {
		results, err := s.Calculate(ctx, input.Details)
		if err != nil {
			s.logger.Error("Failed to compute scenario", "scenario", input.Name, "error", err)
			monitoring.RecordCalculation("compare", "failure", time.Since(start))
			return nil, fmt.Errorf("scenario %q: %w", input.Name, err)
		}
		computed = append(computed, Scenario{Name: input.Name, Details: input.Details, Results: results})
	}

	comparison, err := Compare(computed)
	if err != nil {
		monitoring.RecordCalculation("compare", "failure", time.Since(start))
		return nil, err
	}

	monitoring.RecordCalculation("compare", "success", time.Since(start))
	s.logger.Info("Scenarios compared", "pairs", len(comparison.Differences), "breakEven", comparison.BreakEvenPeriod)
	return comparison, nil
}

func (s *calculationServiceImpl) AnalyzeOverpaymentImpact(ctx context.Context, details LoanDetails, maxMonthlyAmount Money, steps int) ([]OverpaymentImpact, error) {
	s.logger.Info("Analyzing overpayment impact", "maxMonthlyAmount", maxMonthlyAmount, "steps", steps)
	start := time.Now()

	impacts, err := AnalyzeOverpaymentImpact(details, maxMonthlyAmount, steps)
	if err != nil {
		s.logger.Error("Overpayment analysis failed", "error", err)
		monitoring.RecordCalculation("overpayment_impact", "failure", time.Since(start))
		return nil, err
	}

	monitoring.RecordCalculation("overpayment_impact", "success", time.Since(start))
	s.logger.Info("Overpayment impact analyzed", "steps", len(impacts))
	return impacts, nil
}
