package mortgage

import (
	"fmt"

	"mortgage-engine/internal/pkg/apperrors"
)

// Scenario pairs a named loan configuration with its computed results.
type Scenario struct {
	Name    string
	Details LoanDetails
	Results *CalculationResults
}

// PeriodDiff is the per-period difference between the two leading scenarios,
// aligned by payment index.
type PeriodDiff struct {
	Period             int
	PaymentDiff        Money
	CumulativeCostDiff Money
}

// ScenarioDifference holds aggregate differences between one pair of
// scenarios, computed on final results.
type ScenarioDifference struct {
	Left               string
	Right              string
	MonthlyPaymentDiff Money
	TotalInterestDiff  Money
	TotalCostDiff      Money
	TermDiffYears      float64
}

// ScenarioComparison is the outcome of comparing two or more scenarios.
// BreakEvenPeriod is the 1-based payment index at which the cumulative cost
// difference of the first two scenarios changes sign; 0 means no break-even
// occurred within the shorter schedule.
type ScenarioComparison struct {
	Scenarios       []string
	Differences     []ScenarioDifference
	PeriodDiffs     []PeriodDiff
	BreakEvenPeriod int
}

// Compare computes pairwise aggregate differences for every scenario pair and
// a per-period series with break-even detection for the first two. Fewer than
// two scenarios is a usage error.
func Compare(scenarios []Scenario) (*ScenarioComparison, error) {
	if len(scenarios) < 2 {
		return nil, fmt.Errorf("%w: got %d", apperrors.ErrInsufficientScenarios, len(scenarios))
	}
	for i, s := range scenarios {
		if s.Results == nil {
			return nil, fmt.Errorf("%w: scenario %d (%s) has no results",
				apperrors.ErrInvalidArgument, i+1, s.Name)
		}
	}

	comparison := &ScenarioComparison{
		Scenarios: make([]string, len(scenarios)),
	}
	for i, s := range scenarios {
		comparison.Scenarios[i] = s.Name
	}

	for i := 0; i < len(scenarios); i++ {
		for j := i + 1; j < len(scenarios); j++ {
			a, b := scenarios[i], scenarios[j]
			comparison.Differences = append(comparison.Differences, ScenarioDifference{
				Left:               a.Name,
				Right:              b.Name,
				MonthlyPaymentDiff: roundTo(a.Results.MonthlyPayment-b.Results.MonthlyPayment, 2),
				TotalInterestDiff:  roundTo(a.Results.TotalInterest-b.Results.TotalInterest, 2),
				TotalCostDiff:      roundTo(a.Results.TotalPayment-b.Results.TotalPayment, 2),
				TermDiffYears:      float64(a.Results.ActualTermMonths-b.Results.ActualTermMonths) / 12.0,
			})
		}
	}

	comparison.PeriodDiffs, comparison.BreakEvenPeriod = diffSeries(scenarios[0].Results, scenarios[1].Results)

	return comparison, nil
}

// diffSeries subtracts scenario B from scenario A period by period, up to the
// shorter schedule. The break-even point is the first period where the
// cumulative cost difference flips between consecutive non-zero signs.
func diffSeries(a, b *CalculationResults) ([]PeriodDiff, int) {
	length := len(a.Schedule)
	if len(b.Schedule) < length {
		length = len(b.Schedule)
	}

	diffs := make([]PeriodDiff, 0, length)
	breakEven := 0
	prevSign := 0
	for i := 0; i < length; i++ {
		ra, rb := a.Schedule[i], b.Schedule[i]
		cumulative := roundTo(ra.TotalPayment-rb.TotalPayment, 2)
		diffs = append(diffs, PeriodDiff{
			Period:             i + 1,
			PaymentDiff:        roundTo(ra.Payment-rb.Payment, 2),
			CumulativeCostDiff: cumulative,
		})

		sign := 0
		if cumulative > 0 {
			sign = 1
		} else if cumulative < 0 {
			sign = -1
		}
		if breakEven == 0 && sign != 0 && prevSign != 0 && sign != prevSign {
			breakEven = i + 1
		}
		if sign != 0 {
			prevSign = sign
		}
	}

	return diffs, breakEven
}
