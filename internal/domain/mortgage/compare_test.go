package mortgage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mortgage-engine/internal/pkg/apperrors"
)

func computedScenario(t *testing.T, name string, details LoanDetails) Scenario {
	t.Helper()
	results, err := GenerateSchedule(details)
	assert.NoError(t, err)
	return Scenario{Name: name, Details: details, Results: results}
}

func TestCompareRejectsInvalidInput(t *testing.T) {
	t.Run("fewer than two scenarios", func(t *testing.T) {
		comparison, err := Compare([]Scenario{computedScenario(t, "only", flatRateLoan(300000, 4.5, 30))})
		assert.Nil(t, comparison)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientScenarios)
	})

	t.Run("no scenarios at all", func(t *testing.T) {
		comparison, err := Compare(nil)
		assert.Nil(t, comparison)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientScenarios)
	})

	t.Run("scenario without results", func(t *testing.T) {
		scenarios := []Scenario{
			computedScenario(t, "a", flatRateLoan(300000, 4.5, 30)),
			{Name: "b", Details: flatRateLoan(300000, 4.5, 30)},
		}
		comparison, err := Compare(scenarios)
		assert.Nil(t, comparison)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}

func TestCompareIdenticalScenarios(t *testing.T) {
	details := flatRateLoan(300000, 4.5, 30)
	comparison, err := Compare([]Scenario{
		computedScenario(t, "a", details),
		computedScenario(t, "b", details),
	})
	assert.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, comparison.Scenarios)
	assert.Len(t, comparison.Differences, 1)

	diff := comparison.Differences[0]
	assert.Equal(t, 0.0, diff.MonthlyPaymentDiff)
	assert.Equal(t, 0.0, diff.TotalInterestDiff)
	assert.Equal(t, 0.0, diff.TotalCostDiff)
	assert.Equal(t, 0.0, diff.TermDiffYears)

	assert.Equal(t, 0, comparison.BreakEvenPeriod)
	assert.Len(t, comparison.PeriodDiffs, 360)
	for _, pd := range comparison.PeriodDiffs {
		assert.Equal(t, 0.0, pd.PaymentDiff)
		assert.Equal(t, 0.0, pd.CumulativeCostDiff)
	}
}

func TestCompareRateScenarios(t *testing.T) {
	comparison, err := Compare([]Scenario{
		computedScenario(t, "5.0%", flatRateLoan(300000, 5.0, 30)),
		computedScenario(t, "3.5%", flatRateLoan(300000, 3.5, 30)),
	})
	assert.NoError(t, err)

	diff := comparison.Differences[0]
	assert.Equal(t, "5.0%", diff.Left)
	assert.Equal(t, "3.5%", diff.Right)
	assert.Equal(t, 263.33, diff.MonthlyPaymentDiff)
	assert.Equal(t, 94800.18, diff.TotalInterestDiff)
	assert.Equal(t, 94800.18, diff.TotalCostDiff)
	assert.Equal(t, 0.0, diff.TermDiffYears)

	// Cost ordering never reverses, so there is no break-even point.
	assert.Equal(t, 0, comparison.BreakEvenPeriod)
	assert.Equal(t, 263.33, comparison.PeriodDiffs[0].PaymentDiff)
	assert.Equal(t, 263.33, comparison.PeriodDiffs[0].CumulativeCostDiff)
}

func TestCompareBreakEvenDetection(t *testing.T) {
	// Teaser structure: expensive at first, cheap later. The cumulative cost
	// difference starts positive and eventually crosses zero.
	teaser := LoanDetails{
		Principal: 300000,
		RatePeriods: []RatePeriod{
			{StartMonth: 1, AnnualRate: 6.0},
			{StartMonth: 61, AnnualRate: 2.0},
		},
		TermYears: 30,
	}
	flat := flatRateLoan(300000, 4.0, 30)

	comparison, err := Compare([]Scenario{
		computedScenario(t, "teaser", teaser),
		computedScenario(t, "flat", flat),
	})
	assert.NoError(t, err)

	assert.Equal(t, 149, comparison.BreakEvenPeriod)
	assert.Equal(t, -52715.13, comparison.Differences[0].TotalInterestDiff)

	first := comparison.PeriodDiffs[0]
	assert.Equal(t, roundTo(1798.65-1432.25, 2), first.PaymentDiff)
	assert.Greater(t, first.CumulativeCostDiff, 0.0)

	atBreakEven := comparison.PeriodDiffs[comparison.BreakEvenPeriod-1]
	assert.Less(t, atBreakEven.CumulativeCostDiff, 0.0)
	before := comparison.PeriodDiffs[comparison.BreakEvenPeriod-2]
	assert.Greater(t, before.CumulativeCostDiff, 0.0)
}

func TestComparePairwiseCombinations(t *testing.T) {
	comparison, err := Compare([]Scenario{
		computedScenario(t, "a", flatRateLoan(300000, 3.5, 30)),
		computedScenario(t, "b", flatRateLoan(300000, 4.5, 30)),
		computedScenario(t, "c", flatRateLoan(300000, 5.5, 30)),
	})
	assert.NoError(t, err)

	assert.Len(t, comparison.Differences, 3)
	pairs := make(map[string]string)
	for _, d := range comparison.Differences {
		pairs[d.Left+"/"+d.Right] = d.Left
	}
	assert.Contains(t, pairs, "a/b")
	assert.Contains(t, pairs, "a/c")
	assert.Contains(t, pairs, "b/c")
}

func TestCompareTruncatesToShorterSchedule(t *testing.T) {
	overpaid := flatRateLoan(250000, 4.5, 30)
	overpaid.Overpayments = []OverpaymentPlan{{
		Amount:     200,
		StartMonth: 1,
		Frequency:  FrequencyMonthly,
		Effect:     EffectReduceTerm,
	}}

	comparison, err := Compare([]Scenario{
		computedScenario(t, "overpaid", overpaid),
		computedScenario(t, "baseline", flatRateLoan(250000, 4.5, 30)),
	})
	assert.NoError(t, err)

	assert.Len(t, comparison.PeriodDiffs, 273)
	assert.InDelta(t, -87.0/12.0, comparison.Differences[0].TermDiffYears, 1e-9)
}
