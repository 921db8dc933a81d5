package mortgage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mortgage-engine/internal/pkg/apperrors"
)

func TestAnalyzeOverpaymentImpact(t *testing.T) {
	details := flatRateLoan(250000, 4.5, 30)

	impacts, err := AnalyzeOverpaymentImpact(details, 200, 5)
	assert.NoError(t, err)
	assert.Len(t, impacts, 5)

	t.Run("amounts sweep a linear range up to the maximum", func(t *testing.T) {
		amounts := make([]Money, 0, len(impacts))
		for _, impact := range impacts {
			amounts = append(amounts, impact.Amount)
		}
		assert.Equal(t, []Money{40, 80, 120, 160, 200}, amounts)
	})

	t.Run("savings against the no-overpayment baseline", func(t *testing.T) {
		expected := []OverpaymentImpact{
			{Amount: 40, InterestSaved: 14777.99, TermReductionMonths: 22},
			{Amount: 80, InterestSaved: 27432.38, TermReductionMonths: 41},
			{Amount: 120, InterestSaved: 38410.81, TermReductionMonths: 58},
			{Amount: 160, InterestSaved: 48039.79, TermReductionMonths: 74},
			{Amount: 200, InterestSaved: 56563.30, TermReductionMonths: 87},
		}
		assert.Equal(t, expected, impacts)
	})

	t.Run("savings grow monotonically with the amount", func(t *testing.T) {
		for i := 1; i < len(impacts); i++ {
			assert.Greater(t, impacts[i].InterestSaved, impacts[i-1].InterestSaved)
			assert.GreaterOrEqual(t, impacts[i].TermReductionMonths, impacts[i-1].TermReductionMonths)
		}
	})
}

func TestAnalyzeOverpaymentImpactDefaults(t *testing.T) {
	t.Run("non-positive maximum falls back to the default sweep ceiling", func(t *testing.T) {
		impacts, err := AnalyzeOverpaymentImpact(flatRateLoan(250000, 4.5, 30), 0, 4)
		assert.NoError(t, err)
		assert.Len(t, impacts, 4)
		assert.Equal(t, DefaultSweepMaxAmount, impacts[len(impacts)-1].Amount)
	})

	t.Run("existing overpayment plans are excluded from the baseline", func(t *testing.T) {
		details := flatRateLoan(250000, 4.5, 30)
		details.Overpayments = []OverpaymentPlan{{
			Amount:     500,
			StartMonth: 1,
			Frequency:  FrequencyMonthly,
			Effect:     EffectReduceTerm,
		}}
		withPlans, err := AnalyzeOverpaymentImpact(details, 200, 5)
		assert.NoError(t, err)

		clean, err := AnalyzeOverpaymentImpact(flatRateLoan(250000, 4.5, 30), 200, 5)
		assert.NoError(t, err)
		assert.Equal(t, clean, withPlans)
	})
}

func TestAnalyzeOverpaymentImpactValidation(t *testing.T) {
	t.Run("steps below one", func(t *testing.T) {
		impacts, err := AnalyzeOverpaymentImpact(flatRateLoan(250000, 4.5, 30), 200, 0)
		assert.Nil(t, impacts)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("invalid loan details propagate", func(t *testing.T) {
		impacts, err := AnalyzeOverpaymentImpact(flatRateLoan(-1, 4.5, 30), 200, 5)
		assert.Nil(t, impacts)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
