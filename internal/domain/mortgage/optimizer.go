package mortgage

import (
	"errors"

	"mortgage-engine/internal/pkg/apperrors"
)

// DefaultSweepMaxAmount substitutes a meaningful sweep ceiling when the
// caller passes a non-positive maximum overpayment.
const DefaultSweepMaxAmount = 100.0

// OverpaymentImpact maps one swept overpayment amount to its savings against
// the no-overpayment baseline.
type OverpaymentImpact struct {
	Amount              Money
	InterestSaved       Money
	TermReductionMonths int
}

// AnalyzeOverpaymentImpact sweeps a linear range of monthly overpayment
// amounts up to maxMonthlyAmount and recomputes the full schedule for each,
// returning exactly `steps` results. The synthesized plans are monthly
// recurring with the reduce-term effect. The call performs steps+1 schedule
// generations and caches nothing.
func AnalyzeOverpaymentImpact(details LoanDetails, maxMonthlyAmount Money, steps int) ([]OverpaymentImpact, error) {
	if steps < 1 {
		return nil, apperrors.NewValidationError("steps", "must be at least 1")
	}
	if maxMonthlyAmount <= 0 {
		maxMonthlyAmount = DefaultSweepMaxAmount
	}

	baselineDetails := details
	baselineDetails.Overpayments = nil
	baseline, err := GenerateSchedule(baselineDetails)
	if err != nil && !errors.Is(err, apperrors.ErrNonConvergence) {
		return nil, err
	}

	impacts := make([]OverpaymentImpact, 0, steps)
	for i := 1; i <= steps; i++ {
		amount := roundTo(maxMonthlyAmount/float64(steps)*float64(i), 2)

		scenarioDetails := details
		scenarioDetails.Overpayments = []OverpaymentPlan{{
			Amount:     amount,
			StartMonth: 1,
			Frequency:  FrequencyMonthly,
			Effect:     EffectReduceTerm,
		}}

		scenario, err := GenerateSchedule(scenarioDetails)
		if err != nil && !errors.Is(err, apperrors.ErrNonConvergence) {
			return nil, err
		}

		impacts = append(impacts, OverpaymentImpact{
			Amount:              amount,
			InterestSaved:       roundTo(baseline.TotalInterest-scenario.TotalInterest, 2),
			TermReductionMonths: baseline.ActualTermMonths - scenario.ActualTermMonths,
		})
	}

	return impacts, nil
}
