package mortgage

import (
	"fmt"

	"mortgage-engine/internal/pkg/apperrors"
)

// GenerateSchedule builds the full payment-by-payment amortization schedule
// for the given loan. The returned results are freshly allocated on every
// call; identical inputs always produce identical output.
//
// When the iteration cap is reached before the balance clears, the truncated
// results are returned together with a wrapped apperrors.ErrNonConvergence so
// callers can treat the condition as a non-fatal signal.
func GenerateSchedule(details LoanDetails) (*CalculationResults, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}

	model := details.Model
	if model == "" {
		model = ModelEqualInstallments
	}

	originalTerm := details.TermYears * 12
	cap := originalTerm
	if cap > MaxSchedulePeriods {
		cap = MaxSchedulePeriods
	}

	balance := details.Principal
	// Constant principal portion for the decreasing-installments model.
	fixedPrincipal := roundTo(details.Principal/float64(originalTerm), 2)

	schedule := make([]PaymentRecord, 0, cap)

	// The equal-installments base payment is established at period 1 and
	// recomputed only on rate-period boundaries and after a reduce-payment
	// overpayment. Recomputing it every period would cancel the
	// reduce-term effect entirely.
	activeRate := -1.0
	periodicRate := 0.0
	basePayment := Money(0)

	for n := 1; n <= cap && balance > balanceEpsilon; n++ {
		if annual := details.rateForMonth(n); annual != activeRate {
			activeRate = annual
			periodicRate = PeriodicRate(annual)
			if model == ModelEqualInstallments {
				basePayment = MonthlyPayment(balance, periodicRate, originalTerm-n+1)
			}
		}

		interest := roundTo(balance*periodicRate, 2)

		var principalPart, payment Money
		if model == ModelDecreasingInstallments {
			principalPart = fixedPrincipal
			payment = roundTo(principalPart+interest, 2)
		} else {
			payment = basePayment
			principalPart = roundTo(payment-interest, 2)
		}
		if principalPart < 0 {
			// Payment no longer covers accruing interest; the balance
			// must never grow.
			principalPart = 0
		}

		overpayment, reducePayment := overpaymentAt(details.Overpayments, n)
		if overpayment > 0 {
			principalPart = roundTo(principalPart+overpayment, 2)
			payment = roundTo(payment+overpayment, 2)
		}

		if principalPart >= balance || n == originalTerm {
			principalPart = roundTo(balance, 2)
			payment = roundTo(principalPart+interest, 2)
		}

		balance = roundTo(balance-principalPart, 2)
		if balance <= balanceEpsilon {
			balance = 0
		}

		record := PaymentRecord{
			Period:            n,
			Payment:           payment,
			Principal:         principalPart,
			Interest:          interest,
			RemainingBalance:  balance,
			IsOverpayment:     overpayment > 0,
			OverpaymentAmount: overpayment,
		}
		if !details.StartDate.IsZero() {
			record.Date = details.StartDate.AddDate(0, n, 0)
		}
		schedule = append(schedule, record)

		if overpayment > 0 && reducePayment && balance > 0 && model == ModelEqualInstallments {
			basePayment = MonthlyPayment(balance, periodicRate, originalTerm-n)
		}
	}

	results := &CalculationResults{
		OriginalTermMonths: originalTerm,
		ActualTermMonths:   len(schedule),
		Schedule:           schedule,
	}

	// Post-pass: cumulative running sums in schedule order.
	var cumInterest, cumPayment Money
	for i := range schedule {
		cumInterest = roundTo(cumInterest+schedule[i].Interest, 2)
		cumPayment = roundTo(cumPayment+schedule[i].Payment, 2)
		schedule[i].TotalInterest = cumInterest
		schedule[i].TotalPayment = cumPayment
	}
	results.TotalInterest = cumInterest
	results.TotalPayment = cumPayment

	if len(schedule) > 0 {
		first := schedule[0]
		results.MonthlyPayment = roundTo(first.Payment-first.OverpaymentAmount, 2)
	}
	results.YearlyBreakdown = summarizeByYear(schedule)

	if balance > balanceEpsilon {
		results.Truncated = true
		return results, fmt.Errorf("%w: %.2f remaining after %d periods",
			apperrors.ErrNonConvergence, balance, len(schedule))
	}

	return results, nil
}

// overpaymentAt sums the contributions of every plan active in month n and
// reports whether any of them carries the reduce-payment effect.
func overpaymentAt(plans []OverpaymentPlan, n int) (Money, bool) {
	var amount Money
	reducePayment := false
	for _, plan := range plans {
		if !plan.ActiveAt(n) {
			continue
		}
		amount += plan.Amount
		if plan.Effect == EffectReducePayment {
			reducePayment = true
		}
	}
	return roundTo(amount, 2), reducePayment
}

func summarizeByYear(schedule []PaymentRecord) []YearlySummary {
	if len(schedule) == 0 {
		return nil
	}

	years := (len(schedule) + 11) / 12
	summaries := make([]YearlySummary, 0, years)

	current := YearlySummary{Year: 1}
	for _, record := range schedule {
		year := (record.Period-1)/12 + 1
		if year != current.Year {
			summaries = append(summaries, current)
			current = YearlySummary{Year: year}
		}
		current.Principal = roundTo(current.Principal+record.Principal, 2)
		current.Interest = roundTo(current.Interest+record.Interest, 2)
		current.Overpayment = roundTo(current.Overpayment+record.OverpaymentAmount, 2)
		current.TotalPaid = roundTo(current.TotalPaid+record.Payment, 2)
		current.EndingBalance = record.RemainingBalance
	}
	summaries = append(summaries, current)

	return summaries
}
