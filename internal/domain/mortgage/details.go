package mortgage

import (
	"fmt"
	"math"
	"time"

	"mortgage-engine/internal/pkg/apperrors"
)

type Money = float64

type RepaymentModel string

const (
	ModelEqualInstallments      RepaymentModel = "EQUAL_INSTALLMENTS"
	ModelDecreasingInstallments RepaymentModel = "DECREASING_INSTALLMENTS"
)

type OverpaymentEffect string

const (
	EffectReduceTerm    OverpaymentEffect = "REDUCE_TERM"
	EffectReducePayment OverpaymentEffect = "REDUCE_PAYMENT"
)

type OverpaymentFrequency string

const (
	FrequencyOneTime   OverpaymentFrequency = "ONE_TIME"
	FrequencyMonthly   OverpaymentFrequency = "MONTHLY"
	FrequencyQuarterly OverpaymentFrequency = "QUARTERLY"
	FrequencyAnnual    OverpaymentFrequency = "ANNUAL"
)

const (
	MinTermYears = 1
	MaxTermYears = 50

	// MaxSchedulePeriods is the hard safety cap on schedule length.
	MaxSchedulePeriods = 600

	// balanceEpsilon is the tolerance within which a remaining balance is
	// snapped to exactly zero.
	balanceEpsilon = 0.01
)

// RatePeriod is a contiguous span of payments sharing one fixed annual rate.
// AnnualRate is a percentage (4.5 means 4.5% p.a.). StartMonth is 1-based.
type RatePeriod struct {
	StartMonth int
	AnnualRate float64
}

// OverpaymentPlan is a rule for extra principal contributions. EndMonth of 0
// means the plan is open-ended. A ONE_TIME frequency fires only at StartMonth.
type OverpaymentPlan struct {
	Amount     Money
	StartMonth int
	EndMonth   int
	Frequency  OverpaymentFrequency
	Effect     OverpaymentEffect
}

// ActiveAt reports whether the plan contributes an extra payment in month n.
func (p OverpaymentPlan) ActiveAt(n int) bool {
	if n < p.StartMonth {
		return false
	}
	if p.EndMonth > 0 && n > p.EndMonth {
		return false
	}
	switch p.Frequency {
	case FrequencyOneTime, "":
		return n == p.StartMonth
	case FrequencyMonthly:
		return true
	case FrequencyQuarterly:
		return (n-p.StartMonth)%3 == 0
	case FrequencyAnnual:
		return (n-p.StartMonth)%12 == 0
	}
	return false
}

type LoanDetails struct {
	Principal    Money
	RatePeriods  []RatePeriod
	TermYears    int
	Overpayments []OverpaymentPlan
	StartDate    time.Time
	Model        RepaymentModel
	Currency     string
}

// Validate checks the details at the input boundary. Malformed rate periods
// are rejected here rather than silently falling back to a 0% rate.
func (d LoanDetails) Validate() error {
	if d.Principal <= 0 {
		return apperrors.NewValidationError("principal", "must be greater than zero")
	}
	if d.TermYears < MinTermYears || d.TermYears > MaxTermYears {
		return apperrors.NewValidationError("termYears",
			fmt.Sprintf("must be between %d and %d", MinTermYears, MaxTermYears))
	}
	if len(d.RatePeriods) == 0 {
		return apperrors.NewValidationError("ratePeriods", "at least one rate period is required")
	}
	if d.RatePeriods[0].StartMonth > 1 {
		return apperrors.NewValidationError("ratePeriods", "first rate period must start at month 1")
	}
	prev := 0
	for i, rp := range d.RatePeriods {
		if rp.StartMonth < 1 {
			return apperrors.NewValidationError("ratePeriods",
				fmt.Sprintf("period %d: startMonth must be at least 1", i+1))
		}
		if i > 0 && rp.StartMonth <= prev {
			return apperrors.NewValidationError("ratePeriods",
				fmt.Sprintf("period %d: startMonth %d is not strictly ascending", i+1, rp.StartMonth))
		}
		if rp.AnnualRate < 0 || rp.AnnualRate > 100 {
			return apperrors.NewValidationError("ratePeriods",
				fmt.Sprintf("period %d: annualRate must be between 0 and 100", i+1))
		}
		prev = rp.StartMonth
	}
	switch d.Model {
	case ModelEqualInstallments, ModelDecreasingInstallments, "":
	default:
		return apperrors.NewValidationError("repaymentModel", fmt.Sprintf("unknown model %q", d.Model))
	}
	for i, plan := range d.Overpayments {
		if plan.Amount <= 0 {
			return apperrors.NewValidationError("overpaymentPlans",
				fmt.Sprintf("plan %d: amount must be greater than zero", i+1))
		}
		if plan.StartMonth < 1 {
			return apperrors.NewValidationError("overpaymentPlans",
				fmt.Sprintf("plan %d: startMonth must be at least 1", i+1))
		}
		if plan.EndMonth != 0 && plan.EndMonth < plan.StartMonth {
			return apperrors.NewValidationError("overpaymentPlans",
				fmt.Sprintf("plan %d: endMonth precedes startMonth", i+1))
		}
		switch plan.Frequency {
		case FrequencyOneTime, FrequencyMonthly, FrequencyQuarterly, FrequencyAnnual, "":
		default:
			return apperrors.NewValidationError("overpaymentPlans",
				fmt.Sprintf("plan %d: unknown frequency %q", i+1, plan.Frequency))
		}
		switch plan.Effect {
		case EffectReduceTerm, EffectReducePayment, "":
		default:
			return apperrors.NewValidationError("overpaymentPlans",
				fmt.Sprintf("plan %d: unknown effect %q", i+1, plan.Effect))
		}
	}
	if d.Currency != "" {
		if _, ok := Currencies[d.Currency]; !ok {
			return apperrors.NewValidationError("currency", fmt.Sprintf("unknown currency %q", d.Currency))
		}
	}
	return nil
}

// rateForMonth resolves the annual rate active at payment n: the latest
// period whose StartMonth <= n. Validate guarantees periods are sorted and
// cover month 1.
func (d LoanDetails) rateForMonth(n int) float64 {
	rate := d.RatePeriods[0].AnnualRate
	for _, rp := range d.RatePeriods {
		if rp.StartMonth > n {
			break
		}
		rate = rp.AnnualRate
	}
	return rate
}

// PaymentRecord is one row of an amortization schedule. Monetary fields are
// rounded to cents at creation. TotalInterest and TotalPayment are running
// sums in schedule order, filled in by a post-pass.
type PaymentRecord struct {
	Period            int
	Payment           Money
	Principal         Money
	Interest          Money
	RemainingBalance  Money
	IsOverpayment     bool
	OverpaymentAmount Money
	TotalInterest     Money
	TotalPayment      Money
	Date              time.Time
}

type YearlySummary struct {
	Year          int
	Principal     Money
	Interest      Money
	Overpayment   Money
	TotalPaid     Money
	EndingBalance Money
}

// CalculationResults is the full outcome of one schedule generation. Every
// call allocates a fresh value; nothing is shared or cached between calls.
type CalculationResults struct {
	// MonthlyPayment is the first-period installment excluding any
	// overpayment contribution.
	MonthlyPayment     Money
	TotalInterest      Money
	TotalPayment       Money
	OriginalTermMonths int
	ActualTermMonths   int
	Schedule           []PaymentRecord
	YearlyBreakdown    []YearlySummary

	// Truncated is true when the iteration cap was reached with balance
	// left over. The schedule is then incomplete by construction.
	Truncated bool
}

// Currency holds display metadata for a supported currency tag. The table is
// a stateless constant lookup; no conversion is performed anywhere.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

var Currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar"},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"GBP": {Code: "GBP", Symbol: "£", Name: "Pound Sterling"},
	"PLN": {Code: "PLN", Symbol: "zł", Name: "Polish Złoty"},
	"CHF": {Code: "CHF", Symbol: "CHF", Name: "Swiss Franc"},
	"SEK": {Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	"NOK": {Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	"CZK": {Code: "CZK", Symbol: "Kč", Name: "Czech Koruna"},
}

func roundTo(n float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(n*pow) / pow
}
