package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"mortgage-engine/internal/domain/mortgage"
)

const dateLayout = "2006-01-02"

type RatePeriodRequest struct {
	StartMonth int     `json:"startMonth"`
	AnnualRate float64 `json:"annualRate"`
}

type OverpaymentPlanRequest struct {
	Amount     float64 `json:"amount"`
	StartMonth int     `json:"startMonth"`
	EndMonth   int     `json:"endMonth,omitempty"`
	Recurring  bool    `json:"isRecurring,omitempty"`
	Frequency  string  `json:"frequency,omitempty"`
	Effect     string  `json:"effect,omitempty"`
}

// CalculationRequest accepts either a single interestRate or a ratePeriods
// list, and either structured overpaymentPlans or the legacy flat
// overpayment* fields. Both variants collapse into mortgage.LoanDetails here,
// once, at the boundary.
type CalculationRequest struct {
	Principal        float64                  `json:"principal"`
	InterestRate     float64                  `json:"interestRate,omitempty"`
	RatePeriods      []RatePeriodRequest      `json:"ratePeriods,omitempty"`
	TermYears        int                      `json:"termYears"`
	StartDate        string                   `json:"startDate,omitempty"`
	RepaymentModel   string                   `json:"repaymentModel,omitempty"`
	Currency         string                   `json:"currency,omitempty"`
	OverpaymentPlans []OverpaymentPlanRequest `json:"overpaymentPlans,omitempty"`

	// Legacy flat overpayment arguments.
	OverpaymentAmount     float64 `json:"overpaymentAmount,omitempty"`
	OverpaymentStartMonth int     `json:"overpaymentStartMonth,omitempty"`
	OverpaymentRecurring  bool    `json:"overpaymentRecurring,omitempty"`
}

func (r *CalculationRequest) Validate() error {
	if r.Principal <= 0 {
		return fmt.Errorf("principal must be greater than zero")
	}
	if r.TermYears <= 0 {
		return fmt.Errorf("termYears must be positive")
	}
	if len(r.RatePeriods) == 0 && r.InterestRate < 0 {
		return fmt.Errorf("interestRate must not be negative")
	}
	if len(r.OverpaymentPlans) > 0 && r.OverpaymentAmount != 0 {
		return fmt.Errorf("overpaymentPlans and legacy overpaymentAmount are mutually exclusive")
	}
	if r.StartDate != "" {
		if _, err := time.Parse(dateLayout, r.StartDate); err != nil {
			return fmt.Errorf("invalid startDate format (use YYYY-MM-DD): %w", err)
		}
	}
	return nil
}

// ToDomain resolves the request into a LoanDetails value. Deep validation of
// the resolved details happens in the domain.
func (r *CalculationRequest) ToDomain() (mortgage.LoanDetails, error) {
	if err := r.Validate(); err != nil {
		return mortgage.LoanDetails{}, err
	}

	details := mortgage.LoanDetails{
		Principal: r.Principal,
		TermYears: r.TermYears,
		Currency:  strings.ToUpper(r.Currency),
	}

	if len(r.RatePeriods) > 0 {
		details.RatePeriods = make([]mortgage.RatePeriod, len(r.RatePeriods))
		for i, rp := range r.RatePeriods {
			details.RatePeriods[i] = mortgage.RatePeriod{StartMonth: rp.StartMonth, AnnualRate: rp.AnnualRate}
		}
	} else {
		details.RatePeriods = []mortgage.RatePeriod{{StartMonth: 1, AnnualRate: r.InterestRate}}
	}

	model, err := parseModel(r.RepaymentModel)
	if err != nil {
		return mortgage.LoanDetails{}, err
	}
	details.Model = model

	if r.StartDate != "" {
		startDate, _ := time.Parse(dateLayout, r.StartDate)
		details.StartDate = startDate
	}

	for i, plan := range r.OverpaymentPlans {
		frequency, err := parseFrequency(plan.Frequency, plan.Recurring)
		if err != nil {
			return mortgage.LoanDetails{}, fmt.Errorf("overpaymentPlans[%d]: %w", i, err)
		}
		effect, err := parseEffect(plan.Effect)
		if err != nil {
			return mortgage.LoanDetails{}, fmt.Errorf("overpaymentPlans[%d]: %w", i, err)
		}
		details.Overpayments = append(details.Overpayments, mortgage.OverpaymentPlan{
			Amount:     plan.Amount,
			StartMonth: plan.StartMonth,
			EndMonth:   plan.EndMonth,
			Frequency:  frequency,
			Effect:     effect,
		})
	}

	if r.OverpaymentAmount > 0 {
		startMonth := r.OverpaymentStartMonth
		if startMonth < 1 {
			startMonth = 1
		}
		frequency := mortgage.FrequencyOneTime
		if r.OverpaymentRecurring {
			frequency = mortgage.FrequencyMonthly
		}
		details.Overpayments = append(details.Overpayments, mortgage.OverpaymentPlan{
			Amount:     r.OverpaymentAmount,
			StartMonth: startMonth,
			Frequency:  frequency,
			Effect:     mortgage.EffectReduceTerm,
		})
	}

	return details, nil
}

func parseModel(s string) (mortgage.RepaymentModel, error) {
	switch strings.ToUpper(strings.ReplaceAll(s, "_", "")) {
	case "", "EQUALINSTALLMENTS":
		return mortgage.ModelEqualInstallments, nil
	case "DECREASINGINSTALLMENTS":
		return mortgage.ModelDecreasingInstallments, nil
	}
	return "", fmt.Errorf("unknown repaymentModel %q", s)
}

func parseFrequency(s string, recurring bool) (mortgage.OverpaymentFrequency, error) {
	switch strings.ToUpper(strings.ReplaceAll(s, "-", "_")) {
	case "":
		if recurring {
			return mortgage.FrequencyMonthly, nil
		}
		return mortgage.FrequencyOneTime, nil
	case "ONE_TIME", "ONETIME":
		return mortgage.FrequencyOneTime, nil
	case "MONTHLY":
		return mortgage.FrequencyMonthly, nil
	case "QUARTERLY":
		return mortgage.FrequencyQuarterly, nil
	case "ANNUAL", "YEARLY":
		return mortgage.FrequencyAnnual, nil
	}
	return "", fmt.Errorf("unknown frequency %q", s)
}

func parseEffect(s string) (mortgage.OverpaymentEffect, error) {
	switch strings.ToUpper(strings.ReplaceAll(s, "_", "")) {
	case "", "REDUCETERM":
		return mortgage.EffectReduceTerm, nil
	case "REDUCEPAYMENT":
		return mortgage.EffectReducePayment, nil
	}
	return "", fmt.Errorf("unknown effect %q", s)
}

type PaymentRecordResponse struct {
	Period            int    `json:"period"`
	Payment           string `json:"payment"`
	Principal         string `json:"principal"`
	Interest          string `json:"interest"`
	RemainingBalance  string `json:"remainingBalance"`
	IsOverpayment     bool   `json:"isOverpayment,omitempty"`
	OverpaymentAmount string `json:"overpaymentAmount,omitempty"`
	TotalInterest     string `json:"totalInterest"`
	TotalPayment      string `json:"totalPayment"`
	Date              string `json:"date,omitempty"`
}

type YearlySummaryResponse struct {
	Year          int    `json:"year"`
	Principal     string `json:"principal"`
	Interest      string `json:"interest"`
	Overpayment   string `json:"overpayment,omitempty"`
	TotalPaid     string `json:"totalPaid"`
	EndingBalance string `json:"endingBalance"`
}

type CalculationResponse struct {
	MonthlyPayment     string                  `json:"monthlyPayment"`
	TotalInterest      string                  `json:"totalInterest"`
	TotalPayment       string                  `json:"totalPayment"`
	OriginalTermMonths int                     `json:"originalTermMonths"`
	ActualTermMonths   int                     `json:"actualTermMonths"`
	Truncated          bool                    `json:"truncated,omitempty"`
	Currency           string                  `json:"currency,omitempty"`
	CurrencySymbol     string                  `json:"currencySymbol,omitempty"`
	YearlyBreakdown    []YearlySummaryResponse `json:"yearlyBreakdown,omitempty"`
	Schedule           []PaymentRecordResponse `json:"schedule,omitempty"`
}

type ScenarioRequest struct {
	Name string             `json:"name"`
	Loan CalculationRequest `json:"loan"`
}

type CompareRequest struct {
	Scenarios []ScenarioRequest `json:"scenarios"`
}

func (r *CompareRequest) Validate() error {
	if len(r.Scenarios) < 2 {
		return fmt.Errorf("at least two scenarios are required")
	}
	for i, s := range r.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenarios[%d]: name is required", i)
		}
		if err := s.Loan.Validate(); err != nil {
			return fmt.Errorf("scenarios[%d]: %w", i, err)
		}
	}
	return nil
}

type ScenarioDifferenceResponse struct {
	Left               string `json:"left"`
	Right              string `json:"right"`
	MonthlyPaymentDiff string `json:"monthlyPaymentDiff"`
	TotalInterestDiff  string `json:"totalInterestDiff"`
	TotalCostDiff      string `json:"totalCostDiff"`
	TermDiffYears      string `json:"termDiffYears"`
}

type PeriodDiffResponse struct {
	Period             int    `json:"period"`
	PaymentDiff        string `json:"paymentDiff"`
	CumulativeCostDiff string `json:"cumulativeCostDiff"`
}

type ComparisonResponse struct {
	Scenarios       []string                     `json:"scenarios"`
	Differences     []ScenarioDifferenceResponse `json:"differences"`
	PeriodDiffs     []PeriodDiffResponse         `json:"periodDiffs,omitempty"`
	BreakEvenPeriod int                          `json:"breakEvenPeriod,omitempty"`
}

type OverpaymentImpactRequest struct {
	Loan             CalculationRequest `json:"loan"`
	MaxMonthlyAmount float64            `json:"maxMonthlyAmount"`
	Steps            int                `json:"steps"`
}

func (r *OverpaymentImpactRequest) Validate() error {
	if r.Steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	return r.Loan.Validate()
}

type OverpaymentImpactEntry struct {
	Amount              string `json:"amount"`
	InterestSaved       string `json:"interestSaved"`
	TermReductionMonths int    `json:"termReductionMonths"`
}

type OverpaymentImpactResponse struct {
	Results []OverpaymentImpactEntry `json:"results"`
}

func formatMoney(amount mortgage.Money) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

func NewCalculationResponse(details mortgage.LoanDetails, results *mortgage.CalculationResults, includeSchedule bool) CalculationResponse {
	resp := CalculationResponse{
		MonthlyPayment:     formatMoney(results.MonthlyPayment),
		TotalInterest:      formatMoney(results.TotalInterest),
		TotalPayment:       formatMoney(results.TotalPayment),
		OriginalTermMonths: results.OriginalTermMonths,
		ActualTermMonths:   results.ActualTermMonths,
		Truncated:          results.Truncated,
	}

	if currency, ok := mortgage.Currencies[details.Currency]; ok {
		resp.Currency = currency.Code
		resp.CurrencySymbol = currency.Symbol
	}

	resp.YearlyBreakdown = make([]YearlySummaryResponse, len(results.YearlyBreakdown))
	for i, y := range results.YearlyBreakdown {
		resp.YearlyBreakdown[i] = YearlySummaryResponse{
			Year:          y.Year,
			Principal:     formatMoney(y.Principal),
			Interest:      formatMoney(y.Interest),
			TotalPaid:     formatMoney(y.TotalPaid),
			EndingBalance: formatMoney(y.EndingBalance),
		}
		if y.Overpayment > 0 {
			resp.YearlyBreakdown[i].Overpayment = formatMoney(y.Overpayment)
		}
	}

	if includeSchedule {
		resp.Schedule = make([]PaymentRecordResponse, len(results.Schedule))
		for i := range results.Schedule {
			resp.Schedule[i] = NewPaymentRecordResponse(&results.Schedule[i])
		}
	}

	return resp
}

func NewPaymentRecordResponse(record *mortgage.PaymentRecord) PaymentRecordResponse {
	resp := PaymentRecordResponse{
		Period:           record.Period,
		Payment:          formatMoney(record.Payment),
		Principal:        formatMoney(record.Principal),
		Interest:         formatMoney(record.Interest),
		RemainingBalance: formatMoney(record.RemainingBalance),
		IsOverpayment:    record.IsOverpayment,
		TotalInterest:    formatMoney(record.TotalInterest),
		TotalPayment:     formatMoney(record.TotalPayment),
	}
	if record.IsOverpayment {
		resp.OverpaymentAmount = formatMoney(record.OverpaymentAmount)
	}
	if !record.Date.IsZero() {
		resp.Date = record.Date.Format(dateLayout)
	}
	return resp
}

func NewComparisonResponse(comparison *mortgage.ScenarioComparison, includePeriods bool) ComparisonResponse {
	resp := ComparisonResponse{
		Scenarios:       comparison.Scenarios,
		BreakEvenPeriod: comparison.BreakEvenPeriod,
	}

	resp.Differences = make([]ScenarioDifferenceResponse, len(comparison.Differences))
	for i, d := range comparison.Differences {
		resp.Differences[i] = ScenarioDifferenceResponse{
			Left:               d.Left,
			Right:              d.Right,
			MonthlyPaymentDiff: formatMoney(d.MonthlyPaymentDiff),
			TotalInterestDiff:  formatMoney(d.TotalInterestDiff),
			TotalCostDiff:      formatMoney(d.TotalCostDiff),
			TermDiffYears:      decimal.NewFromFloat(d.TermDiffYears).StringFixed(2),
		}
	}

	if includePeriods {
		resp.PeriodDiffs = make([]PeriodDiffResponse, len(comparison.PeriodDiffs))
		for i, p := range comparison.PeriodDiffs {
			resp.PeriodDiffs[i] = PeriodDiffResponse{
				Period:             p.Period,
				PaymentDiff:        formatMoney(p.PaymentDiff),
				CumulativeCostDiff: formatMoney(p.CumulativeCostDiff),
			}
		}
	}

	return resp
}

func NewOverpaymentImpactResponse(impacts []mortgage.OverpaymentImpact) OverpaymentImpactResponse {
	resp := OverpaymentImpactResponse{
		Results: make([]OverpaymentImpactEntry, len(impacts)),
	}
	for i, impact := range impacts {
		resp.Results[i] = OverpaymentImpactEntry{
			Amount:              formatMoney(impact.Amount),
			InterestSaved:       formatMoney(impact.InterestSaved),
			TermReductionMonths: impact.TermReductionMonths,
		}
	}
	return resp
}

type ErrorDetail struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type TokenRequest struct {
	Username string `json:"username"`
}
