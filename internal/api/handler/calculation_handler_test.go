package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"mortgage-engine/internal/api/handler/dto"
	"mortgage-engine/internal/config"
	"mortgage-engine/internal/domain/mortgage"
	"mortgage-engine/internal/pkg/apperrors"
)

type MockCalculationService struct {
	mock.Mock
}

func (m *MockCalculationService) Calculate(ctx context.Context, details mortgage.LoanDetails) (*mortgage.CalculationResults, error) {
	args := m.Called(ctx, details)
	var results *mortgage.CalculationResults
	if args.Get(0) != nil {
		results = args.Get(0).(*mortgage.CalculationResults)
	}
	return results, args.Error(1)
}

func (m *MockCalculationService) CompareScenarios(ctx context.Context, scenarios []mortgage.ScenarioInput) (*mortgage.ScenarioComparison, error) {
	args := m.Called(ctx, scenarios)
	var comparison *mortgage.ScenarioComparison
	if args.Get(0) != nil {
		comparison = args.Get(0).(*mortgage.ScenarioComparison)
	}
	return comparison, args.Error(1)
}

func (m *MockCalculationService) AnalyzeOverpaymentImpact(ctx context.Context, details mortgage.LoanDetails, maxMonthlyAmount mortgage.Money, steps int) ([]mortgage.OverpaymentImpact, error) {
	args := m.Called(ctx, details, maxMonthlyAmount, steps)
	var impacts []mortgage.OverpaymentImpact
	if args.Get(0) != nil {
		impacts = args.Get(0).([]mortgage.OverpaymentImpact)
	}
	return impacts, args.Error(1)
}

func newTestHandler(svc mortgage.CalculationService) *CalculationHandler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	limits := config.CalculationConfig{MaxSweepSteps: 100, MaxScenarios: 10}
	return NewCalculationHandler(svc, limits, logger)
}

func postJSON(t *testing.T, handlerFunc http.HandlerFunc, target string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handlerFunc(rr, req)
	return rr
}

func sampleResults() *mortgage.CalculationResults {
	return &mortgage.CalculationResults{
		MonthlyPayment:     1520.06,
		TotalInterest:      247218.25,
		TotalPayment:       547218.25,
		OriginalTermMonths: 360,
		ActualTermMonths:   360,
		Schedule: []mortgage.PaymentRecord{{
			Period:           1,
			Payment:          1520.06,
			Principal:        395.06,
			Interest:         1125,
			RemainingBalance: 299604.94,
			TotalInterest:    1125,
			TotalPayment:     1520.06,
		}},
		YearlyBreakdown: []mortgage.YearlySummary{{
			Year:          1,
			Principal:     4839.74,
			Interest:      13400.98,
			TotalPaid:     18240.72,
			EndingBalance: 295160.26,
		}},
	}
}

func sampleRequest() dto.CalculationRequest {
	return dto.CalculationRequest{Principal: 300000, InterestRate: 4.5, TermYears: 30}
}

func TestCreateCalculation(t *testing.T) {
	t.Run("success without schedule", func(t *testing.T) {
		mockService := new(MockCalculationService)
		mockService.On("Calculate", mock.Anything, mock.Anything).Return(sampleResults(), nil).Once()
		h := newTestHandler(mockService)

		rr := postJSON(t, h.CreateCalculation, "/calculations", sampleRequest())

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.CalculationResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "1520.06", resp.MonthlyPayment)
		assert.Equal(t, 360, resp.ActualTermMonths)
		assert.Empty(t, resp.Schedule)
		mockService.AssertExpectations(t)
	})

	t.Run("include=schedule embeds the schedule", func(t *testing.T) {
		mockService := new(MockCalculationService)
		mockService.On("Calculate", mock.Anything, mock.Anything).Return(sampleResults(), nil).Once()
		h := newTestHandler(mockService)

		rr := postJSON(t, h.CreateCalculation, "/calculations?include=schedule", sampleRequest())

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.CalculationResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Schedule, 1)
		assert.Equal(t, "299604.94", resp.Schedule[0].RemainingBalance)
		mockService.AssertExpectations(t)
	})

	t.Run("malformed JSON body", func(t *testing.T) {
		mockService := new(MockCalculationService)
		h := newTestHandler(mockService)

		req := httptest.NewRequest(http.MethodPost, "/calculations", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()
		h.CreateCalculation(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything)
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		mockService := new(MockCalculationService)
		h := newTestHandler(mockService)

		body := []byte(`{"principal":300000,"termYears":30,"interestRate":4.5,"surprise":true}`)
		req := httptest.NewRequest(http.MethodPost, "/calculations", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		h.CreateCalculation(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("request validation failure", func(t *testing.T) {
		mockService := new(MockCalculationService)
		h := newTestHandler(mockService)

		req := sampleRequest()
		req.Principal = 0
		rr := postJSON(t, h.CreateCalculation, "/calculations", req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		var resp dto.ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error.Message, "principal")
		mockService.AssertNotCalled(t, "Calculate", mock.Anything, mock.Anything)
	})

	t.Run("domain validation error maps to 400", func(t *testing.T) {
		mockService := new(MockCalculationService)
		mockService.On("Calculate", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewValidationError("termYears", "must be between 1 and 50")).Once()
		h := newTestHandler(mockService)

		rr := postJSON(t, h.CreateCalculation, "/calculations", sampleRequest())
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("unexpected service error maps to 500", func(t *testing.T) {
		mockService := new(MockCalculationService)
		mockService.On("Calculate", mock.Anything, mock.Anything).
			Return(nil, assert.AnError).Once()
		h := newTestHandler(mockService)

		rr := postJSON(t, h.CreateCalculation, "/calculations", sampleRequest())
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestCompareScenarios(t *testing.T) {
	compareBody := func() dto.CompareRequest {
		return dto.CompareRequest{Scenarios: []dto.ScenarioRequest{
			{Name: "current", Loan: sampleRequest()},
			{Name: "refinanced", Loan: dto.CalculationRequest{Principal: 300000, InterestRate: 3.5, TermYears: 30}},
		}}
	}

	t.Run("success", func(t *testing.T) {
		comparison := &mortgage.ScenarioComparison{
			Scenarios: []string{"current", "refinanced"},
			Differences: []mortgage.ScenarioDifference{{
				Left: "current", Right: "refinanced",
				MonthlyPaymentDiff: 172.93, TotalInterestDiff: 62253.51, TotalCostDiff: 62253.51,
			}},
			PeriodDiffs: []mortgage.PeriodDiff{{Period: 1, PaymentDiff: 172.93, CumulativeCostDiff: 172.93}},
		}
		mockService := new(MockCalculationService)
		mockService.On("CompareScenarios", mock.Anything, mock.MatchedBy(func(inputs []mortgage.ScenarioInput) bool {
			return len(inputs) == 2 && inputs[0].Name == "current" && inputs[1].Name == "refinanced"
		})).Return(comparison, nil).Once()
		h := newTestHandler(mockService)

		rr := postJSON(t, h.CompareScenarios, "/calculations/compare", compareBody())

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.ComparisonResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, []string{"current", "refinanced"}, resp.Scenarios)
		assert.Equal(t, "172.93", resp.Differences[0].MonthlyPaymentDiff)
		assert.Empty(t, resp.PeriodDiffs)
		mockService.AssertExpectations(t)
	})

	t.Run("fewer than two scenarios", func(t *testing.T) {
		mockService := new(MockCalculationService)
		h := newTestHandler(mockService)

		body := dto.CompareRequest{Scenarios: []dto.ScenarioRequest{{Name: "only", Loan: sampleRequest()}}}
		rr := postJSON(t, h.CompareScenarios, "/calculations/compare", body)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CompareScenarios", mock.Anything, mock.Anything)
	})

	t.Run("scenario cap is enforced", func(t *testing.T) {
		mockService := new(MockCalculationService)
		logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
		h := NewCalculationHandler(mockService, config.CalculationConfig{MaxScenarios: 2}, logger)

		body := dto.CompareRequest{Scenarios: []dto.ScenarioRequest{
			{Name: "a", Loan: sampleRequest()},
			{Name: "b", Loan: sampleRequest()},
			{Name: "c", Loan: sampleRequest()},
		}}
		rr := postJSON(t, h.CompareScenarios, "/calculations/compare", body)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CompareScenarios", mock.Anything, mock.Anything)
	})

	t.Run("insufficient scenarios from the service maps to 400", func(t *testing.T) {
		mockService := new(MockCalculationService)
		mockService.On("CompareScenarios", mock.Anything, mock.Anything).
			Return(nil, apperrors.ErrInsufficientScenarios).Once()
		h := newTestHandler(mockService)

		rr := postJSON(t, h.CompareScenarios, "/calculations/compare", compareBody())
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertExpectations(t)
	})
}

func TestAnalyzeOverpaymentImpact(t *testing.T) {
	impactBody := func() dto.OverpaymentImpactRequest {
		return dto.OverpaymentImpactRequest{Loan: sampleRequest(), MaxMonthlyAmount: 200, Steps: 5}
	}

	t.Run("success", func(t *testing.T) {
		impacts := []mortgage.OverpaymentImpact{
			{Amount: 100, InterestSaved: 14777.99, TermReductionMonths: 22},
			{Amount: 200, InterestSaved: 27432.38, TermReductionMonths: 41},
		}
		mockService := new(MockCalculationService)
		mockService.On("AnalyzeOverpaymentImpact", mock.Anything, mock.Anything, 200.0, 5).
			Return(impacts, nil).Once()
		h := newTestHandler(mockService)

		rr := postJSON(t, h.AnalyzeOverpaymentImpact, "/calculations/overpayment-impact", impactBody())

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp dto.OverpaymentImpactResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Results, 2)
		assert.Equal(t, "14777.99", resp.Results[0].InterestSaved)
		mockService.AssertExpectations(t)
	})

	t.Run("steps below one", func(t *testing.T) {
		mockService := new(MockCalculationService)
		h := newTestHandler(mockService)

		body := impactBody()
		body.Steps = 0
		rr := postJSON(t, h.AnalyzeOverpaymentImpact, "/calculations/overpayment-impact", body)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "AnalyzeOverpaymentImpact", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("sweep step cap is enforced", func(t *testing.T) {
		mockService := new(MockCalculationService)
		h := newTestHandler(mockService)

		body := impactBody()
		body.Steps = 101
		rr := postJSON(t, h.AnalyzeOverpaymentImpact, "/calculations/overpayment-impact", body)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "AnalyzeOverpaymentImpact", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
