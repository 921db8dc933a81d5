package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"mortgage-engine/internal/api/handler/dto"
	"mortgage-engine/internal/config"
	"mortgage-engine/internal/domain/mortgage"
	"mortgage-engine/internal/pkg/apperrors"
)

type CalculationHandler struct {
	service mortgage.CalculationService
	limits  config.CalculationConfig
	logger  *slog.Logger
}

func NewCalculationHandler(s mortgage.CalculationService, limits config.CalculationConfig, l *slog.Logger) *CalculationHandler {
	return &CalculationHandler{
		service: s,
		limits:  limits,
		logger:  l.With("component", "CalculationHandler"),
	}
}

func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, field := http.StatusInternalServerError, "An unexpected error occurred.", ""
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found."
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrInsufficientScenarios):
		status, message = http.StatusBadRequest, err.Error()
	case errors.As(err, &validationError):
		status, message, field = http.StatusBadRequest, validationError.Message, validationError.Field
	case errors.As(err, &appErr):
		message = appErr.Error()
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

// CreateCalculation computes a full amortization schedule.
//
// @Summary Compute an amortization schedule
// @Description Computes the payment-by-payment amortization schedule for a loan, including rate periods, overpayment plans and both repayment models. Pass query parameter `include=schedule` to embed the full schedule in the response.
// @Tags Calculations
// @Accept json
// @Produce json
// @Param include query string false "Optional parameter to include the full schedule (use 'schedule')"
// @Param request body dto.CalculationRequest true "Loan calculation request payload"
// @Success 200 {object} dto.CalculationResponse "Calculation results"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /calculations [post]
// @Security BearerAuth
func (h *CalculationHandler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	details, err := req.ToDomain()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	results, err := h.service.Calculate(r.Context(), details)
	if err != nil {
		respondError(w, err)
		return
	}

	includeSchedule := r.URL.Query().Get("include") == "schedule"
	respondJSON(w, http.StatusOK, dto.NewCalculationResponse(details, results, includeSchedule))
}

// CompareScenarios compares two or more loan scenarios.
//
// @Summary Compare loan scenarios
// @Description Computes each named scenario and returns pairwise differences, a per-period cost series for the first two scenarios and the break-even point if one exists. Pass query parameter `include=periods` to embed the per-period series.
// @Tags Calculations
// @Accept json
// @Produce json
// @Param include query string false "Optional parameter to include per-period differences (use 'periods')"
// @Param request body dto.CompareRequest true "Scenario comparison request payload"
// @Success 200 {object} dto.ComparisonResponse "Comparison results"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or fewer than two scenarios"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /calculations/compare [post]
// @Security BearerAuth
func (h *CalculationHandler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	var req dto.CompareRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if h.limits.MaxScenarios > 0 && len(req.Scenarios) > h.limits.MaxScenarios {
		respondError(w, fmt.Errorf("%w: at most %d scenarios are supported",
			apperrors.ErrInvalidArgument, h.limits.MaxScenarios))
		return
	}

	scenarios := make([]mortgage.ScenarioInput, 0, len(req.Scenarios))
	for _, s := range req.Scenarios {
		details, err := s.Loan.ToDomain()
		if err != nil {
			respondError(w, fmt.Errorf("%w: scenario %q: %v", apperrors.ErrInvalidArgument, s.Name, err))
			return
		}
		scenarios = append(scenarios, mortgage.ScenarioInput{Name: s.Name, Details: details})
	}

	comparison, err := h.service.CompareScenarios(r.Context(), scenarios)
	if err != nil {
		respondError(w, err)
		return
	}

	includePeriods := r.URL.Query().Get("include") == "periods"
	respondJSON(w, http.StatusOK, dto.NewComparisonResponse(comparison, includePeriods))
}

// AnalyzeOverpaymentImpact sweeps overpayment amounts and maps each to its savings.
//
// @Summary Analyze overpayment impact
// @Description Sweeps a linear range of monthly overpayment amounts up to the requested maximum and returns interest saved and term reduction for each step.
// @Tags Calculations
// @Accept json
// @Produce json
// @Param request body dto.OverpaymentImpactRequest true "Overpayment impact request payload"
// @Success 200 {object} dto.OverpaymentImpactResponse "Sweep results"
// @Failure 400 {object} dto.ErrorResponse "Invalid request payload or validation error"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /calculations/overpayment-impact [post]
// @Security BearerAuth
func (h *CalculationHandler) AnalyzeOverpaymentImpact(w http.ResponseWriter, r *http.Request) {
	var req dto.OverpaymentImpactRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if h.limits.MaxSweepSteps > 0 && req.Steps > h.limits.MaxSweepSteps {
		respondError(w, fmt.Errorf("%w: steps must not exceed %d",
			apperrors.ErrInvalidArgument, h.limits.MaxSweepSteps))
		return
	}

	details, err := req.Loan.ToDomain()
	if err != nil {
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}

	impacts, err := h.service.AnalyzeOverpaymentImpact(r.Context(), details, req.MaxMonthlyAmount, req.Steps)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewOverpaymentImpactResponse(impacts))
}
