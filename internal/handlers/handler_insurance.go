package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/travel_insurance_app/internal/apperrors"
	"github.com/SscSPs/travel_insurance_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_insurance_app/internal/core/ports/services"
	"github.com/SscSPs/travel_insurance_app/internal/dto"
	"github.com/SscSPs/travel_insurance_app/internal/middleware"
	"github.com/SscSPs/travel_insurance_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// maxBodyBytes bounds the calculation request body.
const maxBodyBytes = 64 << 10

// insuranceHandler handles HTTP requests related to premium calculation.
type insuranceHandler struct {
	validator     portssvc.InsuranceRequestValidatorSvc
	calculator    portssvc.InsuranceCalculatorSvc
	tariffs       portssvc.TariffReaderSvc
	metrics       *metrics.Metrics
	exposeDetails bool
}

// newInsuranceHandler creates a new insuranceHandler.
func newInsuranceHandler(services *portssvc.ServiceContainer, m *metrics.Metrics, exposeDetails bool) *insuranceHandler {
	return &insuranceHandler{
		validator:     services.Validator,
		calculator:    services.Calculator,
		tariffs:       services.Tariffs,
		metrics:       m,
		exposeDetails: exposeDetails,
	}
}

// registerInsuranceRoutes registers routes related to insurance premiums.
// Extra handlers (e.g. rate limiting) run before the calculation.
func registerInsuranceRoutes(rg *gin.RouterGroup, h *insuranceHandler, calculateMiddleware ...gin.HandlerFunc) {
	insurance := rg.Group("/insurance")
	{
		insurance.POST("/calculate", append(calculateMiddleware, h.calculate)...)
		insurance.GET("/tariffs", h.getTariffs)
	}
}

// calculate godoc
// @Summary Calculate a travel insurance premium
// @Description Prices a policy for a coverage tier, an inclusive date range and a currency, and converts the total to rubles
// @Tags insurance
// @Accept  json
// @Produce  json
// @Param   request body dto.CalculateInsuranceRequest true "Policy details"
// @Success 200 {object} dto.CalculateInsuranceResponse
// @Failure 400 {object} dto.ErrorResponse "Empty body, malformed JSON or missing fields"
// @Failure 400 {object} dto.FieldErrorsResponse "Field validation errors"
// @Failure 413 {object} dto.ErrorResponse "Request body too large"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Calculation error"
// @Router /insurance/calculate [post]
func (h *insuranceHandler) calculate(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		logger.Warn("Request body too large", slog.Int64("limit", tooLarge.Limit))
		h.observe(metrics.OutcomeValidationError, "")
		c.JSON(http.StatusRequestEntityTooLarge, dto.ErrorResponse{
			Error: fmt.Sprintf("Request body is too large: limit is %d bytes", tooLarge.Limit),
		})
		return
	}
	if err != nil {
		logger.Warn("Failed to read request body", slog.String("error", err.Error()))
		h.observe(metrics.OutcomeValidationError, "")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to read request body: " + err.Error()})
		return
	}
	if len(body) == 0 {
		h.observe(metrics.OutcomeValidationError, "")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Request body is empty"})
		return
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		logger.Warn("Failed to decode JSON for CalculateInsurance", slog.String("error", err.Error()))
		h.observe(metrics.OutcomeValidationError, "")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid JSON format: " + err.Error()})
		return
	}

	// arrays, scalars and null carry none of the required keys
	input, _ := decoded.(map[string]any)

	req, err := h.validator.Validate(input)
	if err != nil {
		h.observe(metrics.OutcomeValidationError, "")
		h.writeValidationError(c, logger, err)
		return
	}

	logger = logger.With(
		slog.Int("insurance_amount", req.InsuranceAmount),
		slog.String("currency", req.Currency),
	)
	logger.Info("Received request to calculate insurance premium",
		slog.String("start_date", req.StartDate),
		slog.String("end_date", req.EndDate),
	)

	result, err := h.calculator.Calculate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDomain) {
			logger.Warn("Premium could not be calculated", slog.String("error", err.Error()))
			h.observe(metrics.OutcomeDomainError, req.Currency)
		} else {
			logger.Error("Failed to calculate premium in service", slog.String("error", err.Error()))
			h.observe(metrics.OutcomeError, req.Currency)
		}
		resp := dto.ErrorResponse{Error: "Calculation error: " + err.Error()}
		if h.exposeDetails {
			resp.Exception = fmt.Sprintf("%T", rootCause(err))
			resp.Trace = fmt.Sprintf("%+v", err)
		}
		c.JSON(http.StatusInternalServerError, resp)
		return
	}

	logger.Info("Premium calculated successfully", slog.Int("days_count", result.DaysCount))
	h.observe(metrics.OutcomeSuccess, req.Currency)
	c.JSON(http.StatusOK, dto.ToCalculateInsuranceResponse(result))
}

func (h *insuranceHandler) writeValidationError(c *gin.Context, logger *slog.Logger, err error) {
	var missing *apperrors.MissingFieldsError
	var malformed *apperrors.MalformedInputError
	var invalid *apperrors.ValidationError

	switch {
	case errors.As(err, &missing):
		logger.Warn("Request is missing required fields", slog.Any("fields", missing.Fields))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: missing.Error()})
	case errors.As(err, &malformed):
		logger.Warn("Request field has the wrong type", slog.String("field", malformed.Field))
		c.JSON(http.StatusBadRequest, dto.FieldErrorsResponse{Errors: map[string]string{malformed.Field: malformed.Detail}})
	case errors.As(err, &invalid):
		logger.Warn("Request failed validation", slog.Any("errors", invalid.Fields))
		c.JSON(http.StatusBadRequest, dto.FieldErrorsResponse{Errors: invalid.Fields})
	default:
		logger.Error("Unexpected validation failure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Unexpected error: " + err.Error()})
	}
}

// getTariffs godoc
// @Summary List tariffs
// @Description Returns the daily rate of each coverage tier and the accepted policy currencies
// @Tags insurance
// @Produce  json
// @Success 200 {object} dto.TariffsResponse
// @Router /insurance/tariffs [get]
func (h *insuranceHandler) getTariffs(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToTariffsResponse(h.tariffs.DailyRates(), domain.SupportedCurrencies))
}

func (h *insuranceHandler) observe(outcome, currency string) {
	if h.metrics == nil {
		return
	}
	h.metrics.CalculationsTotal.WithLabelValues(outcome, currency).Inc()
}

// rootCause returns the innermost wrapped error.
func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
