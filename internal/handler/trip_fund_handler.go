package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dafibh/tripfund/tripfund-backend/internal/domain"
	"github.com/dafibh/tripfund/tripfund-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// TripFundHandler handles trip fund calculator HTTP requests
type TripFundHandler struct {
	tripFundService *service.TripFundService
	now             func() time.Time
}

// NewTripFundHandler creates a new TripFundHandler
func NewTripFundHandler(tripFundService *service.TripFundService) *TripFundHandler {
	return &TripFundHandler{
		tripFundService: tripFundService,
		now:             time.Now,
	}
}

// CalculateRequest represents the calculator fields
type CalculateRequest struct {
	BaseCost       domain.RawAmount `json:"baseCost" swaggertype:"string" example:"1000"`
	CurrentSavings domain.RawAmount `json:"currentSavings" swaggertype:"string" example:"500"`
	MonthlyDeposit domain.RawAmount `json:"monthlyDeposit" swaggertype:"string" example:"200"`
}

func (r CalculateRequest) toInput() domain.TripFundInput {
	return domain.TripFundInput{
		BaseCost:       string(r.BaseCost),
		CurrentSavings: string(r.CurrentSavings),
		MonthlyDeposit: string(r.MonthlyDeposit),
	}
}

// Calculate godoc
// @Summary Calculate trip savings
// @Description Estimate how many months of deposits are needed to afford a trip (base cost plus a 50% safety margin). Invalid input is not an error: the response has valid=false and an advisory message.
// @Tags trip-fund
// @Accept json
// @Produce json
// @Param request body CalculateRequest true "Calculator fields"
// @Success 200 {object} domain.TripFundSummary
// @Failure 400 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Router /trip-fund/calculate [post]
func (h *TripFundHandler) Calculate(c echo.Context) error {
	var req CalculateRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	return c.JSON(http.StatusOK, h.respond(req.toInput()))
}

// CalculateQuery godoc
// @Summary Calculate trip savings from query parameters
// @Description Same as POST /trip-fund/calculate with the fields passed as query parameters
// @Tags trip-fund
// @Produce json
// @Param baseCost query string false "Base trip cost"
// @Param currentSavings query string false "Current savings"
// @Param monthlyDeposit query string false "Monthly deposit"
// @Success 200 {object} domain.TripFundSummary
// @Failure 429 {object} ProblemDetails
// @Router /trip-fund/calculate [get]
func (h *TripFundHandler) CalculateQuery(c echo.Context) error {
	return c.JSON(http.StatusOK, h.respond(queryInput(c)))
}

// GetTimeline godoc
// @Summary Get projected savings chart
// @Description Chart-ready savings timeline for months 0..monthsNeeded. Returns 204 when the input does not form a projection.
// @Tags trip-fund
// @Produce json
// @Param baseCost query string false "Base trip cost"
// @Param currentSavings query string false "Current savings"
// @Param monthlyDeposit query string false "Monthly deposit"
// @Success 200 {object} domain.ChartData
// @Success 204
// @Failure 422 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Router /trip-fund/timeline [get]
func (h *TripFundHandler) GetTimeline(c echo.Context) error {
	result := h.tripFundService.Evaluate(queryInput(c))
	if !result.Valid() {
		return c.NoContent(http.StatusNoContent)
	}
	if result.ChartErr != nil {
		if errors.Is(result.ChartErr, domain.ErrTimelineTooLong) || errors.Is(result.ChartErr, domain.ErrChartOutOfRange) {
			return NewUnprocessableError(c, result.ChartErr.Error())
		}
		log.Error().Err(result.ChartErr).Msg("Failed to build timeline")
		return NewInternalError(c, "Failed to build timeline")
	}

	return c.JSON(http.StatusOK, result.Chart)
}

func (h *TripFundHandler) respond(input domain.TripFundInput) domain.TripFundSummary {
	result := h.tripFundService.Evaluate(input)
	if result.ChartErr != nil {
		log.Debug().Err(result.ChartErr).Int64("months_needed", result.Projection.MonthsNeeded).Msg("Chart omitted from trip fund response")
	}
	return result.Summary(h.now())
}

func queryInput(c echo.Context) domain.TripFundInput {
	return domain.TripFundInput{
		BaseCost:       c.QueryParam(domain.FieldBaseCost),
		CurrentSavings: c.QueryParam(domain.FieldCurrentSavings),
		MonthlyDeposit: c.QueryParam(domain.FieldMonthlyDeposit),
	}
}
