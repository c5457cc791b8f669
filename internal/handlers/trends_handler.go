package handlers

import (
	goerrors "errors"
	"net/http"

	"finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/services"

	"github.com/labstack/echo/v4"
)

// TrendsHandler serves spending trend analyses and projections
type TrendsHandler struct {
	aggregationService services.AggregationServiceInterface
}

// NewTrendsHandler creates a new trends handler
func NewTrendsHandler(aggregationService services.AggregationServiceInterface) *TrendsHandler {
	return &TrendsHandler{aggregationService: aggregationService}
}

// GetTrends returns a trend analysis for the authenticated user
// @Summary Spending trends
// @Description Groups completed expenses by the requested analysis type
// @Tags Trends
// @Produce json
// @Param type query string true "Analysis type (monthly, weekly, daily, category, seasonal, anomaly)"
// @Param start query string false "Range start (YYYY-MM-DD), requires end"
// @Param end query string false "Range end (YYYY-MM-DD), requires start"
// @Param force_refresh query bool false "Bypass the cache and recompute"
// @Success 200 {object} SuccessResponse{data=models.TrendResult}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Unknown analysis type"
// @Router /api/v1/trends [get]
func (h *TrendsHandler) GetTrends(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	analysisType := models.AnalysisType(c.QueryParam("type"))
	if !models.IsValidAnalysisType(analysisType) {
		return SendError(c, errors.ValidationInvalidAnalysis,
			errors.WithDetails("type must be one of: monthly, weekly, daily, category, seasonal, anomaly"))
	}

	dateRange, err := parseDateRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	source, err := parseDataSource(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	opts := services.OverviewOptions{
		ForceRefresh: getBoolParam(c, "force_refresh"),
		DataSource:   source,
	}

	result, err := h.aggregationService.AnalyzeUserTrends(c.Request().Context(), userID, analysisType, dateRange, opts)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: result})
}

// GetProjection returns a next-period spending projection
// @Summary Spending projection
// @Description Extrapolates the next period from recent trend points
// @Tags Trends
// @Produce json
// @Param type query string true "Analysis type (monthly, weekly, daily)"
// @Success 200 {object} SuccessResponse{data=models.Projection}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Unknown analysis type"
// @Router /api/v1/trends/projection [get]
func (h *TrendsHandler) GetProjection(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	analysisType := models.AnalysisType(c.QueryParam("type"))

	dateRange, err := parseDateRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	source, err := parseDataSource(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	opts := services.OverviewOptions{
		ForceRefresh: getBoolParam(c, "force_refresh"),
		DataSource:   source,
	}

	projection, err := h.aggregationService.ProjectUserTrend(c.Request().Context(), userID, analysisType, dateRange, opts)
	if err != nil {
		return h.mapError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: projection})
}

func (h *TrendsHandler) mapError(c echo.Context, err error) error {
	switch {
	case goerrors.Is(err, services.ErrInvalidAnalysisType):
		return SendError(c, errors.ValidationInvalidAnalysis, errors.WithDetails(err.Error()))
	case goerrors.Is(err, services.ErrDegradedMetrics):
		return SendError(c, errors.MetricsDegraded)
	default:
		return SendSystemError(c, err)
	}
}
