package handlers

import (
	goerrors "errors"
	"net/http"
	"time"

	"finsight/internal/errors"
	"finsight/internal/models"
	"finsight/internal/services"

	"github.com/labstack/echo/v4"
)

// OverviewHandler serves the aggregated financial overview
type OverviewHandler struct {
	aggregationService services.AggregationServiceInterface
}

// NewOverviewHandler creates a new overview handler
func NewOverviewHandler(aggregationService services.AggregationServiceInterface) *OverviewHandler {
	return &OverviewHandler{aggregationService: aggregationService}
}

// GetOverview returns the full aggregated picture for the authenticated user
// @Summary Financial overview
// @Description Aggregates all connected sources into accounts, metrics, deltas, and insights
// @Tags Overview
// @Produce json
// @Param force_refresh query bool false "Bypass the cache and recompute"
// @Param source query string false "Data source override (live or demo)"
// @Success 200 {object} SuccessResponse{data=models.Overview}
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid token"
// @Failure 422 {object} errors.ErrorResponse "METRICS_001 - Metrics failed sanity checks"
// @Router /api/v1/overview [get]
func (h *OverviewHandler) GetOverview(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	source, err := parseDataSource(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	opts := services.OverviewOptions{
		ForceRefresh: getBoolParam(c, "force_refresh"),
		DataSource:   source,
	}

	overview, err := h.aggregationService.ComputeOverview(c.Request().Context(), userID, opts)
	if err != nil {
		if goerrors.Is(err, services.ErrDegradedMetrics) {
			return SendError(c, errors.MetricsDegraded)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: overview})
}

// netWorthResponse is the hero-metric slice of an overview.
type netWorthResponse struct {
	Metrics       *models.MetricsSummary `json:"metrics"`
	Deltas        *models.NetWorthDeltas `json:"deltas,omitempty"`
	DataSource    models.DataSourceKind  `json:"data_source"`
	GeneratedAt   time.Time              `json:"generated_at"`
	FailedSources []string               `json:"failed_sources,omitempty"`
}

// GetNetWorth returns only the computed metrics and deltas
// @Summary Net worth summary
// @Description Runs the same aggregation as the overview but returns only metrics and deltas
// @Tags Overview
// @Produce json
// @Param force_refresh query bool false "Bypass the cache and recompute"
// @Param source query string false "Data source override (live or demo)"
// @Success 200 {object} SuccessResponse
// @Failure 422 {object} errors.ErrorResponse "METRICS_001 - Metrics failed sanity checks"
// @Router /api/v1/networth [get]
func (h *OverviewHandler) GetNetWorth(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	source, err := parseDataSource(c)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	opts := services.OverviewOptions{
		ForceRefresh: getBoolParam(c, "force_refresh"),
		DataSource:   source,
	}

	overview, err := h.aggregationService.ComputeOverview(c.Request().Context(), userID, opts)
	if err != nil {
		if goerrors.Is(err, services.ErrDegradedMetrics) {
			return SendError(c, errors.MetricsDegraded)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: netWorthResponse{
		Metrics:       overview.Metrics,
		Deltas:        overview.Deltas,
		DataSource:    overview.DataSource,
		GeneratedAt:   overview.GeneratedAt,
		FailedSources: overview.FailedSources,
	}})
}
