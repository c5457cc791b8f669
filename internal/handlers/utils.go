package handlers

import (
	"fmt"
	"strconv"
	"time"

	"finsight/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext extracts the authenticated user ID set by the auth
// middleware. Returns ErrUnauthorized if missing or of the wrong type.
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

func getBoolParam(c echo.Context, name string) bool {
	param := c.QueryParam(name)
	if param == "" {
		return false
	}
	value, err := strconv.ParseBool(param)
	if err != nil {
		return false
	}
	return value
}

// parseDateRange reads optional start/end query parameters. Both must be
// given together; a zero range tells the engine to use its default lookback.
func parseDateRange(c echo.Context) (models.DateRange, error) {
	startParam := c.QueryParam("start")
	endParam := c.QueryParam("end")

	if startParam == "" && endParam == "" {
		return models.DateRange{}, nil
	}
	if startParam == "" || endParam == "" {
		return models.DateRange{}, fmt.Errorf("start and end must be provided together")
	}

	start, err := time.Parse(models.DateLayout, startParam)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("invalid start date %q", startParam)
	}
	end, err := time.Parse(models.DateLayout, endParam)
	if err != nil {
		return models.DateRange{}, fmt.Errorf("invalid end date %q", endParam)
	}
	if end.Before(start) {
		return models.DateRange{}, fmt.Errorf("end date precedes start date")
	}

	return models.DateRange{Start: start, End: end}, nil
}

// parseDataSource reads the optional source override query parameter.
func parseDataSource(c echo.Context) (models.DataSourceKind, error) {
	param := c.QueryParam("source")
	switch param {
	case "":
		return "", nil
	case string(models.DataSourceLive):
		return models.DataSourceLive, nil
	case string(models.DataSourceDemo):
		return models.DataSourceDemo, nil
	default:
		return "", fmt.Errorf("invalid data source %q", param)
	}
}
