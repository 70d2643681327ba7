package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "newsapi/internal/errors"
)

// respondError is the single failure boundary for handlers: domain errors map
// to their status and message, everything else becomes a generic 500 whose
// cause is logged server-side only.
func respondError(log *zap.Logger, op string, err error) error {
	he := apperrors.MapError(err)
	if he.StatusCode == http.StatusInternalServerError {
		log.Error("request failed", zap.String("op", op), zap.Error(err))
	}
	return echo.NewHTTPError(he.StatusCode, he.Message)
}

// parseIDParam reads the numeric :id path parameter. Ids are bounded to 32
// bits to match the models' uint primary keys on any platform.
func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
