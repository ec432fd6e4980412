package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/pkg/auth"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
)

// httpError maps domain errors to statuses. Anything unrecognised is logged
// and answered with a generic 500.
func (h *Handler) httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrInvalidArgument):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, auth.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		h.log.Error("internal error", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
