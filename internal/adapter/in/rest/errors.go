package rest

import (
	"errors"
	"net/http"

	"docadmin/internal/service"
	"docadmin/pkg/logger"
	"docadmin/pkg/pagination"

	"github.com/labstack/echo/v4"
)

// mapError converts a service error into an echo.HTTPError.
func mapError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he

	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, pagination.ErrInvalidCursor),
		errors.Is(err, pagination.ErrDirectionUnset):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())

	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error").SetInternal(err)
	}
}

// errorHandler writes every error as {"error": message}.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	he := mapError(err)
	if he.Code >= http.StatusInternalServerError {
		logger.FromContext(c.Request().Context()).Error("request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}

	msg, ok := he.Message.(string)
	if !ok {
		msg = http.StatusText(he.Code)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.Code)
	} else {
		err = c.JSON(he.Code, errorJSON{Error: msg})
	}
	if err != nil {
		logger.FromContext(c.Request().Context()).Error("write error response", "error", err)
	}
}
