package rest

import (
	"log/slog"
	"strconv"
	"time"

	"docadmin/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the admin API on a fresh echo instance.
func NewRouter(log *slog.Logger, h *Handler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(log))
	e.Use(observe)

	e.GET("/healthz", Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	projects := e.Group("/projects")
	projects.GET("", h.ListProjects)
	projects.POST("", h.CreateProject)
	projects.GET("/:projectName", h.GetProject)
	projects.PATCH("/:projectName", h.UpdateProject)
	projects.GET("/:projectName/documents", h.ListDocuments)
	projects.POST("/:projectName/documents", h.CreateDocument)
	projects.GET("/:projectName/documents/:documentKey", h.GetDocument)

	return e
}

// requestLogger puts a request-scoped logger into the request context.
func requestLogger(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			l := log.With(
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", req.Method,
				"path", req.URL.Path,
			)
			c.SetRequest(req.WithContext(logger.WithLogger(req.Context(), l)))
			return next(c)
		}
	}
}

// observe records metrics and commits error responses so the status is known.
func observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method
		status := strconv.Itoa(c.Response().Status)

		RequestsTotal.WithLabelValues(method, route, status).Inc()
		RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		logger.FromContext(c.Request().Context()).Debug("request handled",
			"route", route,
			"status", c.Response().Status,
			"duration", time.Since(start),
		)
		return nil
	}
}
