package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/custodia-labs/ctrlf-search/internal/adapters/driven/metrics"
	"github.com/custodia-labs/ctrlf-search/internal/logger"
)

// cors sets permissive cross-origin headers and answers pre-flight
// requests with an empty 200.
func cors(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}
		return next(c)
	}
}

// requestLogger logs each request and records it in m (which may be nil).
// Errors are rendered here so the final status is known.
func requestLogger(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			logger.Info("%s %s %d %s id=%s", req.Method, req.URL.Path, status,
				time.Since(start).Round(time.Millisecond), c.Response().Header().Get(echo.HeaderXRequestID))
			m.ObserveRequest(actionLabel(c), status)
			return nil
		}
	}
}

// actionLabel reduces the dispatch parameters to a bounded metric label.
func actionLabel(c echo.Context) string {
	switch action := c.QueryParam("action"); action {
	case actionAnswer, actionDriveContent:
		return action
	case "":
	default:
		return "unknown"
	}
	switch source := c.QueryParam("source"); source {
	case "notion", "slack":
		return source
	case "":
		return "none"
	default:
		return "unknown"
	}
}
