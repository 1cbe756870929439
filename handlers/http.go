// Package handlers contains the operational http handlers of myregistrar.
// Registry content is never exposed here: other processes read the shared store directly.
package handlers

import (
	"net/http"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// GetHealthz (GET /healthz) reports that the process is up.
	GetHealthz(ectx echo.Context) error
	// GetMetrics (GET /metrics) serves Prometheus metrics.
	GetMetrics(ectx echo.Context) error
}

// RegisterHandlers adds each server route to the echo router.
func RegisterHandlers(e *echo.Echo, si ServerInterface) {
	e.GET("/healthz", si.GetHealthz)
	e.GET("/metrics", si.GetMetrics)
}

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	metrics http.Handler
	logger  log.Logger
}

// NewHTTPServer creates a new HTTPServer exposing metrics from gatherer.
func NewHTTPServer(gatherer prometheus.Gatherer, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		metrics: promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{
			ErrorLog: promLogger{logger: logger},
		}),
		logger: logger,
	}
}

func (h *HTTPServer) GetHealthz(ectx echo.Context) error {
	return ectx.NoContent(http.StatusOK)
}

func (h *HTTPServer) GetMetrics(ectx echo.Context) error {
	h.metrics.ServeHTTP(ectx.Response(), ectx.Request())
	return nil
}

// promLogger adapts go-kit log to promhttp.Logger.
type promLogger struct {
	logger log.Logger
}

func (l promLogger) Println(v ...interface{}) {
	_ = l.logger.Log("msg", "Metrics exposition error", "err", v)
}
