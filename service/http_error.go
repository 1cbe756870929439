package service

import (
	"errors"
	"net/http"

	"myregistrar/helpers"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// RegisterErrorHandler installs the JSON error handler on e.
func RegisterErrorHandler(e *echo.Echo, logger log.Logger) {
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger).Handler
}

// HTTPErrorHandler renders handler errors as ErrResponse.
type HTTPErrorHandler struct {
	logger log.Logger
}

// NewHTTPErrorHandler creates a new instance of the HTTPErrorHandler.
func NewHTTPErrorHandler(logger log.Logger) *HTTPErrorHandler {
	return &HTTPErrorHandler{
		logger: log.WithPrefix(helpers.NilPanic(logger, "service.http_error.go: logger is required"), "component", "HTTPErrorHandler"),
	}
}

// Handler handles errors returned by echo handlers. Router errors keep their
// status (4xx is reported as bad_parameter), everything else is a 500.
func (h *HTTPErrorHandler) Handler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, myErr := classifyHTTPError(err)
	level.Error(h.logger).Log(
		"msg", "HTTP request error",
		"method", c.Request().Method,
		"path", c.Request().URL.Path,
		"status", status,
		"err", err,
	)

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, ErrResponse{Error: myErr})
}

func classifyHTTPError(err error) (int, *MyError) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return http.StatusInternalServerError, NewMyError(ErrInternalServerError, "an internal server error has occurred", err)
	}
	if inner, ok := he.Internal.(*echo.HTTPError); ok {
		he = inner
	}

	code := ErrInternalServerError
	if he.Code >= 400 && he.Code < 500 {
		code = ErrBadParameter
	}
	message, _ := he.Message.(string)
	return he.Code, NewMyError(code, message, err)
}

// ErrResponse from server.
type ErrResponse struct {
	Error *MyError `json:"error,omitempty"`
}
