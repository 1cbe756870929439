package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler_Handler(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		err          error
		expectedCode int
		expectedErr  string
		emptyBody    bool
	}{
		{
			name:         "plain error returns 500",
			method:       http.MethodGet,
			err:          assert.AnError,
			expectedCode: http.StatusInternalServerError,
			expectedErr:  ErrInternalServerError,
		},
		{
			name:         "echo 404 is a bad parameter",
			method:       http.MethodGet,
			err:          echo.ErrNotFound,
			expectedCode: http.StatusNotFound,
			expectedErr:  ErrBadParameter,
		},
		{
			name:         "wrapped echo 405 keeps its status",
			method:       http.MethodGet,
			err:          fmt.Errorf("route: %w", echo.ErrMethodNotAllowed),
			expectedCode: http.StatusMethodNotAllowed,
			expectedErr:  ErrBadParameter,
		},
		{
			name:         "echo 503 is internal",
			method:       http.MethodGet,
			err:          echo.NewHTTPError(http.StatusServiceUnavailable, "unavailable"),
			expectedCode: http.StatusServiceUnavailable,
			expectedErr:  ErrInternalServerError,
		},
		{
			name:         "HEAD with echo error has no body",
			method:       http.MethodHead,
			err:          echo.ErrNotFound,
			expectedCode: http.StatusNotFound,
			emptyBody:    true,
		},
		{
			name:         "HEAD with plain error has no body",
			method:       http.MethodHead,
			err:          assert.AnError,
			expectedCode: http.StatusInternalServerError,
			emptyBody:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(tt.method, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			NewHTTPErrorHandler(log.NewNopLogger()).Handler(tt.err, c)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.emptyBody {
				assert.Empty(t, rec.Body.Bytes())
				return
			}
			var body ErrResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.expectedErr, body.Error.Code)
		})
	}
}

func TestHTTPErrorHandler_Handler_CommittedResponse(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, c.NoContent(http.StatusOK))

	NewHTTPErrorHandler(log.NewNopLogger()).Handler(assert.AnError, c)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewHTTPErrorHandler_Panics(t *testing.T) {
	assert.PanicsWithValue(t, "service.http_error.go: logger is required", func() {
		NewHTTPErrorHandler(nil)
	})
}

func TestRegisterErrorHandler(t *testing.T) {
	e := echo.New()
	RegisterErrorHandler(e, log.NewNopLogger())
	require.NotNil(t, e.HTTPErrorHandler)

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
