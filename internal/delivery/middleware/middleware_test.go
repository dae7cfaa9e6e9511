package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "catalog/internal/delivery/context"
	domainerrors "catalog/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id reused", incoming: "trace-123", keep: true},
		{name: "missing id generated", incoming: ""},
		{name: "id with spaces replaced", incoming: "two words"},
		{name: "oversized id replaced", incoming: strings.Repeat("a", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)

			m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

			var fromCtx string
			var hasLogger bool
			err := m.Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return nil
			})(c)
			require.NoError(t, err)

			header := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, header)
			assert.Equal(t, header, fromCtx)
			assert.True(t, hasLogger)
			if tt.keep {
				assert.Equal(t, tt.incoming, header)
			} else {
				assert.NotEqual(t, tt.incoming, header)
			}
		})
	}
}

func TestMetricsMiddleware(t *testing.T) {
	m := NewMetricsMiddleware("catalog-test")

	e := echo.New()
	e.Use(m.Handle)
	e.GET("/items/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return domainerrors.ErrProductNotFound
		}

		return c.NoContent(http.StatusNoContent)
	})

	for _, target := range []string{"/items/1", "/items/2", "/items/missing"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, target, nil))
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, `http_requests_total{method="GET",path="/items/:id",service="catalog-test",status="204"} 2`)
	assert.Contains(t, body, `http_requests_total{method="GET",path="/items/:id",service="catalog-test",status="404"} 1`)
	assert.Contains(t, body, "http_request_duration_seconds_bucket")
}
