package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	mw "github.com/donaldgifford/card-ledger/internal/api/middleware"
)

func newRecordingProvider(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp, rec
}

func TestTracing_ServerSpan(t *testing.T) {
	t.Parallel()

	tp, spans := newRecordingProvider(t)

	var handlerSpan trace.SpanContext
	e := echo.New()
	e.Use(mw.Tracing(tp, propagation.TraceContext{}))
	e.GET("/api/v1/users/:user_id/alerts", func(c echo.Context) error {
		handlerSpan = trace.SpanContextFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/u1/alerts", http.NoBody)
	req.Header.Set("Traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	e.ServeHTTP(httptest.NewRecorder(), req)

	ended := spans.Ended()
	require.Len(t, ended, 1)
	s := ended[0]
	assert.Equal(t, "GET /api/v1/users/:user_id/alerts", s.Name())
	assert.Equal(t, trace.SpanKindServer, s.SpanKind())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", s.SpanContext().TraceID().String())
	assert.Equal(t, s.SpanContext().SpanID(), handlerSpan.SpanID())
	assert.Contains(t, s.Attributes(), attribute.Int("http.response.status_code", http.StatusOK))
}

func TestTracing_ServerErrorMarksSpan(t *testing.T) {
	t.Parallel()

	tp, spans := newRecordingProvider(t)

	e := echo.New()
	e.Use(mw.Tracing(tp, propagation.TraceContext{}))
	e.POST("/api/v1/alerts/check", func(c echo.Context) error {
		return c.NoContent(http.StatusServiceUnavailable)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/alerts/check", http.NoBody))

	ended := spans.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
}
