package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"
)

const requestIDHeader = "X-Request-ID"

// RequestLog returns Echo middleware that logs requests with structured
// fields. It assigns a request ID when the client sent none and echoes it in
// the response.
//
// Probe requests are noisy, so a successful /healthz or /readyz is logged
// only when it is the first success since start or since the last failure.
// Failures are always logged.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	probes := &probeState{healthy: map[string]bool{}}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			reqID := req.Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}
			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			}

			path := req.URL.Path
			if _, probe := healthGauges[path]; probe && !probes.shouldLog(path, status) {
				return err
			}

			attrs := []any{
				"method", req.Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			if userID := c.Param("user_id"); userID != "" {
				attrs = append(attrs, "user_id", userID)
			}
			if sc := trace.SpanContextFromContext(req.Context()); sc.HasTraceID() {
				attrs = append(attrs, "trace_id", sc.TraceID().String())
			}

			switch {
			case status >= http.StatusInternalServerError:
				log.Warn("request", attrs...)
			default:
				log.Info("request", attrs...)
			}
			return err
		}
	}
}

type probeState struct {
	mu      sync.Mutex
	healthy map[string]bool
}

// shouldLog records the probe outcome and reports whether it is worth a
// log line.
func (p *probeState) shouldLog(path string, status int) bool {
	ok := status >= 200 && status < 300

	p.mu.Lock()
	defer p.mu.Unlock()

	wasHealthy := p.healthy[path]
	p.healthy[path] = ok
	return !ok || !wasHealthy
}
