package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/de-tools/impact-atlas/pkg/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const unmatchedRoute = "unmatched"

// Metrics records request counts and latency labelled by the matched chi route pattern
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, req)

		route := unmatchedRoute
		if rctx := chi.RouteContext(req.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				route = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		telemetry.HTTPRequestsTotal.WithLabelValues(route, req.Method, strconv.Itoa(status)).Inc()
		telemetry.HTTPRequestDuration.WithLabelValues(route, req.Method).Observe(time.Since(start).Seconds())
	})
}
