package stubservice

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/TemirB/internetmarke/internal/observability"
)

// ServerTimingApp measures the total request processing time, writes
// app;dur=... to Server-Timing and reports it to Metrics.ObserveHTTP.
func ServerTimingApp(m observability.Metrics) func(http.Handler) http.Handler {
	if m == nil {
		m = observability.Noop{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(&timingWriter{WrapResponseWriter: ww, start: start}, r)

			route := r.URL.Path
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			m.ObserveHTTP(r.Method, route, ww.Status(), durationMs(start))
		})
	}
}

// timingWriter adds the Server-Timing header right before the status line
// goes out, since headers written after that are dropped.
type timingWriter struct {
	middleware.WrapResponseWriter
	start   time.Time
	written bool
}

func (t *timingWriter) WriteHeader(code int) {
	if !t.written {
		t.written = true
		t.Header().Add("Server-Timing", fmt.Sprintf("app;dur=%.2f", durationMs(t.start)))
	}
	t.WrapResponseWriter.WriteHeader(code)
}

func (t *timingWriter) Write(b []byte) (int, error) {
	if !t.written {
		t.WriteHeader(http.StatusOK)
	}
	return t.WrapResponseWriter.Write(b)
}

func durationMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
