package metrics

import (
	"net/http"
	"strconv"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
)

// Collect produces the HTTP middleware that records the counters/histogram.
func Collect() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)
			startTime := time.Now()

			defer func() {
				// Skip self-scrape and health probes
				if isSkipPath(r) {
					return
				}

				endTime := time.Since(startTime)

				code := strconv.Itoa(ww.Status())
				uri := routePattern(r)
				method := r.Method

				totalHttpRequestsToUri.WithLabelValues(code, uri, method).Inc()
				totalHttpRequests.WithLabelValues(code, method).Inc()
				responseTime.Observe(endTime.Seconds())
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
