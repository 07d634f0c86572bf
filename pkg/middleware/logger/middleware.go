package logger

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimd "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Middleware writes one access line per request.
type Middleware struct {
	access *zap.Logger
}

// New returns a Middleware logging to l.
func New(l *zap.Logger) *Middleware { return &Middleware{access: l} }

func (m *Middleware) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimd.NewWrapResponseWriter(w, r.ProtoMajor)

			scheme := "http"
			if r.TLS != nil {
				scheme = "https"
			}

			start := time.Now()
			defer func() {
				lat := time.Since(start)

				// query strings carry participant emails; log the path only
				route := ""
				if rc := chi.RouteContext(r.Context()); rc != nil {
					route = rc.RoutePattern()
				}

				m.access.Info("",
					zap.String("dateTime", start.UTC().Format(time.RFC1123)),
					zap.String("requestId", chimd.GetReqID(r.Context())),
					zap.String("httpScheme", scheme),
					zap.String("httpProto", r.Proto),
					zap.String("httpMethod", r.Method),
					zap.String("remoteAddr", r.RemoteAddr),
					zap.String("uri", r.URL.Path),
					zap.String("route", route),
					zap.Duration("lat", lat),
					zap.Int("responseSize", ww.BytesWritten()),
					zap.Int("status", ww.Status()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
