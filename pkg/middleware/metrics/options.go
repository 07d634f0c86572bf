package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// probes and self-scrape
var skipPaths = map[string]struct{}{"/metrics": {}, "/ping": {}, "/healthz": {}}

// routePattern labels by chi pattern so activity names don't become label values.
// Unmatched requests collapse into one label.
func routePattern(r *http.Request) string {
	if rc := chi.RouteContext(r.Context()); rc != nil {
		if p := rc.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func isSkipPath(r *http.Request) bool {
	_, ok := skipPaths[r.URL.Path]
	return ok
}
