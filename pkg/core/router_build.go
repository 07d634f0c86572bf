package core

import (
	"net/http"
	"time"

	chimd "github.com/go-chi/chi/v5/middleware"
	manifest "github.com/joeydtaylor/steeze-activities/pkg/manifest"
	hmetrics "github.com/joeydtaylor/steeze-activities/pkg/middleware/metrics"
	"go.uber.org/zap"
)

func BuildRouter(cfg manifest.Config, d BuildDeps) (http.Handler, error) {
	r := d.Router
	r.Use(chimd.RequestID, chimd.Recoverer, chimd.Heartbeat("/ping"))
	if d.LogMW != nil {
		r.Use(d.LogMW.Middleware())
	}
	r.Use(hmetrics.Collect())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/healthz", http.HandlerFunc(healthz))
	if d.Metrics != nil {
		r.Get("/metrics", d.Metrics)
	}
	if d.Static != nil {
		r.Mount("/static", http.StripPrefix("/static", d.Static))
	}

	for _, rt := range cfg.Routes {
		h, err := wrapRoute(rt, d)
		if err != nil {
			return nil, err
		}
		if rt.Policy.TimeoutMS > 0 {
			t := time.Duration(rt.Policy.TimeoutMS) * time.Millisecond
			h = withTimeout(h, t)
		}
		r.Handle(rt.Method, rt.Path, h)
		if d.Log != nil {
			d.Log.Info("route registered",
				zap.String("method", rt.Method),
				zap.String("path", rt.Path),
				zap.String("handler", string(rt.Handler.Type)+":"+rt.Handler.Name+rt.Handler.Target),
				zap.Strings("tags", rt.Tags),
			)
		}
	}
	return r.Mux(), nil
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
