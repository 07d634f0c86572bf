package core

import (
	"fmt"
	"net/http"

	manifest "github.com/joeydtaylor/steeze-activities/pkg/manifest"
)

func wrapRoute(rt manifest.Route, d BuildDeps) (http.HandlerFunc, error) {
	switch rt.Handler.Type {
	case manifest.HandlerInproc:
		h, ok := d.Handlers.Lookup(rt.Handler.Name)
		if !ok {
			return nil, fmt.Errorf("route %s %s: handler %q not registered", rt.Method, rt.Path, rt.Handler.Name)
		}
		return func(w http.ResponseWriter, r *http.Request) {
			out, status, err := h(r)
			if err != nil {
				writeDetail(w, statusIf(status, http.StatusInternalServerError), err.Error())
				return
			}
			writeJSON(w, out, statusIf(status, http.StatusOK))
		}, nil

	case manifest.HandlerRedirect:
		target := rt.Handler.Target
		return func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, target, http.StatusTemporaryRedirect)
		}, nil

	default:
		return nil, fmt.Errorf("route %s %s: unknown handler type %q", rt.Method, rt.Path, rt.Handler.Type)
	}
}
