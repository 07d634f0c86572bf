package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLParamUnescapes(t *testing.T) {
	cases := map[string]string{
		"/activities/Chess%20Club/signup": "Chess Club",
		"/activities/Art%2BDesign/signup": "Art+Design",
		"/activities/Math%2FLogic/signup": "Math/Logic",
	}
	for target, want := range cases {
		t.Run(want, func(t *testing.T) {
			r := NewChi()
			var got string
			r.Post("/activities/{activity}/signup", http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				got = URLParam(req, "activity")
			}))
			r.Mux().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, target, nil))
			assert.Equal(t, want, got)
		})
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	r := NewChi()
	r.Get("/activities", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusConflict) })

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusTeapot, rr.Code)

	rr = httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/activities", nil))
	assert.Equal(t, http.StatusConflict, rr.Code)
}
