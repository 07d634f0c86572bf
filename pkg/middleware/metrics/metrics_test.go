package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Collect())
	r.Post("/activities/{activity}/signup", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	before := testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("200", "/activities/{activity}/signup", "POST"))
	for _, name := range []string{"Chess%20Club", "Gym%20Class"} {
		req := httptest.NewRequest(http.MethodPost, "/activities/"+name+"/signup", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}
	after := testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("200", "/activities/{activity}/signup", "POST"))
	assert.Equal(t, before+2, after)
}

func TestCollectSkipsMetricsPath(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Collect())
	r.Get("/metrics", func(w http.ResponseWriter, _ *http.Request) {})

	before := testutil.ToFloat64(totalHttpRequests.WithLabelValues("200", "GET"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, before, testutil.ToFloat64(totalHttpRequests.WithLabelValues("200", "GET")))
}

func TestRecordRegistrationAndParticipants(t *testing.T) {
	before := testutil.ToFloat64(registrations.WithLabelValues("Chess Club", "signup", "ok"))
	RecordRegistration("Chess Club", "signup", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(registrations.WithLabelValues("Chess Club", "signup", "ok")))

	SetParticipants("Chess Club", 3)
	assert.Equal(t, float64(3), testutil.ToFloat64(participants.WithLabelValues("Chess Club")))
}

func TestCollectLabelsUnmatchedRequests(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Collect())
	r.Get("/activities", func(w http.ResponseWriter, _ *http.Request) {})

	before := testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("404", "unmatched", "GET"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, before+1, testutil.ToFloat64(totalHttpRequestsToUri.WithLabelValues("404", "unmatched", "GET")))
}
