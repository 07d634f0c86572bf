package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	responseTime = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "response_time",
			Help:    "http response time.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	totalHttpRequestsToUri = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests_to_uri", Help: "http requests to uri"},
		[]string{"code", "uri", "method"},
	)

	totalHttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "total_http_requests", Help: "http requests by code, and method"},
		[]string{"code", "method"},
	)

	registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "activities",
			Name:      "registrations_total",
			Help:      "signup and unregister attempts by activity and outcome.",
		},
		[]string{"activity", "operation", "outcome"},
	)

	participants = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "activities",
			Name:      "participants",
			Help:      "current participant count per activity.",
		},
		[]string{"activity"},
	)
)

func init() {
	prometheus.MustRegister(
		responseTime,
		totalHttpRequestsToUri,
		totalHttpRequests,
		registrations,
		participants,
	)
}

// RecordRegistration counts a signup/unregister attempt. outcome is "ok" or an error class.
func RecordRegistration(activity, operation, outcome string) {
	registrations.WithLabelValues(activity, operation, outcome).Inc()
}

// SetParticipants publishes the participant count for activity.
func SetParticipants(activity string, n int) {
	participants.WithLabelValues(activity).Set(float64(n))
}
