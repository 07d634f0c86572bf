package events

import (
	"os"
	"strings"
	"time"

	"github.com/joeydtaylor/steeze-activities/pkg/manifest"
)

// Config is pure-data config for the Kafka writer.
type Config struct {
	Brokers      []string
	Topic        string
	ClientID     string
	BatchTimeout time.Duration
	Balancer     string // hash|least_bytes|round_robin
	Async        bool
}

// Enabled reports whether a broker list is configured.
func (c Config) Enabled() bool { return len(c.Brokers) > 0 && c.Topic != "" }

// ConfigFromManifest reads the [events] block; KAFKA_BROKERS and
// ACTIVITIES_EVENTS_TOPIC override it when set.
func ConfigFromManifest(m *manifest.Events) Config {
	cfg := Config{
		ClientID:     "activities-events",
		BatchTimeout: 10 * time.Millisecond,
		Balancer:     "hash",
	}
	if m != nil {
		cfg.Brokers = append([]string(nil), m.Brokers...)
		cfg.Topic = m.Topic
		if m.ClientID != "" {
			cfg.ClientID = m.ClientID
		}
		if w := m.Writer; w != nil {
			if w.BatchTimeoutMS > 0 {
				cfg.BatchTimeout = time.Duration(w.BatchTimeoutMS) * time.Millisecond
			}
			if w.Balancer != "" {
				cfg.Balancer = w.Balancer
			}
			cfg.Async = w.Async
		}
	}
	if b := splitCSV(os.Getenv("KAFKA_BROKERS")); len(b) > 0 {
		cfg.Brokers = b
	}
	cfg.Topic = envOr("ACTIVITIES_EVENTS_TOPIC", cfg.Topic)
	return cfg
}

func envOr(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if x := strings.TrimSpace(p); x != "" {
			out = append(out, x)
		}
	}
	return out
}
