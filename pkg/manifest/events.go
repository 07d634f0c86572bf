package manifest

import "errors"

// Events configures publishing of registration events to Kafka.
// An absent block, or one without brokers, disables publishing.
type Events struct {
	Brokers  []string     `toml:"brokers"` // e.g., ["127.0.0.1:19092"]
	Topic    string       `toml:"topic"`
	ClientID string       `toml:"client_id"` // default: "activities-events"
	Writer   *EventWriter `toml:"writer"`
}

type EventWriter struct {
	BatchTimeoutMS int    `toml:"batch_timeout_ms"` // default: 10
	Balancer       string `toml:"balancer"`         // "hash"(def) | "least_bytes" | "round_robin"
	Async          bool   `toml:"async"`
}

// Enabled reports whether events should be published.
func (e *Events) Enabled() bool { return e != nil && len(e.Brokers) > 0 }

func (e *Events) validate() error {
	if !e.Enabled() {
		return nil
	}
	if e.Topic == "" {
		return errors.New("events.topic required when brokers are set")
	}
	if w := e.Writer; w != nil {
		if w.BatchTimeoutMS < 0 {
			return errors.New("events.writer.batch_timeout_ms must be >= 0")
		}
		switch w.Balancer {
		case "", "hash", "least_bytes", "round_robin":
		default:
			return errors.New("events.writer.balancer must be hash, least_bytes or round_robin")
		}
	}
	return nil
}
