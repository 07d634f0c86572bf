package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher emits registration events.
type Publisher interface {
	Publish(ctx context.Context, ev Registration) error
	Close() error
}

// Noop accepts events and discards them.
type Noop struct{}

func (Noop) Publish(context.Context, Registration) error { return nil }
func (Noop) Close() error                                { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events keyed by activity name so one activity's
// history stays in a single partition.
type KafkaPublisher struct {
	topic  string
	writer messageWriter
	log    *zap.Logger
}

// New returns a KafkaPublisher when cfg is enabled and Noop otherwise.
func New(cfg Config, log *zap.Logger) Publisher {
	if !cfg.Enabled() {
		log.Info("registration events disabled")
		return Noop{}
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     balancer(cfg.Balancer),
		BatchTimeout: cfg.BatchTimeout,
		RequiredAcks: kafka.RequireAll,
		Compression:  kafka.Snappy,
		Async:        cfg.Async,
		Transport:    &kafka.Transport{ClientID: cfg.ClientID},
	}
	log.Info("registration events enabled",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.Topic),
		zap.String("balancer", cfg.Balancer),
	)
	return newKafkaPublisher(cfg.Topic, w, log)
}

func newKafkaPublisher(topic string, w messageWriter, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{topic: topic, writer: w, log: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev Registration) error {
	msg, err := encode(ev)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka publish %s to %s: %w", ev.EventType, p.topic, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error { return p.writer.Close() }

func encode(ev Registration) (kafka.Message, error) {
	b, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s: %w", ev.EventType, err)
	}
	return kafka.Message{
		Key:   []byte(ev.Activity),
		Value: b,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.EventType)},
			{Key: "event_id", Value: []byte(ev.EventID)},
		},
	}, nil
}

func balancer(name string) kafka.Balancer {
	switch name {
	case "least_bytes":
		return &kafka.LeastBytes{}
	case "round_robin":
		return &kafka.RoundRobin{}
	default:
		return &kafka.Hash{}
	}
}
