package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/joeydtaylor/steeze-activities/pkg/manifest"
)

type stubWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (s *stubWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if s.err != nil {
		return s.err
	}
	s.msgs = append(s.msgs, msgs...)
	return nil
}

func (s *stubWriter) Close() error {
	s.closed = true
	return nil
}

func TestNewWithoutBrokersIsNoop(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "")
	p := New(ConfigFromManifest(nil), zaptest.NewLogger(t))
	_, ok := p.(Noop)
	require.True(t, ok)
	require.NoError(t, p.Publish(context.Background(), SignedUp("Chess Club", "a@b")))
	require.NoError(t, p.Close())
}

func TestKafkaPublisherWritesKeyedMessage(t *testing.T) {
	w := &stubWriter{}
	p := newKafkaPublisher("activity-registrations", w, zaptest.NewLogger(t))

	ev := SignedUp("Chess Club", "testuser@example.com")
	require.NoError(t, p.Publish(context.Background(), ev))
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "Chess Club", string(msg.Key))
	assert.Equal(t, TypeSignedUp, string(msg.Headers[0].Value))

	var got Registration
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, ev.EventID, got.EventID)
	assert.Equal(t, "testuser@example.com", got.Email)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisherWrapsWriteError(t *testing.T) {
	boom := errors.New("broker down")
	p := newKafkaPublisher("t", &stubWriter{err: boom}, zaptest.NewLogger(t))

	err := p.Publish(context.Background(), Unregistered("Chess Club", "a@b"))
	require.ErrorIs(t, err, boom)
}

func TestConfigFromManifestAppliesEnvOverrides(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("ACTIVITIES_EVENTS_TOPIC", "")

	cfg := ConfigFromManifest(&manifest.Events{
		Brokers: []string{"ignored:9092"},
		Topic:   "registrations",
		Writer:  &manifest.EventWriter{BatchTimeoutMS: 25, Balancer: "round_robin"},
	})
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Brokers)
	assert.Equal(t, "registrations", cfg.Topic)
	assert.Equal(t, "round_robin", cfg.Balancer)
	assert.Equal(t, "activities-events", cfg.ClientID)
	assert.True(t, cfg.Enabled())
}

func TestEventIDsAreUnique(t *testing.T) {
	a := SignedUp("Chess Club", "a@b")
	b := SignedUp("Chess Club", "a@b")
	assert.NotEqual(t, a.EventID, b.EventID)
	assert.Equal(t, TypeSignedUp, a.EventType)
}
