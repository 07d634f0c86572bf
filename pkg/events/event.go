// Package events publishes participant registration changes to Kafka.
package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeSignedUp     = "participant.signed_up"
	TypeUnregistered = "participant.unregistered"
)

// Registration is emitted after the registry accepts a signup or an unregister.
type Registration struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Activity   string    `json:"activity"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newRegistration(eventType, activity, email string) Registration {
	return Registration{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Activity:   activity,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	}
}

func SignedUp(activity, email string) Registration {
	return newRegistration(TypeSignedUp, activity, email)
}

func Unregistered(activity, email string) Registration {
	return newRegistration(TypeUnregistered, activity, email)
}
