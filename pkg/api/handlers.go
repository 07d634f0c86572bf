// Package api exposes the activity registry as in-process HTTP handlers.
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/joeydtaylor/steeze-activities/pkg/activity"
	"github.com/joeydtaylor/steeze-activities/pkg/core"
	"github.com/joeydtaylor/steeze-activities/pkg/events"
	"github.com/joeydtaylor/steeze-activities/pkg/middleware/metrics"
	httpx "github.com/joeydtaylor/steeze-activities/pkg/transport/httpx"
	"go.uber.org/zap"
)

// Handler names referenced by the manifest.
const (
	HandlerList       = "activities.list"
	HandlerSignUp     = "activities.signup"
	HandlerUnregister = "activities.unregister"
)

var errEmailRequired = errors.New("email query parameter is required")

// Handler coordinates HTTP requests with the registry.
type Handler struct {
	registry  *activity.Registry
	publisher events.Publisher
	log       *zap.Logger
}

// NewHandler builds a Handler and feeds registry participant counts to the gauge.
func NewHandler(reg *activity.Registry, pub events.Publisher, log *zap.Logger) *Handler {
	if pub == nil {
		pub = events.Noop{}
	}
	reg.Observe(metrics.SetParticipants)
	return &Handler{registry: reg, publisher: pub, log: log}
}

// Register binds the handlers under their manifest names.
func (h *Handler) Register(hs core.Handlers) {
	hs.Register(HandlerList, h.list)
	hs.Register(HandlerSignUp, h.signUp)
	hs.Register(HandlerUnregister, h.unregister)
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) list(r *http.Request) (any, int, error) {
	return h.registry.List(), http.StatusOK, nil
}

func (h *Handler) signUp(r *http.Request) (any, int, error) {
	return h.mutate(r, "signup", h.registry.SignUp, events.SignedUp)
}

func (h *Handler) unregister(r *http.Request) (any, int, error) {
	return h.mutate(r, "unregister", h.registry.Unregister, events.Unregistered)
}

func (h *Handler) mutate(
	r *http.Request,
	op string,
	apply func(name, email string) (activity.Change, error),
	event func(name, email string) events.Registration,
) (any, int, error) {
	if err := r.Context().Err(); err != nil {
		return nil, http.StatusServiceUnavailable, err
	}

	name := httpx.URLParam(r, "activity")
	q := r.URL.Query()
	if !q.Has("email") {
		metrics.RecordRegistration(h.label(name), op, "invalid")
		return nil, http.StatusUnprocessableEntity, errEmailRequired
	}
	email := strings.TrimSpace(q.Get("email"))

	ch, err := apply(name, email)
	if err != nil {
		status, detail := describe(err)
		metrics.RecordRegistration(h.label(name), op, outcome(err))
		h.log.Warn(op+" rejected",
			zap.String("activity", name),
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, status, errors.New(detail)
	}

	metrics.RecordRegistration(name, op, "ok")
	h.log.Info(op,
		zap.String("activity", name),
		zap.String("email", ch.Email),
		zap.Int("participants", ch.Participants),
		zap.Int("spots_left", ch.SpotsLeft),
	)

	ev := event(name, ch.Email)
	if err := h.publisher.Publish(r.Context(), ev); err != nil {
		h.log.Error("registration event publish failed",
			zap.String("event_id", ev.EventID),
			zap.String("event_type", ev.EventType),
			zap.Error(err),
		)
	}

	return messageResponse{Message: ch.Message}, http.StatusOK, nil
}

// describe maps registry errors to the status and client-facing detail.
// Unknown activities and both conflicts are reported as 400.
func describe(err error) (int, string) {
	switch {
	case errors.Is(err, activity.ErrActivityNotFound):
		return http.StatusBadRequest, "Activity not found"
	case errors.Is(err, activity.ErrAlreadySignedUp):
		return http.StatusBadRequest, "Student is already signed up"
	case errors.Is(err, activity.ErrNotSignedUp):
		return http.StatusBadRequest, "Student is not signed up for this activity"
	case errors.Is(err, activity.ErrMissingEmail):
		return http.StatusUnprocessableEntity, errEmailRequired.Error()
	default:
		return http.StatusInternalServerError, err.Error()
	}
}

func outcome(err error) string {
	switch activity.KindOf(err) {
	case activity.KindNotFound:
		return "not_found"
	case activity.KindConflict:
		return "conflict"
	case activity.KindInvalid:
		return "invalid"
	default:
		return "error"
	}
}

// label keeps unknown names out of metric label values.
func (h *Handler) label(name string) string {
	if _, err := h.registry.Get(name); err != nil {
		return "unknown"
	}
	return name
}
