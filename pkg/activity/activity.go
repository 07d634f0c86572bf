// Package activity holds the in-memory activity registry and its signup rules.
package activity

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up")
	ErrNotSignedUp      = errors.New("student is not signed up for this activity")
	ErrMissingEmail     = errors.New("email is required")
)

// Kind groups registry errors for callers that only care about the class of failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindConflict
	KindInvalid
)

// KindOf classifies err. Errors not produced by the registry are KindUnknown.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return KindNotFound
	case errors.Is(err, ErrAlreadySignedUp), errors.Is(err, ErrNotSignedUp):
		return KindConflict
	case errors.Is(err, ErrMissingEmail):
		return KindInvalid
	default:
		return KindUnknown
	}
}

// Activity is a named offering with a fixed capacity and an ordered participant list.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft reports remaining capacity. It is informational; signups are not capped.
func (a Activity) SpotsLeft() int {
	n := a.MaxParticipants - len(a.Participants)
	if n < 0 {
		return 0
	}
	return n
}

func (a Activity) has(email string) bool {
	return slices.Contains(a.Participants, email)
}

func (a Activity) clone() Activity {
	a.Participants = append(make([]string, 0, len(a.Participants)), a.Participants...)
	return a
}

// Change describes the result of an accepted signup or unregister.
type Change struct {
	Message      string
	Email        string
	Participants int
	SpotsLeft    int
}

// Registry is the process-wide store of activities. A single lock serializes mutations.
type Registry struct {
	mu         sync.RWMutex
	activities map[string]*Activity
	observe    func(activity string, participants int)
}

// NewRegistry builds a Registry from seed data. Seeds are copied.
func NewRegistry(seed []Activity) (*Registry, error) {
	r := &Registry{activities: make(map[string]*Activity, len(seed))}
	for _, a := range seed {
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return nil, errors.New("activity name is required")
		}
		if _, dup := r.activities[name]; dup {
			return nil, fmt.Errorf("duplicate activity %q", name)
		}
		if a.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max_participants must be > 0", name)
		}
		c := a.clone()
		c.Name = name
		c.Participants = c.Participants[:0]
		for _, p := range a.Participants {
			p = strings.TrimSpace(p)
			if p == "" || c.has(p) {
				return nil, fmt.Errorf("activity %q: invalid or duplicate participant %q", name, p)
			}
			c.Participants = append(c.Participants, p)
		}
		r.activities[name] = &c
	}
	return r, nil
}

// List returns a copy of every activity keyed by name.
func (r *Registry) List() map[string]Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Activity, len(r.activities))
	for name, a := range r.activities {
		out[name] = a.clone()
	}
	return out
}

// Observe registers fn to receive participant counts. fn is called once per
// activity immediately and then after every accepted mutation, with the
// registry lock held, so counts arrive in commit order.
func (r *Registry) Observe(fn func(activity string, participants int)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.observe = fn
	if fn == nil {
		return
	}
	for name, a := range r.activities {
		fn(name, len(a.Participants))
	}
}

// Get returns a copy of a single activity.
func (r *Registry) Get(name string) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return Activity{}, ErrActivityNotFound
	}
	return a.clone(), nil
}

// SignUp appends email, trimmed of surrounding space, to the activity's participants.
func (r *Registry) SignUp(name, email string) (Change, error) {
	email = strings.TrimSpace(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return Change{}, ErrActivityNotFound
	}
	if email == "" {
		return Change{}, ErrMissingEmail
	}
	if a.has(email) {
		return Change{}, ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return r.changed(a, email, fmt.Sprintf("Signed up %s for %s", email, name)), nil
}

// Unregister removes email from the activity's participants, keeping the order of the rest.
func (r *Registry) Unregister(name, email string) (Change, error) {
	email = strings.TrimSpace(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return Change{}, ErrActivityNotFound
	}
	if email == "" {
		return Change{}, ErrMissingEmail
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return Change{}, ErrNotSignedUp
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return r.changed(a, email, fmt.Sprintf("Unregistered %s from %s", email, name)), nil
}

// changed must be called with r.mu held.
func (r *Registry) changed(a *Activity, email, msg string) Change {
	if r.observe != nil {
		r.observe(a.Name, len(a.Participants))
	}
	return Change{
		Message:      msg,
		Email:        email,
		Participants: len(a.Participants),
		SpotsLeft:    a.SpotsLeft(),
	}
}
