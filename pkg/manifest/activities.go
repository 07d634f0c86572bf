package manifest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeydtaylor/steeze-activities/pkg/activity"
)

// Activity is a seed entry for the registry.
type Activity struct {
	Name            string   `toml:"name"`
	Description     string   `toml:"description"`
	Schedule        string   `toml:"schedule"`
	MaxParticipants int      `toml:"max_participants"`
	Participants    []string `toml:"participants"`
}

func (a Activity) validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return errors.New("name is required")
	}
	if a.MaxParticipants <= 0 {
		return errors.New("max_participants must be > 0")
	}
	seen := make(map[string]struct{}, len(a.Participants))
	for _, p := range a.Participants {
		p = strings.TrimSpace(p)
		if p == "" {
			return errors.New("participants must not be blank")
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("participant %q listed twice", p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Seed converts the manifest activities into registry seed data.
func (c Config) Seed() []activity.Activity {
	out := make([]activity.Activity, 0, len(c.Activities))
	for _, a := range c.Activities {
		out = append(out, activity.Activity{
			Name:            strings.TrimSpace(a.Name),
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    append([]string(nil), a.Participants...),
		})
	}
	return out
}
