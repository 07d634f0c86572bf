package manifest

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Route describes a single HTTP route.
type Route struct {
	Path    string   `toml:"path"`
	Method  string   `toml:"method"`
	Policy  Policy   `toml:"policy"`
	Handler HSpec    `toml:"handler"`
	Tags    []string `toml:"tags"`
}

type Policy struct {
	TimeoutMS int `toml:"timeout_ms"`
}

type HSpec struct {
	Type   HandlerType `toml:"type"`
	Name   string      `toml:"name"`   // inproc: registered handler name
	Target string      `toml:"target"` // redirect: location
}

// normalize path/method
func (r *Route) normalize() error {
	if r.Path == "" {
		return errors.New("path is required")
	}
	if !strings.HasPrefix(r.Path, "/") {
		r.Path = "/" + r.Path
	}
	if r.Path != "/" {
		r.Path = path.Clean(r.Path)
	}
	r.Method = strings.ToUpper(strings.TrimSpace(r.Method))
	if r.Method == "" {
		r.Method = "GET"
	}
	return nil
}

func (r *Route) validate() error {
	switch r.Handler.Type {
	case HandlerInproc:
		if strings.TrimSpace(r.Handler.Name) == "" {
			return errors.New("handler.name required for inproc")
		}
	case HandlerRedirect:
		if strings.TrimSpace(r.Handler.Target) == "" {
			return errors.New("handler.target required for redirect")
		}
	default:
		return fmt.Errorf("unknown handler type %q", r.Handler.Type)
	}
	if r.Policy.TimeoutMS < 0 {
		return errors.New("policy.timeout_ms must be >= 0")
	}
	return nil
}
