package manifest

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed default.toml
var defaultManifest []byte

// Config is the top-level manifest: HTTP routes, seed activities and event publishing.
type Config struct {
	Routes     []Route    `toml:"route"`
	Activities []Activity `toml:"activity"`
	Events     *Events    `toml:"events"`
}

// Parse decodes and validates a TOML manifest.
func Parse(b []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("manifest decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Default returns the built-in manifest with the school's activity catalog.
func Default() (Config, error) { return Parse(defaultManifest) }

func (c *Config) Validate() error {
	if len(c.Routes) == 0 {
		return errors.New("no routes defined")
	}
	if err := c.validateRoutes(); err != nil {
		return err
	}

	names := make(map[string]struct{}, len(c.Activities))
	for i, a := range c.Activities {
		if err := a.validate(); err != nil {
			return fmt.Errorf("activity %d (%s): %w", i, a.Name, err)
		}
		n := strings.TrimSpace(a.Name)
		if _, dup := names[n]; dup {
			return fmt.Errorf("activity %d: duplicate name %q", i, n)
		}
		names[n] = struct{}{}
	}

	if err := c.Events.validate(); err != nil {
		return err
	}
	return nil
}
