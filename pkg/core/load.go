// pkg/core/load.go
package core

import (
	"os"

	manifest "github.com/joeydtaylor/steeze-activities/pkg/manifest"
)

// LoadConfig reads the manifest at path, or the built-in one when path is empty.
func LoadConfig(path string) (manifest.Config, error) {
	if path == "" {
		return manifest.Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return manifest.Config{}, err
	}
	return manifest.Parse(b)
}
