// internal/config/defaults.go
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	xlog "clipzen/internal/log"
)

//go:embed default_replacements.json
var defaultReplacements []byte

//go:embed default_exclusions.json
var defaultExclusions []byte

// EnsureDefaults creates dir if absent and writes the embedded default
// payload for any config file that does not exist yet. Existing files are
// never touched.
func EnsureDefaults(dir string) error {
	log := xlog.WithComponent("config")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: create directory %s: %w", dir, err)
	}

	defaults := []struct {
		name    string
		payload []byte
	}{
		{ReplacementsFile, defaultReplacements},
		{ExclusionsFile, defaultExclusions},
	}

	for _, d := range defaults {
		path := filepath.Join(dir, d.name)
		_, err := os.Stat(path)
		if err == nil {
			continue
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: stat %s: %w", path, err)
		}
		if err := os.WriteFile(path, d.payload, 0o644); err != nil {
			return fmt.Errorf("config: write default %s: %w", path, err)
		}
		log.Info().Str("event", "config.default_created").Str("path", path).Msg("created default config file")
	}
	return nil
}
