// internal/config/paths.go
package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDirName = "clipzen"

// Dir returns the per-user configuration directory.
// XDG_CONFIG_HOME overrides the platform default via the xdg package.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, appDirName)
}
