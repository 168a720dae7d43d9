// internal/config/paths_test.go
package config

import (
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func TestDir_HonorsXDGOverride(t *testing.T) {
	tmp := t.TempDir()

	// Re-resolve with the real environment once the override is undone.
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", tmp)
	xdg.Reload()

	want := filepath.Join(tmp, "clipzen")
	if got := Dir(); got != want {
		t.Fatalf("Dir()=%q want %q", got, want)
	}
}
