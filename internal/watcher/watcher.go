// internal/watcher/watcher.go
package watcher

import (
	"os"
	"time"
)

// Event reports a filesystem change on one registered path.
type Event struct {
	Path string
}

// Source produces change events for a fixed set of paths. A closed Events
// channel means the source died; the owner rebuilds it through its factory.
type Source interface {
	Events() <-chan Event
	Close() error
}

// Backend selection. Polling is the default: it trades detection latency
// for robustness on filesystems where native notification is unreliable.
const (
	backendEnv    = "CLIPZEN_WATCHER"
	backendNative = "native"
)

// eventBuffer bounds pending events between drains. The consumer drains
// every tick, so the buffer only has to absorb one burst.
const eventBuffer = 16

// New builds a Source for the given paths, honoring CLIPZEN_WATCHER.
func New(interval time.Duration, paths ...string) (Source, error) {
	if os.Getenv(backendEnv) == backendNative {
		return NewNative(paths...)
	}
	return NewPolling(interval, paths...)
}
