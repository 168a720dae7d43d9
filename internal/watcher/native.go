// internal/watcher/native.go
package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// NativeSource is the push-notification backend on fsnotify. Same contract
// as the polling backend, lower latency, filesystem-dependent reliability.
type NativeSource struct {
	fw     *fsnotify.Watcher
	events chan Event
}

// NewNative registers the paths with fsnotify and starts the relay.
func NewNative(paths ...string) (*NativeSource, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watcher: %w", err)
	}
	for _, p := range paths {
		if err := fw.Add(p); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watcher: watch %s: %w", p, err)
		}
	}

	s := &NativeSource{
		fw:     fw,
		events: make(chan Event, eventBuffer),
	}
	go s.run()
	return s, nil
}

func (s *NativeSource) Events() <-chan Event {
	return s.events
}

func (s *NativeSource) Close() error {
	return s.fw.Close()
}

func (s *NativeSource) run() {
	defer close(s.events)

	for {
		select {
		case ev, ok := <-s.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			select {
			case s.events <- Event{Path: ev.Name}:
			default:
				// Consumer is behind and the buffer is full; the event
				// is dropped rather than blocking Close.
			}
		case _, ok := <-s.fw.Errors:
			if !ok {
				return
			}
			// Transient backend errors carry no event; the consumer only
			// reacts to events and to channel death.
		}
	}
}
