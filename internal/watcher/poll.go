// internal/watcher/poll.go
package watcher

import (
	"errors"
	"os"
	"sync"
	"time"
)

// PollingSource stats its paths on a fixed interval and emits one event per
// path whose stamp changed, batched per tick. Changes between construction
// and the first tick are detected against the construction-time baseline.
type PollingSource struct {
	interval time.Duration
	paths    []string
	seen     map[string]stamp

	events    chan Event
	done      chan struct{}
	closeOnce sync.Once
}

// stamp is the change fingerprint of one path. A missing file is the zero
// stamp, so create and delete both register as changes.
type stamp struct {
	modTime time.Time
	size    int64
	exists  bool
}

// NewPolling registers the paths and starts the tick goroutine.
func NewPolling(interval time.Duration, paths ...string) (*PollingSource, error) {
	if interval <= 0 {
		return nil, errors.New("watcher: interval must be > 0")
	}
	if len(paths) == 0 {
		return nil, errors.New("watcher: at least one path required")
	}

	s := &PollingSource{
		interval: interval,
		paths:    paths,
		seen:     make(map[string]stamp, len(paths)),
		events:   make(chan Event, eventBuffer),
		done:     make(chan struct{}),
	}
	for _, p := range paths {
		s.seen[p] = statPath(p)
	}

	go s.run()
	return s, nil
}

func (s *PollingSource) Events() <-chan Event {
	return s.events
}

func (s *PollingSource) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

func (s *PollingSource) run() {
	defer close(s.events)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			for _, ev := range s.scan() {
				select {
				case s.events <- ev:
				case <-s.done:
					return
				}
			}
		}
	}
}

// scan computes the change batch for one tick and advances the baseline.
func (s *PollingSource) scan() []Event {
	var batch []Event
	for _, p := range s.paths {
		cur := statPath(p)
		if cur != s.seen[p] {
			s.seen[p] = cur
			batch = append(batch, Event{Path: p})
		}
	}
	return batch
}

func statPath(path string) stamp {
	fi, err := os.Stat(path)
	if err != nil {
		return stamp{}
	}
	return stamp{modTime: fi.ModTime(), size: fi.Size(), exists: true}
}
