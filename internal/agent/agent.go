// internal/agent/agent.go
package agent

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"clipzen/internal/clipboard"
	"clipzen/internal/config"
	xlog "clipzen/internal/log"
	"clipzen/internal/watcher"
)

// Intervals groups the loop timing knobs.
type Intervals struct {
	// Tick is the fixed sleep between iterations. It bounds polling CPU
	// usage and is the loop's only cancellation point.
	Tick time.Duration
	// Backoff is the extra sleep added to a tick whose clipboard reopen
	// failed, so a persistently broken clipboard is not busy-retried.
	Backoff time.Duration
}

// Config wires an Agent.
type Config struct {
	ReplacementsPath string
	ExclusionsPath   string

	// Clipboard dials one connection per call; Watcher builds one source
	// per call. The agent redials both through these after a death.
	Clipboard clipboard.Factory
	Watcher   func() (watcher.Source, error)

	Intervals Intervals
}

// Agent owns all mutable loop state: the config snapshot, the clipboard
// connection, the watcher and the per-file load states. Everything runs on
// the single loop goroutine, so there are no locks.
type Agent struct {
	cfg Config
	log zerolog.Logger

	conn  clipboard.Conn
	watch watcher.Source

	rules   []config.Replacement
	exclude config.Exclusions

	replState config.FileState
	exclState config.FileState

	// backoff requests the extended sleep for the current tick only.
	backoff bool
}

// New performs the startup sequence: initial config load, probed clipboard
// open, watcher construction. Any failure here is fatal to the caller;
// past this point the agent absorbs every error.
func New(cfg Config) (*Agent, error) {
	if cfg.Intervals.Tick <= 0 {
		cfg.Intervals.Tick = time.Second
	}
	if cfg.Intervals.Backoff <= 0 {
		cfg.Intervals.Backoff = 3 * time.Second
	}

	a := &Agent{
		cfg: cfg,
		log: xlog.WithComponent("agent"),
	}

	rules, err := config.LoadReplacements(cfg.ReplacementsPath)
	if err != nil {
		return nil, err
	}
	exclude, err := config.LoadExclusions(cfg.ExclusionsPath)
	if err != nil {
		return nil, err
	}
	a.rules = rules
	a.exclude = exclude
	a.replState.MarkSuccess(config.FingerprintReplacements(rules))
	a.exclState.MarkSuccess(config.FingerprintExclusions(exclude))

	conn, err := clipboard.Open(cfg.Clipboard)
	if err != nil {
		return nil, err
	}
	a.conn = conn

	w, err := cfg.Watcher()
	if err != nil {
		return nil, err
	}
	a.watch = w

	return a, nil
}

// Run executes ticks until ctx is done. The agent never stops itself: a
// runtime failure is logged and the next tick retries.
func (a *Agent) Run(ctx context.Context) {
	a.log.Info().
		Str("event", "agent.started").
		Int("rules", len(a.rules)).
		Int("exclusions", len(a.exclude)).
		Msg("agent running")

	for {
		a.Tick()

		sleep := a.cfg.Intervals.Tick
		if a.backoff {
			a.backoff = false
			sleep += a.cfg.Intervals.Backoff
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(sleep):
		}
	}
}
