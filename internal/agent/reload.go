// internal/agent/reload.go
package agent

import (
	"clipzen/internal/config"
)

// drainEvents consumes every pending watcher event without ever blocking.
// A closed events channel means the watcher died and must be rebuilt.
func (a *Agent) drainEvents() {
	for {
		select {
		case ev, ok := <-a.watch.Events():
			if !ok {
				a.rebuildWatcher()
				return
			}
			a.reload(ev.Path)
		default:
			return
		}
	}
}

// reload refreshes the config file behind path. A failed load keeps the
// last-known-good snapshot and reports once per failure streak; a
// successful load is applied only when the parsed content changed.
func (a *Agent) reload(path string) {
	switch path {
	case a.cfg.ReplacementsPath:
		rules, err := config.LoadReplacements(path)
		if err != nil {
			if a.replState.MarkFailure() {
				a.log.Warn().
					Err(err).
					Str("event", "reload.failed").
					Str("path", path).
					Msg("failed to load replacements, keeping previous")
			}
			return
		}
		if a.replState.MarkSuccess(config.FingerprintReplacements(rules)) {
			a.rules = rules
			a.log.Info().
				Str("event", "reload.applied").
				Str("path", path).
				Int("rules", len(rules)).
				Msg("replacements reloaded")
		}

	case a.cfg.ExclusionsPath:
		exclude, err := config.LoadExclusions(path)
		if err != nil {
			if a.exclState.MarkFailure() {
				a.log.Warn().
					Err(err).
					Str("event", "reload.failed").
					Str("path", path).
					Msg("failed to load exclusions, keeping previous")
			}
			return
		}
		if a.exclState.MarkSuccess(config.FingerprintExclusions(exclude)) {
			a.exclude = exclude
			a.log.Info().
				Str("event", "reload.applied").
				Str("path", path).
				Int("exclusions", len(exclude)).
				Msg("exclusions reloaded")
		}
	}
}

// rebuildWatcher replaces a dead watcher through the factory. A failed
// rebuild leaves the dead source in place; its closed channel re-triggers
// this path on the next tick.
func (a *Agent) rebuildWatcher() {
	a.log.Warn().
		Str("event", "watcher.disconnected").
		Msg("watcher channel closed, rebuilding")

	_ = a.watch.Close()

	w, err := a.cfg.Watcher()
	if err != nil {
		a.log.Warn().
			Err(err).
			Str("event", "watcher.rebuild_failed").
			Msg("watcher rebuild failed, retrying next tick")
		return
	}
	a.watch = w
	a.log.Info().
		Str("event", "watcher.rebuilt").
		Msg("watcher rebuilt")
}
