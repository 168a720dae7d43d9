// internal/agent/tick.go
package agent

import (
	"clipzen/internal/clipboard"
	"clipzen/internal/normalize"
)

// Tick runs exactly one loop iteration: the clipboard pass, then the
// config-event drain. Exported separately from Run so a single cycle is
// testable without the clock.
func (a *Agent) Tick() {
	a.clipboardPass()
	a.drainEvents()
}

// clipboardPass reads, normalizes and writes back when the result differs.
// A read failure discards the connection and redials; a write failure is
// logged and left for the next natural tick.
func (a *Agent) clipboardPass() {
	text, err := a.conn.Read()
	if err != nil {
		a.log.Warn().
			Err(err).
			Str("event", "clipboard.read_failed").
			Msg("clipboard read failed, reopening connection")
		a.reopenClipboard()
		return
	}

	formatted := normalize.Apply(text, a.rules, a.exclude)
	if formatted == text {
		return
	}

	a.log.Info().
		Str("event", "clipboard.rewritten").
		Msg("formatted\n" + normalize.HighlightDiff(text, formatted))

	if err := a.conn.Write(formatted); err != nil {
		a.log.Warn().
			Err(err).
			Str("event", "clipboard.write_failed").
			Msg("clipboard write failed")
	}
}

func (a *Agent) reopenClipboard() {
	conn, err := clipboard.Open(a.cfg.Clipboard)
	if err != nil {
		a.log.Warn().
			Err(err).
			Str("event", "clipboard.reopen_failed").
			Msg("clipboard reopen failed, backing off")
		a.backoff = true
		return
	}
	a.conn = conn
	a.log.Info().
		Str("event", "clipboard.reopened").
		Msg("clipboard connection reopened")
}
