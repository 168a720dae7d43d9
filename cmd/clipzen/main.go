// cmd/clipzen/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"clipzen/internal/agent"
	"clipzen/internal/clipboard"
	"clipzen/internal/config"
	xlog "clipzen/internal/log"
	"clipzen/internal/watcher"
)

const (
	tickInterval    = time.Second
	backoffInterval = 3 * time.Second
	watchInterval   = 2 * time.Second
)

func main() {
	xlog.Configure(xlog.Config{})
	log := xlog.WithComponent("main")

	// --------------------
	// First-run bootstrap + initial config
	// --------------------

	dir := config.Dir()
	if err := config.EnsureDefaults(dir); err != nil {
		log.Fatal().Err(err).Msg("default config bootstrap failed")
	}

	replPath := filepath.Join(dir, config.ReplacementsFile)
	exclPath := filepath.Join(dir, config.ExclusionsFile)

	// --------------------
	// Build the agent (startup failures are fatal)
	// --------------------

	a, err := agent.New(agent.Config{
		ReplacementsPath: replPath,
		ExclusionsPath:   exclPath,
		Clipboard:        clipboard.System,
		Watcher: func() (watcher.Source, error) {
			return watcher.New(watchInterval, replPath, exclPath)
		},
		Intervals: agent.Intervals{
			Tick:    tickInterval,
			Backoff: backoffInterval,
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	// --------------------
	// Run until killed
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Str("config_dir", dir).Msg("clipzen running")
	a.Run(ctx)
}
