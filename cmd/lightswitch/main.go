// Command lightswitch drives a handful of light switch state machines through
// the event bus for a fixed number of steps and optionally writes the
// transition trace as YAML.
package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/fsmkit/pkg/config"
	"github.com/dmitrymomot/fsmkit/pkg/logger"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "lightswitch"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	logger.SetAsDefault(log)

	if _, err := run(context.Background(), cfg, log); err != nil {
		log.Error("run failed", logger.Error(err))
		os.Exit(1)
	}
}
