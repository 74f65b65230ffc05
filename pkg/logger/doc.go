// Package logger builds *slog.Logger values for fsmkit binaries and keeps
// attribute names consistent across packages.
//
// New assembles a slog handler from functional options: output format (text
// or JSON), level, static attributes and ContextExtractor callbacks that pull
// values such as a run id out of context.Context on every record.
//
// Attribute helpers (Component, Machine, State, FromState, ToState, EventType,
// ListenerHandle, ...) return slog.Attr values with fixed keys so the state
// machine and event queue packages log in the same vocabulary.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "lightswitch"),
//	    logger.WithLevelName(cfg.LogLevel),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	)
//	log.InfoContext(ctx, "run finished", logger.Count(n))
//
// Error and Errors return an empty attribute for nil errors so they can be
// passed unconditionally.
package logger
