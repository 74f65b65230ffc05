package eventqueue

import (
	"log/slog"
	"reflect"
	"strings"
)

const defaultCapacity = 16

// Option configures a Queue or a Bus. Options given to a Bus apply to every
// queue it creates.
type Option func(*config)

type config struct {
	logger   *slog.Logger
	capacity int
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		logger:   slog.Default(),
		capacity: defaultCapacity,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger used for registration and dispatch diagnostics.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCapacity preallocates the pending-event buffer.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

func typeName[E any]() string {
	return strings.TrimLeft(reflect.TypeFor[E]().String(), "*")
}
