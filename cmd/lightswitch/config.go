package main

import "errors"

// Config drives the demo run. Values come from the environment or a .env file.
type Config struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	Lights    int    `env:"LIGHTS" envDefault:"3"`
	Steps     int    `env:"STEPS" envDefault:"10"`
	TraceFile string `env:"TRACE_FILE"`
}

var (
	ErrNoLights = errors.New("lightswitch: LIGHTS must be positive")
	ErrNoSteps  = errors.New("lightswitch: STEPS must not be negative")
)

func (c Config) validate() error {
	if c.Lights <= 0 {
		return ErrNoLights
	}
	if c.Steps < 0 {
		return ErrNoSteps
	}
	return nil
}
