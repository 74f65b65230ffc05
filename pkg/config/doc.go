// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for parsing into structs annotated with `env`
// tags. Each configuration type is parsed once and cached for the lifetime of
// the process.
//
//	type RunConfig struct {
//	    Env    string `env:"APP_ENV" envDefault:"development"`
//	    Lights int    `env:"LIGHTS" envDefault:"3"`
//	}
//
//	var cfg RunConfig
//	config.MustLoad(&cfg)
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
//
// Tests that change the environment between loads call ResetCache.
package config
