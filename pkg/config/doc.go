// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv for .env files with
// github.com/caarlos0/env/v11 for struct tag parsing. Each configuration type
// is parsed once and cached for the life of the process, so components can
// call Load freely.
//
// # Usage
//
//	type Env struct {
//	    MobileMaxWidth int    `env:"DEVICEKIT_MOBILE_MAX_WIDTH" envDefault:"425"`
//	    TablesFile     string `env:"DEVICEKIT_TABLES_FILE"`
//	}
//
//	if err := config.LoadEnv("./deploy/.env"); err != nil {
//	    return err
//	}
//
//	var cfg Env
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// LoadEnv applies files in order, later files overriding earlier ones. Load
// reads the working directory .env once on first use when it exists.
//
// # Errors
//
// ErrParsingConfig wraps failures from env.Parse and ErrLoadingEnvFile wraps
// unreadable .env files. A failed parse is not cached.
//
// # Tests
//
// ResetCache clears everything. ForceReloadConfig re-parses a single type
// after the environment has changed.
package config
