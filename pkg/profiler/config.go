package profiler

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/devicekit/pkg/config"
	"github.com/dmitrymomot/devicekit/pkg/host"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
	"github.com/dmitrymomot/devicekit/pkg/viewport"
)

// ServiceName is reported as the "service" log attribute.
const ServiceName = "devicekit"

// Config holds profiler settings read from DEVICEKIT_* environment variables.
type Config struct {
	MobileMaxWidth int `env:"DEVICEKIT_MOBILE_MAX_WIDTH" envDefault:"425"`
	TabletMaxWidth int `env:"DEVICEKIT_TABLET_MAX_WIDTH" envDefault:"1024"`

	// Facts used when the host environment does not report them.
	DefaultUserAgent  string `env:"DEVICEKIT_DEFAULT_USER_AGENT"`
	DefaultLanguage   string `env:"DEVICEKIT_DEFAULT_LANGUAGE" envDefault:"en-US"`
	DefaultDarkScheme bool   `env:"DEVICEKIT_DEFAULT_DARK_SCHEME" envDefault:"false"`

	// Viewport assumed until the client sends Sec-CH-Viewport-* hints,
	// which browsers only do after seeing Accept-CH.
	DefaultViewportWidth  int `env:"DEVICEKIT_DEFAULT_VIEWPORT_WIDTH" envDefault:"1280"`
	DefaultViewportHeight int `env:"DEVICEKIT_DEFAULT_VIEWPORT_HEIGHT" envDefault:"800"`

	// TablesFile points to a YAML file overriding the detection tables.
	TablesFile string `env:"DEVICEKIT_TABLES_FILE"`

	SubscriberBuffer int `env:"DEVICEKIT_SUBSCRIBER_BUFFER" envDefault:"1"`

	AppEnv    string `env:"DEVICEKIT_APP_ENV" envDefault:"development"`
	LogLevel  string `env:"DEVICEKIT_LOG_LEVEL"`
	LogFormat string `env:"DEVICEKIT_LOG_FORMAT"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Breakpoints returns the configured width thresholds.
func (c Config) Breakpoints() viewport.Breakpoints {
	return viewport.Breakpoints{
		MobileMaxWidth: c.MobileMaxWidth,
		TabletMaxWidth: c.TabletMaxWidth,
	}
}

// Fallback returns an environment holding the configured defaults. It is
// meant as the fallback for Middleware.
func (c Config) Fallback() *host.Static {
	return host.NewStatic(
		c.DefaultUserAgent,
		c.DefaultViewportWidth,
		c.DefaultViewportHeight,
		c.DefaultLanguage,
		c.DefaultDarkScheme,
	)
}

// Logger builds a logger for the configured environment, level and format.
func (c Config) Logger(out io.Writer, extractors ...logger.ContextExtractor) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(c.AppEnv, ServiceName),
		logger.WithOutput(out),
		logger.WithContextExtractors(extractors...),
	}
	if c.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(c.LogLevel))
	}
	if c.LogFormat != "" {
		switch f := logger.Format(c.LogFormat); f {
		case logger.FormatJSON, logger.FormatText:
			opts = append(opts, logger.WithFormat(f))
		default:
			return nil, fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.LogFormat)
		}
	}
	return logger.New(opts...), nil
}

// Options converts the config into profiler options. The tables file is
// read here, once, so the options can be reused for every session.
func (c Config) Options(log *slog.Logger) ([]Option, error) {
	if c.MobileMaxWidth > c.TabletMaxWidth {
		return nil, fmt.Errorf("%w: mobile max width %d exceeds tablet max width %d",
			ErrInvalidConfig, c.MobileMaxWidth, c.TabletMaxWidth)
	}

	tables, err := useragent.LoadTablesFile(c.TablesFile)
	if err != nil {
		return nil, err
	}

	return []Option{
		WithBreakpoints(c.Breakpoints()),
		WithTables(tables),
		WithBufferSize(c.SubscriberBuffer),
		WithLogger(log),
	}, nil
}

// NewFromConfig creates a profiler for env using cfg.
func NewFromConfig(cfg Config, env host.Environment, log *slog.Logger) (*Profiler, error) {
	opts, err := cfg.Options(log)
	if err != nil {
		return nil, err
	}
	return New(env, opts...), nil
}
