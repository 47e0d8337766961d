package pagebuilder

import (
	"errors"
	"strings"

	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-pagebuilder/pkg/interfaces"
)

var (
	ErrLoggingLevelInvalid  = errors.New("pagebuilder: logging level is invalid")
	ErrLoggingFormatInvalid = errors.New("pagebuilder: logging format is invalid")
	ErrCacheRequiresBackend = errors.New("pagebuilder: cache serializer configured without a cache service")
)

// Config drives module construction. A nil DB selects the in-memory stores,
// which is how tests and the preview tool run.
type Config struct {
	DB       *bun.DB
	Logging  LoggingConfig
	Cache    CacheConfig
	Media    MediaConfig
	Markdown MarkdownConfig
}

// LoggingConfig selects the logger the module emits through. When Provider
// is set the remaining fields are ignored.
type LoggingConfig struct {
	Provider interfaces.LoggerProvider
	Level    string
	Format   string
}

// CacheConfig enables read-through caching on the SQL repositories.
type CacheConfig struct {
	Service       cache.CacheService
	KeySerializer cache.KeySerializer
}

// MediaConfig wires the resolver used to turn media public IDs into URLs.
// A nil Resolver keeps public IDs as-is.
type MediaConfig struct {
	Resolver interfaces.MediaResolver
}

// MarkdownConfig toggles the Markdown import pipeline.
type MarkdownConfig struct {
	Enabled bool
}

// DefaultConfig returns a configuration suitable for embedding in tests:
// in-memory stores, console logging at info, no cache.
func DefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Markdown: MarkdownConfig{Enabled: true},
	}
}

// Validate reports configuration combinations the module cannot honour.
func (c Config) Validate() error {
	if c.Logging.Provider == nil {
		switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
		case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
		default:
			return ErrLoggingLevelInvalid
		}
		switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
		case "", "json", "console", "pretty":
		default:
			return ErrLoggingFormatInvalid
		}
	}
	if c.Cache.KeySerializer != nil && c.Cache.Service == nil {
		return ErrCacheRequiresBackend
	}
	return nil
}
