package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the process level settings read from the environment
type Config struct {
	Host            string
	Port            int
	LogLevel        string
	GinMode         string
	Version         string
	MaxUploadMB     int64
	ShutdownTimeout time.Duration
}

// Addr returns the address the HTTP server listens on
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// Defaults returns the configuration used when no variable is set
func Defaults() Config {
	return Config{
		Host:            "0.0.0.0",
		Port:            8000,
		LogLevel:        "info",
		GinMode:         "release",
		Version:         "1.0.0",
		MaxUploadMB:     8,
		ShutdownTimeout: 10 * time.Second,
	}
}

// LoadDotEnv copies an optional .env file into the process environment
// without overriding variables that are already set
func LoadDotEnv(filenames ...string) error {
	// a missing .env is the normal case outside of local development
	if err := godotenv.Load(filenames...); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FromLookup builds a Config from an arbitrary lookup function. Values that
// cannot be parsed fall back to their default
func FromLookup(lookup func(string) (string, bool), logger zerolog.Logger) Config {
	def := Defaults()
	p := parser{lookup: lookup, logger: logger}

	return Config{
		Host:            p.str("HOST", def.Host),
		Port:            p.integer("PORT", def.Port),
		LogLevel:        p.str("LOG_LEVEL", def.LogLevel),
		GinMode:         p.oneOf("GIN_MODE", def.GinMode, "debug", "release", "test"),
		Version:         p.str("APP_VERSION", def.Version),
		MaxUploadMB:     int64(p.integer("MAX_UPLOAD_MB", int(def.MaxUploadMB))),
		ShutdownTimeout: p.duration("SHUTDOWN_TIMEOUT", def.ShutdownTimeout),
	}
}

type parser struct {
	lookup func(string) (string, bool)
	logger zerolog.Logger
}

func (p parser) raw(key string) (string, bool) {
	v, ok := p.lookup(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (p parser) str(key, def string) string {
	v, ok := p.raw(key)
	if !ok {
		p.logger.Debug().Str("key", key).Str("default", def).Str("source", "default").Msg("using default value")
		return def
	}
	p.logger.Debug().Str("key", key).Str("value", v).Str("source", "environment").Msg("using environment variable")
	return v
}

func (p parser) oneOf(key, def string, allowed ...string) string {
	v := p.str(key, def)
	for _, a := range allowed {
		if v == a {
			return v
		}
	}
	p.logger.Warn().Str("key", key).Str("value", v).Strs("allowed", allowed).Msg("unsupported value, using default")
	return def
}

func (p parser) integer(key string, def int) int {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		p.logger.Warn().Str("key", key).Str("value", v).Int("default", def).Msg("invalid integer, using default")
		return def
	}
	p.logger.Debug().Str("key", key).Int("value", i).Str("source", "environment").Msg("using environment variable")
	return i
}

func (p parser) duration(key string, def time.Duration) time.Duration {
	v, ok := p.raw(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		p.logger.Warn().Str("key", key).Str("value", v).Dur("default", def).Msg("invalid duration, using default")
		return def
	}
	p.logger.Debug().Str("key", key).Dur("value", d).Str("source", "environment").Msg("using environment variable")
	return d
}
