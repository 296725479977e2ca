package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromLookupDefaults(t *testing.T) {
	cfg := FromLookup(lookupFrom(nil), zerolog.Nop())

	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}

func TestFromLookup(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
		want func(c *Config)
	}{
		{
			name: "port from environment",
			env:  map[string]string{"PORT": "9090"},
			want: func(c *Config) { c.Port = 9090 },
		},
		{
			name: "empty port keeps default",
			env:  map[string]string{"PORT": ""},
			want: func(c *Config) {},
		},
		{
			name: "garbage port keeps default",
			env:  map[string]string{"PORT": "eighty"},
			want: func(c *Config) {},
		},
		{
			name: "negative upload limit keeps default",
			env:  map[string]string{"MAX_UPLOAD_MB": "-3"},
			want: func(c *Config) {},
		},
		{
			name: "everything set",
			env: map[string]string{
				"HOST":             "127.0.0.1",
				"PORT":             "8080",
				"LOG_LEVEL":        "debug",
				"GIN_MODE":         "debug",
				"APP_VERSION":      "2.0.0",
				"MAX_UPLOAD_MB":    "32",
				"SHUTDOWN_TIMEOUT": "3s",
			},
			want: func(c *Config) {
				c.Host = "127.0.0.1"
				c.Port = 8080
				c.LogLevel = "debug"
				c.GinMode = "debug"
				c.Version = "2.0.0"
				c.MaxUploadMB = 32
				c.ShutdownTimeout = 3 * time.Second
			},
		},
		{
			name: "unknown gin mode keeps default",
			env:  map[string]string{"GIN_MODE": "production"},
			want: func(c *Config) {},
		},
		{
			name: "bad duration keeps default",
			env:  map[string]string{"SHUTDOWN_TIMEOUT": "soon"},
			want: func(c *Config) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expected := Defaults()
			tc.want(&expected)

			assert.Equal(t, expected, FromLookup(lookupFrom(tc.env), zerolog.Nop()))
		})
	}
}

func TestFromLookupReportsSources(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	FromLookup(lookupFrom(map[string]string{"PORT": "9001", "HOST": "127.0.0.1"}), log)

	out := buf.String()
	assert.Contains(t, out, `"key":"PORT","value":9001,"source":"environment"`)
	assert.Contains(t, out, `"key":"HOST","value":"127.0.0.1","source":"environment"`)
	assert.Contains(t, out, `"key":"APP_VERSION","default":"1.0.0","source":"default"`)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=3.1.4\nPORT=7000\n"), 0o600))

	// restored after the test, unset while it runs
	t.Setenv("APP_VERSION", "")
	require.NoError(t, os.Unsetenv("APP_VERSION"))
	t.Setenv("PORT", "8181")

	require.NoError(t, LoadDotEnv(path))
	cfg := FromLookup(os.LookupEnv, zerolog.Nop())
	assert.Equal(t, "3.1.4", cfg.Version)
	assert.Equal(t, 8181, cfg.Port, "existing variables win over the file")

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}
