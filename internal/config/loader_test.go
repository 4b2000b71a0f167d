package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/atlanticdynamic/prepop/internal/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
version = "v1"

[logging]
format = "json"
level = "debug"

[listener]
address = "127.0.0.1:9090"
read_timeout = "2s"
write_timeout = "3s"
idle_timeout = "1m"
drain_timeout = "500ms"

[listener.headers]
remove = ["Server"]

[listener.headers.set]
"X-Frame-Options" = "DENY"

[prepopulate]
flag = "fill"

[actions.SET_GIVEN]
field = "firstName"
value = "Grace"

[actions.SET_FAMILY]
field = "surname"
value = "Hopper"

[routes]
given = ["SET_GIVEN"]
full = ["SET_GIVEN", "SET_FAMILY"]
`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewConfigFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfigFromBytes([]byte(fullConfig))
		require.NoError(t, err)

		assert.Equal(t, VersionLatest, cfg.Version)
		assert.Equal(t, LogFormatJSON, cfg.Logging.Format)
		assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
		assert.Equal(t, "127.0.0.1:9090", cfg.Listener.Address)
		assert.Equal(t, 2*time.Second, cfg.Listener.ReadTimeout.AsDuration())
		assert.Equal(t, 3*time.Second, cfg.Listener.WriteTimeout.AsDuration())
		assert.Equal(t, time.Minute, cfg.Listener.IdleTimeout.AsDuration())
		assert.Equal(t, 500*time.Millisecond, cfg.Listener.DrainTimeout.AsDuration())
		assert.Equal(t, "fill", cfg.PrePopulate.Flag)
		assert.Equal(t, HeadersConfig{
			Set:    map[string]string{"X-Frame-Options": "DENY"},
			Remove: []string{"Server"},
		}, cfg.Listener.Headers)

		assert.Equal(t, []string{"full", "given"}, cfg.RouteKeys())
		assert.Equal(t, []string{"SET_GIVEN", "SET_FAMILY"}, cfg.Routes["full"])
		assert.Equal(t, Action{Field: "surname", Value: "Hopper"}, cfg.Actions["SET_FAMILY"])
	})

	t.Run("minimal config gets defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfigFromBytes([]byte(`version = "v1"`))
		require.NoError(t, err)

		assert.Equal(t, LogFormatText, cfg.Logging.Format)
		assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
		assert.Equal(t, DefaultListenAddr, cfg.Listener.Address)
		assert.Equal(t, "pre-populate", cfg.PrePopulate.Flag)
		assert.Equal(t, DefaultHeaders(), cfg.Listener.Headers)
		assert.Equal(t, resolver.DefaultTable(), cfg.Table())
	})

	t.Run("missing version is latest", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfigFromBytes([]byte("[logging]\nlevel = \"warn\"\n"))
		require.NoError(t, err)
		assert.Equal(t, VersionLatest, cfg.Version)
	})

	t.Run("routes without defaults replace the table", func(t *testing.T) {
		t.Parallel()
		cfg, err := NewConfigFromBytes([]byte(`
[actions.SET_SURNAME]
field = "surname"
value = "Burford"
[routes]
surname = ["SET_SURNAME"]
`))
		require.NoError(t, err)
		assert.Len(t, cfg.Actions, 1)
		assert.Equal(t, []string{"surname"}, cfg.RouteKeys())
	})

	tests := []struct {
		name    string
		input   string
		wantErr []error
		msg     string
	}{
		{
			name:    "empty",
			input:   "  \n",
			wantErr: []error{ErrFailedToLoadConfig, ErrNoSourceData},
		},
		{
			name:    "unsupported version",
			input:   `version = "v2"`,
			wantErr: []error{ErrFailedToLoadConfig, ErrUnsupportedConfigVer},
			msg:     "unsupported config version: v2",
		},
		{
			name:    "broken toml",
			input:   `version = `,
			wantErr: []error{ErrFailedToLoadConfig, ErrParseToml},
		},
		{
			name:    "unknown key",
			input:   "[listner]\naddress = \":1\"\n",
			wantErr: []error{ErrFailedToLoadConfig, ErrParseToml},
		},
		{
			name:    "bad duration",
			input:   "[listener]\nread_timeout = \"soon\"\n",
			wantErr: []error{ErrFailedToLoadConfig, ErrParseToml},
		},
		{
			name: "dangling action",
			input: `
[actions.SET_FIRSTNAME]
field = "firstName"
value = "Martin"
[routes]
surname = ["SET_FIRSTNAME", "SET_SURNAME"]
`,
			wantErr: []error{ErrFailedToValidateConfig, resolver.ErrConfigIntegrity},
			msg:     `route "surname" step 2 references undefined action "SET_SURNAME"`,
		},
		{
			name:    "bad log level",
			input:   "[logging]\nlevel = \"loud\"\n",
			wantErr: []error{ErrFailedToValidateConfig, ErrInvalidValue},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := NewConfigFromBytes([]byte(tt.input))
			require.Error(t, err)
			assert.Nil(t, cfg)
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
			if tt.msg != "" {
				assert.Contains(t, err.Error(), tt.msg)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads a file", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "prepop.toml", fullConfig)
		cfg, err := NewConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "fill", cfg.PrePopulate.Flag)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := NewConfig(filepath.Join(t.TempDir(), "nope.toml"))
		require.ErrorIs(t, err, ErrFailedToLoadConfig)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "prepop.yaml", fullConfig)
		_, err := NewConfig(path)
		require.ErrorIs(t, err, ErrFailedToLoadConfig)
		assert.Contains(t, err.Error(), "only .toml is supported")
	})
}

func TestNewConfigFromReader(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfigFromReader(strings.NewReader(fullConfig))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Listener.Address)
}
