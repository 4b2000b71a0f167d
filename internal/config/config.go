// Package config loads and validates the prepop server configuration: the
// listener, logging, the pre-population flag, and the route and action tables.
package config

import (
	"maps"
	"slices"
	"time"

	"github.com/atlanticdynamic/prepop/internal/resolver"
	"github.com/atlanticdynamic/prepop/internal/store"
)

const (
	VersionLatest  = "v1"
	VersionUnknown = "unknown"

	DefaultListenAddr = ":8080"
)

// Config is the whole server configuration as read from TOML.
type Config struct {
	Version     string              `toml:"version"`
	Logging     LoggingConfig       `toml:"logging"`
	Listener    ListenerConfig      `toml:"listener"`
	PrePopulate PrePopulateConfig   `toml:"prepopulate"`
	Actions     map[string]Action   `toml:"actions"`
	Routes      map[string][]string `toml:"routes"`
}

// ListenerConfig describes the HTTP listener.
type ListenerConfig struct {
	Address      string   `toml:"address"       env:"PREPOP_LISTEN_ADDR"`
	ReadTimeout  Duration `toml:"read_timeout"  env:"PREPOP_READ_TIMEOUT"`
	WriteTimeout Duration `toml:"write_timeout" env:"PREPOP_WRITE_TIMEOUT"`
	IdleTimeout  Duration `toml:"idle_timeout"  env:"PREPOP_IDLE_TIMEOUT"`
	DrainTimeout Duration `toml:"drain_timeout" env:"PREPOP_DRAIN_TIMEOUT"`

	Headers HeadersConfig `toml:"headers"`
}

// PrePopulateConfig holds the query flag that triggers pre-population.
type PrePopulateConfig struct {
	Flag string `toml:"flag" env:"PREPOP_FLAG"`
}

// Action is one preset update as written in TOML.
type Action struct {
	Field string `toml:"field"`
	Value string `toml:"value"`
}

// Default returns a complete configuration using the built-in action table.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// applyDefaults fills in every unset value. The route and action tables are
// only defaulted when the file defines neither; a file that defines one
// replaces the built-in table entirely.
func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = VersionLatest
	}
	if c.Logging.Format == LogFormatUnspecified {
		c.Logging.Format = LogFormatText
	}
	if c.Logging.Level == LogLevelUnspecified {
		c.Logging.Level = LogLevelInfo
	}
	if c.Listener.Address == "" {
		c.Listener.Address = DefaultListenAddr
	}
	if c.Listener.ReadTimeout == 0 {
		c.Listener.ReadTimeout = Duration(10 * time.Second)
	}
	if c.Listener.WriteTimeout == 0 {
		c.Listener.WriteTimeout = Duration(10 * time.Second)
	}
	if c.Listener.IdleTimeout == 0 {
		c.Listener.IdleTimeout = Duration(60 * time.Second)
	}
	if c.Listener.DrainTimeout == 0 {
		c.Listener.DrainTimeout = Duration(5 * time.Second)
	}
	if c.Listener.Headers.IsEmpty() {
		c.Listener.Headers = DefaultHeaders()
	}
	if c.PrePopulate.Flag == "" {
		c.PrePopulate.Flag = "pre-populate"
	}
	if len(c.Actions) == 0 && len(c.Routes) == 0 {
		c.setTable(resolver.DefaultTable())
	}
}

func (c *Config) setTable(t resolver.Table) {
	c.Actions = make(map[string]Action, len(t.Actions))
	for id, a := range t.Actions {
		c.Actions[string(id)] = Action{Field: a.Field.String(), Value: a.Value}
	}
	c.Routes = make(map[string][]string, len(t.Routes))
	for key, seq := range t.Routes {
		ids := make([]string, len(seq))
		for i, id := range seq {
			ids[i] = string(id)
		}
		c.Routes[key] = ids
	}
}

// Table converts the configured actions and routes into a resolver.Table.
// Field names are copied as-is; validity is checked by Validate.
func (c *Config) Table() resolver.Table {
	t := resolver.Table{
		Actions: make(map[resolver.ActionID]resolver.Action, len(c.Actions)),
		Routes:  make(map[string][]resolver.ActionID, len(c.Routes)),
	}
	for id, a := range c.Actions {
		t.Actions[resolver.ActionID(id)] = resolver.Action{
			Field: store.FieldID(a.Field),
			Value: a.Value,
		}
	}
	for key, seq := range c.Routes {
		ids := make([]resolver.ActionID, len(seq))
		for i, id := range seq {
			ids[i] = resolver.ActionID(id)
		}
		t.Routes[key] = ids
	}
	return t
}

// RouteKeys returns the configured route keys, sorted.
func (c *Config) RouteKeys() []string {
	return slices.Sorted(maps.Keys(c.Routes))
}

// ActionIDs returns the configured action IDs, sorted.
func (c *Config) ActionIDs() []string {
	return slices.Sorted(maps.Keys(c.Actions))
}
