package config

import (
	"fmt"
	"strings"

	"github.com/atlanticdynamic/prepop/internal/fancy"
)

// longer action values are cut in the tree view
const maxValueWidth = 48

// String returns a pretty-printed tree representation of the config
func (c *Config) String() string {
	return ConfigTree(c)
}

// ConfigTree converts a Config struct into a rendered tree string
func ConfigTree(cfg *Config) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render(fmt.Sprintf("prepop Config (%s)", cfg.Version)))

	logging := fancy.Section("Logging")
	logging.Child(fmt.Sprintf("Format: %s", cfg.Logging.Format))
	logging.Child(fmt.Sprintf("Level: %s", cfg.Logging.Level))
	t.Child(logging)

	listener := fancy.BranchNode("Listener", fancy.ListenerText(cfg.Listener.Address))
	listener.Child(fmt.Sprintf("ReadTimeout: %s", cfg.Listener.ReadTimeout))
	listener.Child(fmt.Sprintf("WriteTimeout: %s", cfg.Listener.WriteTimeout))
	listener.Child(fmt.Sprintf("IdleTimeout: %s", cfg.Listener.IdleTimeout))
	listener.Child(fmt.Sprintf("DrainTimeout: %s", cfg.Listener.DrainTimeout))
	if h := cfg.Listener.Headers; !h.IsEmpty() {
		listener.Child(fmt.Sprintf("Headers: %s", h))
	}
	t.Child(listener)

	t.Child(fmt.Sprintf("Flag: ?%s", cfg.PrePopulate.Flag))

	actions := fancy.BranchNode("Actions", fmt.Sprintf("(%d)", len(cfg.Actions)))
	for _, id := range cfg.ActionIDs() {
		a := cfg.Actions[id]
		actions.Child(fmt.Sprintf("%s: %s = %q",
			fancy.ActionText(id),
			fancy.FieldText(a.Field),
			fancy.TruncateString(a.Value, maxValueWidth)))
	}
	t.Child(actions)

	routes := fancy.BranchNode("Routes", fmt.Sprintf("(%d)", len(cfg.Routes)))
	for _, key := range cfg.RouteKeys() {
		routes.Child(fmt.Sprintf("/%s -> %s",
			fancy.RouteText(key),
			strings.Join(cfg.Routes[key], ", ")))
	}
	t.Child(routes)

	return t.String()
}
