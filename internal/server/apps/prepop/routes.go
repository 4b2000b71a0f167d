package prepop

import (
	"fmt"
	"net/http"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

// Routes returns the app's routes, each wrapped in the given middleware chain.
// The page route is registered on "/" and so catches every path the others
// do not claim.
func (a *App) Routes(middlewares ...httpserver.HandlerFunc) ([]httpserver.Route, error) {
	defs := []struct {
		name    string
		path    string
		handler http.HandlerFunc
	}{
		{name: a.id + "-state", path: statePath, handler: a.HandleState},
		{name: a.id + "-actions", path: actionPathPrefix, handler: a.HandleAction},
		{name: a.id + "-page", path: "/", handler: a.HandlePage},
	}

	routes := make([]httpserver.Route, 0, len(defs))
	for _, def := range defs {
		route, err := httpserver.NewRouteFromHandlerFunc(def.name, def.path, def.handler, middlewares...)
		if err != nil {
			return nil, fmt.Errorf("failed to create route %s: %w", def.path, err)
		}
		routes = append(routes, *route)
	}
	return routes, nil
}
