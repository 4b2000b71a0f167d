// Package prepop is the HTTP face of the pre-population demo. Every page
// request is an observed URL change; the action buttons bypass the route table
// and apply one preset each.
package prepop

import (
	"errors"
	"log/slog"
	"net/url"
	"sync/atomic"

	"github.com/atlanticdynamic/prepop/internal/dispatcher"
	"github.com/atlanticdynamic/prepop/internal/resolver"
	"github.com/atlanticdynamic/prepop/internal/store"
)

// StateStore is the part of store.Store the app reads and writes.
type StateStore interface {
	Snapshot() store.Snapshot
	Revision() uint64
	Apply(update store.UpdateRecord) (store.Notification, error)
	Subscribe(fn store.Observer) (unsubscribe func())
}

// ActionTable exposes the configured presets for rendering and single-action
// submission.
type ActionTable interface {
	Action(id resolver.ActionID) (resolver.Action, bool)
	Steps(routeKey string) []resolver.ActionID
	RouteKeys() []string
	ActionIDs() []resolver.ActionID
}

// URLObserver receives every page URL.
type URLObserver interface {
	Observe(u *url.URL) (dispatcher.Result, error)
	Flag() string
}

// App serves the page, the action endpoint, and the JSON state.
type App struct {
	id       string
	store    StateStore
	table    ActionTable
	observer URLObserver
	logger   *slog.Logger

	lastBatch   atomic.Pointer[store.Notification]
	unsubscribe func()
}

// New creates the app and subscribes it to st so the page can show the most
// recent batch. Call Close to drop the subscription.
func New(
	id string,
	st StateStore,
	table ActionTable,
	observer URLObserver,
	opts ...Option,
) (*App, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if table == nil {
		return nil, errors.New("action table is required")
	}
	if observer == nil {
		return nil, errors.New("URL observer is required")
	}

	a := &App{
		id:       id,
		store:    st,
		table:    table,
		observer: observer,
		logger:   slog.Default().WithGroup("prepop"),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With("app", id)

	a.unsubscribe = st.Subscribe(func(n store.Notification) {
		a.lastBatch.Store(&n)
	})
	return a, nil
}

// String returns the unique identifier of the application
func (a *App) String() string {
	return a.id
}

func (a *App) Close() {
	a.unsubscribe()
}
