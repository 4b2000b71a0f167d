// Package dispatcher reacts to observed URLs by resolving the route's preset
// action sequence and submitting it to the store as a single batch.
package dispatcher

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/atlanticdynamic/prepop/internal/store"
)

// ErrNilURL is returned by Observe when called without a URL.
var ErrNilURL = errors.New("nil URL")

// SequenceResolver maps a route key to the update records to apply.
type SequenceResolver interface {
	Resolve(routeKey string) ([]store.UpdateRecord, error)
}

// BatchSubmitter applies a batch with single-notification semantics.
type BatchSubmitter interface {
	ApplyBatch(updates []store.UpdateRecord) (store.Notification, error)
}

// Result describes what one observation did.
type Result struct {
	RouteKey  string
	Requested bool

	// Updates and Notification are only set when Requested is true.
	Updates      []store.UpdateRecord
	Notification store.Notification
}

// Dispatcher holds no state between observations.
type Dispatcher struct {
	resolver SequenceResolver
	store    BatchSubmitter
	flag     string
	logger   *slog.Logger
}

// New creates a Dispatcher feeding resolved sequences from r into s.
func New(r SequenceResolver, s BatchSubmitter, opts ...Option) (*Dispatcher, error) {
	if r == nil {
		return nil, errors.New("resolver is required")
	}
	if s == nil {
		return nil, errors.New("store is required")
	}

	d := &Dispatcher{
		resolver: r,
		store:    s,
		flag:     DefaultFlag,
		logger:   slog.Default().WithGroup("dispatcher"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Flag returns the query key this dispatcher reacts to.
func (d *Dispatcher) Flag() string {
	return d.flag
}

// Observe handles one URL change. Without the flag it does nothing; with it,
// the route's whole sequence goes to the store as one batch, even when the
// route is unknown and the sequence is empty.
func (d *Dispatcher) Observe(u *url.URL) (Result, error) {
	if u == nil {
		return Result{}, ErrNilURL
	}

	res := Result{
		RouteKey:  RouteKey(u.Path),
		Requested: Requested(u.RawQuery, d.flag),
	}
	if !res.Requested {
		return res, nil
	}

	updates, err := d.resolver.Resolve(res.RouteKey)
	if err != nil {
		return res, fmt.Errorf("resolve route %q: %w", res.RouteKey, err)
	}
	res.Updates = updates

	n, err := d.store.ApplyBatch(updates)
	if err != nil {
		return res, fmt.Errorf("apply batch for route %q: %w", res.RouteKey, err)
	}
	res.Notification = n

	d.logger.Info("Pre-populated from URL",
		"route_key", res.RouteKey,
		"updates", len(updates),
		"batch_id", n.BatchID.String(),
		"revision", n.Revision)
	return res, nil
}
