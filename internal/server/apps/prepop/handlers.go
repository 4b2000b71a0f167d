package prepop

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/atlanticdynamic/prepop/internal/resolver"
	"github.com/atlanticdynamic/prepop/internal/store"
)

const (
	actionPathPrefix = "/actions/"
	statePath        = "/api/state"
)

// stateResponse is the JSON body of the state endpoint.
type stateResponse struct {
	Revision uint64 `json:"revision"`
	store.Snapshot
}

// HandlePage observes the request URL, then renders the page with whatever
// state results.
func (a *App) HandlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}

	result, err := a.observer.Observe(r.URL)
	if err != nil {
		a.logger.Error("Pre-population failed", "path", r.URL.Path, "error", err)
		http.Error(w, "pre-population failed", http.StatusInternalServerError)
		return
	}

	// render into a buffer so a template failure can still become a 500
	var buf bytes.Buffer
	if err := renderPage(&buf, a.pageData(result.RouteKey)); err != nil {
		a.logger.Error("Failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		a.logger.Debug("Failed to write page", "error", err)
	}
}

// HandleAction applies the single preset named by the last path segment and
// redirects back to the page it was submitted from.
func (a *App) HandleAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	id := resolver.ActionID(strings.TrimPrefix(r.URL.Path, actionPathPrefix))
	action, ok := a.table.Action(id)
	if !ok {
		http.Error(w, "unknown action: "+string(id), http.StatusNotFound)
		return
	}

	n, err := a.store.Apply(action.Record())
	if err != nil {
		a.logger.Error("Failed to apply action", "action", id, "error", err)
		http.Error(w, "failed to apply action", http.StatusInternalServerError)
		return
	}
	a.logger.Info("Action applied",
		"action", id,
		"field", action.Field,
		"revision", n.Revision)

	http.Redirect(w, r, refererPath(r), http.StatusSeeOther)
}

// HandleState writes the current snapshot as JSON.
func (a *App) HandleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		methodNotAllowed(w, http.MethodGet, http.MethodHead)
		return
	}

	body, err := json.Marshal(stateResponse{
		Revision: a.store.Revision(),
		Snapshot: a.store.Snapshot(),
	})
	if err != nil {
		http.Error(w, "failed to encode state", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(body); err != nil {
		a.logger.Debug("Failed to write state", "error", err)
	}
}

// refererPath returns only the path of the Referer, so a redirect never
// replays the query flag and re-runs the route's sequence over the action.
func refererPath(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || !strings.HasPrefix(ref.Path, "/") {
		return "/"
	}
	return ref.Path
}

func methodNotAllowed(w http.ResponseWriter, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}
