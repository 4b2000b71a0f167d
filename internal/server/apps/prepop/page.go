package prepop

import (
	"embed"
	"html/template"
	"io"
	"net/url"

	"github.com/atlanticdynamic/prepop/internal/resolver"
	"github.com/atlanticdynamic/prepop/internal/store"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html.tmpl"))

type routeLink struct {
	Label       string
	Plain       string
	Prepopulate string
}

type actionButton struct {
	Action string
	Field  store.FieldID
	Value  string
}

type pageData struct {
	RouteKey  string
	Links     []routeLink
	Buttons   []actionButton
	Snapshot  store.Snapshot
	Revision  uint64
	LastBatch *store.Notification
	Steps     []resolver.ActionID
}

func (a *App) pageData(routeKey string) pageData {
	flag := a.observer.Flag()

	keys := a.table.RouteKeys()
	links := make([]routeLink, 0, len(keys))
	for _, key := range keys {
		plain := "/" + url.PathEscape(key)
		links = append(links, routeLink{
			Label:       key,
			Plain:       plain,
			Prepopulate: plain + "?" + url.QueryEscape(flag),
		})
	}

	ids := a.table.ActionIDs()
	buttons := make([]actionButton, 0, len(ids))
	for _, id := range ids {
		action, ok := a.table.Action(id)
		if !ok {
			continue
		}
		buttons = append(buttons, actionButton{
			Action: actionPathPrefix + url.PathEscape(string(id)),
			Field:  action.Field,
			Value:  action.Value,
		})
	}

	return pageData{
		RouteKey:  routeKey,
		Links:     links,
		Buttons:   buttons,
		Snapshot:  a.store.Snapshot(),
		Revision:  a.store.Revision(),
		LastBatch: a.lastBatch.Load(),
		Steps:     a.table.Steps(routeKey),
	}
}

func renderPage(w io.Writer, data pageData) error {
	return pageTemplate.Execute(w, data)
}
