package logger

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	attrMethod   = "method"
	attrPath     = "path"
	attrQuery    = "query"
	attrStatus   = "status"
	attrSize     = "size"
	attrDuration = "duration"
	attrClientIP = "client_ip"
)

// logFilter decides which requests get logged and which attributes describe them.
type logFilter struct {
	pathExclude   []string
	methodExclude map[string]bool
}

func newLogFilter(pathExclude, methodExclude []string) *logFilter {
	lf := &logFilter{
		pathExclude:   pathExclude,
		methodExclude: make(map[string]bool, len(methodExclude)),
	}
	for _, m := range methodExclude {
		lf.methodExclude[strings.ToUpper(m)] = true
	}
	return lf
}

// ShouldSkip reports whether the request matches an excluded method or path prefix.
func (lf *logFilter) ShouldSkip(r *http.Request) bool {
	if lf.methodExclude[strings.ToUpper(r.Method)] {
		return true
	}
	for _, prefix := range lf.pathExclude {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return true
		}
	}
	return false
}

// BuildLogAttrs builds all log attributes
func (lf *logFilter) BuildLogAttrs(
	r *http.Request,
	rw httpserver.ResponseWriter,
	duration time.Duration,
) []slog.Attr {
	status := rw.Status()
	if status == 0 {
		status = http.StatusOK
	}

	attrs := []slog.Attr{
		slog.String(attrMethod, r.Method),
		slog.String(attrPath, r.URL.Path),
	}
	if r.URL.RawQuery != "" {
		attrs = append(attrs, slog.String(attrQuery, r.URL.RawQuery))
	}
	attrs = append(attrs,
		slog.Int(attrStatus, status),
		slog.Int(attrSize, rw.Size()),
		slog.Duration(attrDuration, duration),
	)
	if ip := getClientIP(r); ip != "" {
		attrs = append(attrs, slog.String(attrClientIP, ip))
	}
	return attrs
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i != -1 {
		host = host[:i]
	}
	return host
}
