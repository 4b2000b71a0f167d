// Package headers applies the configured response header operations to every
// page served by the HTTP listener.
package headers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/atlanticdynamic/prepop/internal/config"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	supervisorHeaders "github.com/robbyt/go-supervisor/runnables/httpserver/middleware/headers"
)

// ErrInvalidConfig is returned when the header operations fail validation.
var ErrInvalidConfig = errors.New("invalid headers config")

func convertToHTTPHeader(headers map[string]string) http.Header {
	h := make(http.Header, len(headers))
	for key, value := range headers {
		h.Set(key, value)
	}
	return h
}

// HeadersMiddleware removes, sets, then adds response headers, in that order.
type HeadersMiddleware struct {
	id         string
	middleware httpserver.HandlerFunc
}

// NewHeadersMiddleware creates a new HeadersMiddleware instance.
func NewHeadersMiddleware(id string, cfg config.HeadersConfig) (*HeadersMiddleware, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var operations []supervisorHeaders.HeaderOperation
	if len(cfg.Remove) > 0 {
		operations = append(operations, supervisorHeaders.WithRemove(cfg.Remove...))
	}
	if len(cfg.Set) > 0 {
		operations = append(operations, supervisorHeaders.WithSet(convertToHTTPHeader(cfg.Set)))
	}
	if len(cfg.Add) > 0 {
		operations = append(operations, supervisorHeaders.WithAdd(convertToHTTPHeader(cfg.Add)))
	}

	return &HeadersMiddleware{
		id:         id,
		middleware: supervisorHeaders.NewWithOperations(operations...),
	}, nil
}

func (hm *HeadersMiddleware) String() string {
	return hm.id
}

// Middleware returns the middleware function that manipulates response headers.
func (hm *HeadersMiddleware) Middleware() httpserver.HandlerFunc {
	return hm.middleware
}
