package middleware

import (
	"net/http"
	"strings"

	perr "inkwell/internal/platform/errors"

	"github.com/google/uuid"
)

// HeaderUser resolves the journal owner from the X-User-ID header.
// Authentication proper lives elsewhere; this trusts the upstream proxy
type HeaderUser struct {
	// Header overrides the default X-User-ID header name
	Header string
}

// Parse implements UserPort
func (h HeaderUser) Parse(r *http.Request) (string, error) {
	name := h.Header
	if name == "" {
		name = "X-User-ID"
	}
	raw := strings.TrimSpace(r.Header.Get(name))
	if raw == "" {
		return "", perr.Unauthorizedf("missing %s header", name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", perr.Unauthorizedf("malformed %s header", name)
	}
	return id.String(), nil
}
