package httpkit

import (
	"net/http"
	"strconv"

	perr "inkwell/internal/platform/errors"
)

// QueryInt reads an integer query parameter, returning def when absent.
// A present but non-numeric value is a validation error
func QueryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, perr.WithField(perr.InvalidArgf("%s must be an integer", name), name)
	}
	return n, nil
}
