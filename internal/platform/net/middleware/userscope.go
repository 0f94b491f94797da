package middleware

import (
	"net/http"

	pnet "inkwell/internal/platform/net"
)

// UserPort is a tiny seam that resolves the journal owner for a request
type UserPort interface {
	// Parse returns the user id from the request or an error
	Parse(r *http.Request) (userID string, err error)
}

// UserScope resolves the request owner via the port and stores it on the context.
// A nil port leaves requests unscoped
func UserScope(p UserPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			ctx := pnet.WithUser(r.Context(), uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
