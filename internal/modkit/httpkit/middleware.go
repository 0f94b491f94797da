package httpkit

import (
	"compress/flate"
	"net/http"

	phttp "inkwell/internal/platform/net/http"
	"inkwell/internal/platform/net/middleware"
)

// CommonStack returns a baseline per module middleware slice
// compose with the user scope middleware as needed in main
func CommonStack() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.Logger(),

		// cross-origin (tweak config in main if needed)
		middleware.CORS(middleware.CORSOptions{}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.RedirectSlashes(),
		middleware.StripSlashes(),
		middleware.Timeout(30 * 1e9), // 30s
	}
}

// UserScope wires the user scoping middleware to the platform JSON writer
func UserScope(p middleware.UserPort) func(http.Handler) http.Handler {
	// middleware expects write func(w http.ResponseWriter, status int, body any)
	// use phttp.JSON which matches that signature
	return middleware.UserScope(p, phttp.JSON)
}
