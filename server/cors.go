package server

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// corsHeaders are set on every response before routing, so error and
// not-found responses carry them too.
var corsHeaders = []func(http.Handler) http.Handler{
	middleware.SetHeader("Access-Control-Allow-Origin", "*"),
	middleware.SetHeader("Access-Control-Allow-Methods", "GET, POST, OPTIONS"),
	middleware.SetHeader("Access-Control-Allow-Headers", "Content-Type"),
	middleware.SetHeader("Access-Control-Expose-Headers", "X-Synthesis-Id"),
}

// preflight answers OPTIONS requests without reaching any relay.
func preflight(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
