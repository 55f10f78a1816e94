package middleware

import (
	"net/http"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/credential"
)

// Credentials binds a cookie-backed credential store to every request so the
// API client can find the visitor's token in the request context.
func Credentials(cookies *credential.Cookies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			store := cookies.Store(w, r)
			next.ServeHTTP(w, r.WithContext(credential.NewContext(r.Context(), store)))
		})
	}
}
