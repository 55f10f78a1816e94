package middleware

import (
	"context"
	"net/http"

	"github.com/Ghorpaderamdas/server-Hotel/shared/csrf"
	"github.com/Ghorpaderamdas/server-Hotel/shared/logger"
)

const (
	csrfCookieName = "csrf_token"
	CSRFFormField  = "csrf_token"
	CSRFHeader     = "X-CSRF-Token"
)

type csrfContextKey struct{}

// CSRF issues a double-submit token cookie and checks it on unsafe methods.
// The token comes back in the form field or, for scripts, in CSRFHeader.
func CSRF(secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if cookie, err := r.Cookie(csrfCookieName); err == nil && cookie.Value != "" {
				token = cookie.Value
			}

			if !isSafeMethod(r.Method) {
				submitted := r.Header.Get(CSRFHeader)
				if submitted == "" {
					if err := r.ParseForm(); err != nil {
						logger.Log.Warn("failed to parse form", "path", r.URL.Path, "error", err)
						http.Error(w, "Invalid form data", http.StatusBadRequest)
						return
					}
					submitted = r.PostFormValue(CSRFFormField)
				}
				if token == "" || !csrf.ValidateToken(token, submitted) {
					logger.Log.Warn("CSRF token validation failed", "path", r.URL.Path)
					http.Error(w, "CSRF token invalid", http.StatusForbidden)
					return
				}
			}

			if token == "" {
				var err error
				if token, err = csrf.GenerateToken(); err != nil {
					logger.Log.Error("failed to generate CSRF token", "error", err)
					http.Error(w, "Internal server error", http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     csrfCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   secureCookies,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   86400, // 24 hours
				})
			}

			ctx := context.WithValue(r.Context(), csrfContextKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	}
	return false
}

// CSRFToken returns the token to embed in forms rendered for r.
func CSRFToken(r *http.Request) string {
	token, _ := r.Context().Value(csrfContextKey{}).(string)
	return token
}
