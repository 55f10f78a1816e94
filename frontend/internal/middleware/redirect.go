package middleware

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"sync"

	"github.com/Ghorpaderamdas/server-Hotel/shared/logger"
)

const (
	FlashErrorCookie = "flash_error"

	sessionExpiredMsg = "Your session has expired. Please log in again."
	loginRequiredMsg  = "Please log in to continue"
)

// LoginRedirect sends the browser to the login page when a backend call is
// rejected during a request, or when a handler answers 401 itself.
// It implements apiclient.Navigator.
type LoginRedirect struct {
	loginPath     string
	secureCookies bool
}

func NewLoginRedirect(loginPath string, secureCookies bool) *LoginRedirect {
	return &LoginRedirect{loginPath: loginPath, secureCookies: secureCookies}
}

type navState struct {
	mu     sync.Mutex
	target string
}

func (s *navState) get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

type navKey struct{}

// Navigate marks the request carried by ctx for redirection to path. The
// redirect replaces whatever the handler writes afterwards.
func (l *LoginRedirect) Navigate(ctx context.Context, path string) {
	state, ok := ctx.Value(navKey{}).(*navState)
	if !ok {
		logger.Log.Warn("navigation outside of a page request", "path", path)
		return
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.target == "" {
		state.target = path
	}
}

// Navigated reports whether a redirect is pending for the request. Handlers
// can use it to skip further work.
func Navigated(ctx context.Context) bool {
	state, ok := ctx.Value(navKey{}).(*navState)
	return ok && state.get() != ""
}

func (l *LoginRedirect) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := &navState{}
		r = r.WithContext(context.WithValue(r.Context(), navKey{}, state))
		wrapper := &redirectWriter{
			ResponseWriter: w,
			request:        r,
			state:          state,
			login:          l,
		}
		next.ServeHTTP(wrapper, r)

		// Handler wrote nothing at all.
		if !wrapper.wroteHeader && state.get() != "" {
			wrapper.WriteHeader(http.StatusOK)
		}
	})
}

// redirectWriter swaps the handler's response for a redirect once one is due.
type redirectWriter struct {
	http.ResponseWriter
	request     *http.Request
	state       *navState
	login       *LoginRedirect
	wroteHeader bool
	redirected  bool
}

func (w *redirectWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if target := w.state.get(); target != "" {
		w.redirect(target, sessionExpiredMsg)
		return
	}
	if statusCode == http.StatusUnauthorized {
		w.redirect(w.login.loginPath, loginRequiredMsg)
		return
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *redirectWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.redirected {
		return len(data), nil // Discard body after redirect
	}
	return w.ResponseWriter.Write(data)
}

func (w *redirectWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *redirectWriter) redirect(target, msg string) {
	w.redirected = true
	h := w.ResponseWriter.Header()
	h.Del("Content-Type")
	h.Del("Content-Length")

	// A message the handler already set is more specific than ours.
	if !hasFlash(h) {
		http.SetCookie(w.ResponseWriter, flashCookie(msg, w.login.secureCookies))
	}
	logger.Log.Info("redirecting to login", "from", w.request.URL.Path, "to", target)
	http.Redirect(w.ResponseWriter, w.request, target, http.StatusSeeOther)
}

func hasFlash(h http.Header) bool {
	for _, c := range h.Values("Set-Cookie") {
		if strings.HasPrefix(c, FlashErrorCookie+"=") && !strings.HasPrefix(c, FlashErrorCookie+"=;") {
			return true
		}
	}
	return false
}

func flashCookie(msg string, secure bool) *http.Cookie {
	// base64 keeps special characters cookie-safe
	return &http.Cookie{
		Name:     FlashErrorCookie,
		Value:    base64.StdEncoding.EncodeToString([]byte(msg)),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
