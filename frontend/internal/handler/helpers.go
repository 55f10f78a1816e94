package handler

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/middleware"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
)

const (
	flashCookieError   = middleware.FlashErrorCookie
	flashCookieSuccess = "flash_success"
	emailPrefillCookie = "email_prefill"
)

// setFlash stores a one-shot message for the next page render.
func (h *Handler) setFlash(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    base64.StdEncoding.EncodeToString([]byte(value)),
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   h.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash reads a flash cookie and expires it.
func (h *Handler) popFlash(w http.ResponseWriter, r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil || cookie.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Public.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	decoded, err := base64.StdEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ""
	}
	return string(decoded)
}

func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, name, value string) {
	h.setFlash(w, name, value)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// parseEmail takes the email from the query string or the form.
func parseEmail(r *http.Request) string {
	if email := r.URL.Query().Get("email"); email != "" {
		return strings.TrimSpace(email)
	}
	return strings.TrimSpace(r.FormValue("email"))
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil && id > 0
}

// parseStay reads a check-in/check-out pair. Both must be set and in order.
func parseStay(checkIn, checkOut string) (time.Time, time.Time, bool) {
	in, err := domain.ParseDate(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	out, err := domain.ParseDate(checkOut)
	if err != nil || !out.After(in) {
		return time.Time{}, time.Time{}, false
	}
	return in, out, true
}

// categories lists distinct non-empty values in first-seen order.
func categories[T any](items []T, category func(T) string) []string {
	seen := make(map[string]struct{})
	var result []string
	for _, item := range items {
		c := category(item)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			result = append(result, c)
		}
	}
	return result
}
