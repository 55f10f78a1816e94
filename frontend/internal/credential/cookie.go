package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/Ghorpaderamdas/server-Hotel/shared/crypto"
)

const (
	TokenCookie = "token"
	UserCookie  = "user"
)

// Cookies creates per-request cookie stores. One instance is shared by the
// whole server.
type Cookies struct {
	sealer        *crypto.Sealer
	secureCookies bool
	now           func() time.Time
}

func NewCookies(sealer *crypto.Sealer, secureCookies bool) *Cookies {
	return &Cookies{sealer: sealer, secureCookies: secureCookies, now: time.Now}
}

// Store binds a store to one browser request and its response.
func (c *Cookies) Store(w http.ResponseWriter, r *http.Request) *CookieStore {
	s := &CookieStore{cookies: c, w: w}
	if cookie, err := r.Cookie(TokenCookie); err == nil {
		s.token = cookie.Value
	}
	if cookie, err := r.Cookie(UserCookie); err == nil {
		s.user = cookie.Value
	}
	return s
}

// CookieStore reads the credential from the request cookies and writes
// changes as Set-Cookie headers. It remembers its own writes so reads later
// in the same request see them. Safe for concurrent backend calls made while
// serving one request.
type CookieStore struct {
	cookies *Cookies
	w       http.ResponseWriter

	mu    sync.Mutex
	token string
	user  string // sealed
}

func (s *CookieStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

func (s *CookieStore) Get() (*Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.token == "" && s.user == "":
		return nil, nil
	case s.token == "":
		return nil, &MalformedError{Part: TokenCookie, Err: errors.New("missing")}
	case s.user == "":
		return nil, &MalformedError{Part: UserCookie, Err: errors.New("missing")}
	}

	raw, err := s.cookies.sealer.Open(s.user, []byte(UserCookie))
	if err != nil {
		return nil, &MalformedError{Part: UserCookie, Err: err}
	}
	user, err := parseUser(raw)
	if err != nil {
		return nil, err
	}
	return &Credential{Token: s.token, User: user}, nil
}

func (s *CookieStore) Set(c Credential) error {
	if err := c.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(c.User)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	sealed, err := s.cookies.sealer.Seal(raw, []byte(UserCookie))
	if err != nil {
		return fmt.Errorf("failed to seal user cookie: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var maxAge int
	var expires time.Time
	if exp, ok := c.ExpiresAt(); ok {
		expires = exp
		// MaxAge 0 would make a session cookie; less than a second left
		// still counts as one.
		if left := exp.Sub(s.cookies.now()); left > 0 {
			maxAge = int(math.Ceil(left.Seconds()))
		} else {
			maxAge = -1
		}
	}

	http.SetCookie(s.w, s.cookies.cookie(TokenCookie, c.Token, maxAge, expires))
	http.SetCookie(s.w, s.cookies.cookie(UserCookie, sealed, maxAge, expires))
	if maxAge < 0 {
		// Already expired: the browser drops it, so should we.
		s.token, s.user = "", ""
		return nil
	}
	s.token, s.user = c.Token, sealed
	return nil
}

func (s *CookieStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	http.SetCookie(s.w, s.cookies.cookie(TokenCookie, "", -1, time.Time{}))
	http.SetCookie(s.w, s.cookies.cookie(UserCookie, "", -1, time.Time{}))
	s.token, s.user = "", ""
}

func (c *Cookies) cookie(name, value string, maxAge int, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
