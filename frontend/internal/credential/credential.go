// Package credential holds the signed-in visitor's token and user record and
// the stores that persist them between page loads.
package credential

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
	"github.com/Ghorpaderamdas/server-Hotel/shared/utils"
	"github.com/golang-jwt/jwt/v5"
)

type Credential struct {
	Token string
	User  domain.User
}

// FromLogin turns a login payload into a credential.
func FromLogin(result api.LoginResult) Credential {
	return Credential{Token: result.Token, User: result.User()}
}

func (c Credential) Validate() error {
	if c.Token == "" {
		return &MalformedError{Part: TokenCookie, Err: errors.New("empty token")}
	}
	if err := utils.Validate(c.User); err != nil {
		return &MalformedError{Part: UserCookie, Err: err}
	}
	return nil
}

// ExpiresAt reads the exp claim when the token is a JWT. The signature is not
// checked: only the backend holds the key, this is just for cookie lifetime.
func (c Credential) ExpiresAt() (time.Time, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(c.Token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// ErrMalformed matches every *MalformedError via errors.Is.
var ErrMalformed = errors.New("malformed credential")

type MalformedError struct {
	Part string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed credential %s: %v", e.Part, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

func (e *MalformedError) Is(target error) bool { return target == ErrMalformed }

// parseUser decodes and validates a stored user record.
func parseUser(raw []byte) (domain.User, error) {
	var user domain.User
	if err := utils.DecodeValidate(bytes.NewReader(raw), &user); err != nil {
		return domain.User{}, &MalformedError{Part: UserCookie, Err: err}
	}
	return user, nil
}

// Store persists one visitor's credential. Token and user are always written
// and cleared together.
type Store interface {
	// Token returns the bearer token without touching the user record, so a
	// damaged user cookie never blocks outgoing requests.
	Token() (string, bool)
	// Get returns (nil, nil) when nobody is signed in and an error matching
	// ErrMalformed when the stored values cannot be parsed.
	Get() (*Credential, error)
	Set(Credential) error
	Clear()
}

type ctxKey struct{}

func NewContext(ctx context.Context, s Store) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

func FromContext(ctx context.Context) (Store, bool) {
	s, ok := ctx.Value(ctxKey{}).(Store)
	return s, ok && s != nil
}
