package apiclient

import (
	"context"
	"net/http"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/credential"
	"github.com/Ghorpaderamdas/server-Hotel/shared/logger"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// Navigator sends the visitor somewhere else, typically the login page.
type Navigator interface {
	Navigate(ctx context.Context, path string)
}

type NavigatorFunc func(ctx context.Context, path string)

func (f NavigatorFunc) Navigate(ctx context.Context, path string) { f(ctx, path) }

// BearerToken attaches the token of the credential store found in the
// request context. Without a store or token the request goes out
// unauthenticated; the header is never sent empty.
func BearerToken() RequestHook {
	return func(req *http.Request) (*http.Request, error) {
		store, ok := credential.FromContext(req.Context())
		if !ok {
			return req, nil
		}
		if token, ok := store.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		return req, nil
	}
}

// ClearOnUnauthorized wipes the stored credential and navigates to loginPath
// when the backend answers 401, then hands the original error on. Parallel
// 401s each clear and navigate on their own; both steps are idempotent.
func ClearOnUnauthorized(nav Navigator, loginPath string) ResponseHook {
	return func(resp *http.Response, err error) (*http.Response, error) {
		if resp == nil || resp.StatusCode != http.StatusUnauthorized {
			return resp, err
		}

		ctx := context.Background()
		path := ""
		if resp.Request != nil {
			ctx = resp.Request.Context()
			path = resp.Request.URL.Path
		}

		if store, ok := credential.FromContext(ctx); ok {
			store.Clear()
		}
		logger.Log.Info("backend rejected credential", "path", path)
		if nav != nil {
			nav.Navigate(ctx, loginPath)
		}
		return resp, err
	}
}

// RequestID tags each backend call so it can be matched in backend logs.
func RequestID() RequestHook {
	return func(req *http.Request) (*http.Request, error) {
		id := req.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			req.Header.Set(RequestIDHeader, id)
		}
		logger.Log.Debug("backend call", "method", req.Method, "path", req.URL.Path, "request_id", id)
		return req, nil
	}
}
