package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/utils"
)

// RequestHook runs on every outgoing request before it is sent.
type RequestHook func(*http.Request) (*http.Request, error)

// ResponseHook runs after every round trip. resp is nil when the backend was
// not reached; err is a *TransportError or *ResponseError on failure.
// A hook returns the pair the next hook (and finally the caller) sees.
type ResponseHook func(resp *http.Response, err error) (*http.Response, error)

// APIClient handles all communication with the backend API. Every resource
// client routes through the one instance so hooks apply uniformly.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client

	transport     http.RoundTripper
	requestHooks  []RequestHook
	responseHooks []ResponseHook

	Auth     *AuthAPI
	Rooms    *RoomsAPI
	Bookings *BookingsAPI
	Menu     *MenuAPI
	Gallery  *GalleryAPI
	Blog     *BlogAPI
	Feedback *FeedbackAPI
	Contact  *ContactAPI
	User     *UserAPI
	Admin    *AdminAPI
}

type Option func(*APIClient)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *APIClient) { c.HttpClient = hc }
}

// WithTransport swaps the round tripper, e.g. for instrumentation. It applies
// to a copy of the HTTP client once all options ran, so option order does not
// matter and a caller's client is never modified.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *APIClient) { c.transport = rt }
}

func WithRequestHook(h RequestHook) Option {
	return func(c *APIClient) { c.requestHooks = append(c.requestHooks, h) }
}

func WithResponseHook(h ResponseHook) Option {
	return func(c *APIClient) { c.responseHooks = append(c.responseHooks, h) }
}

// WithAuth installs the credential hooks: bearer token on the way out,
// clear-and-navigate on 401 on the way back.
func WithAuth(nav Navigator, loginPath string) Option {
	return func(c *APIClient) {
		c.requestHooks = append(c.requestHooks, BearerToken())
		c.responseHooks = append(c.responseHooks, ClearOnUnauthorized(nav, loginPath))
	}
}

// New creates a client for the backend rooted at baseURL
// (e.g. http://localhost:8080/api). Options apply in order.
func New(baseURL string, opts ...Option) *APIClient {
	c := &APIClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HttpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport != nil {
		hc := *c.HttpClient
		hc.Transport = c.transport
		c.HttpClient = &hc
	}

	c.Auth = &AuthAPI{c}
	c.Rooms = &RoomsAPI{c}
	c.Bookings = &BookingsAPI{c}
	c.Menu = &MenuAPI{c}
	c.Gallery = &GalleryAPI{c}
	c.Blog = &BlogAPI{c}
	c.Feedback = &FeedbackAPI{c}
	c.Contact = &ContactAPI{c}
	c.User = &UserAPI{c}
	c.Admin = &AdminAPI{c}
	return c
}

// do is the single, unified helper for making API requests. On success the
// caller owns resp.Body. On failure the body has already been consumed.
func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for _, hook := range c.requestHooks {
		if req, err = hook(req); err != nil {
			return nil, err
		}
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		resp, err = nil, &TransportError{Method: method, Path: path, Err: err}
	} else {
		if resp.Request == nil {
			resp.Request = req
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			err = newResponseError(method, path, resp)
		}
	}

	for _, hook := range c.responseHooks {
		resp, err = hook(resp, err)
	}
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// call issues one request and decodes the envelope. A success:false envelope
// in a 2xx response is returned as is; callers inspect it.
func call[T any](ctx context.Context, c *APIClient, method, path string, query url.Values, body any) (*api.Response[T], error) {
	resp, err := c.do(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope api.Response[T]
	if err := utils.Decode(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("cannot decode %s %s response: %w", method, path, err)
	}
	return &envelope, nil
}

func get[T any](ctx context.Context, c *APIClient, path string, query url.Values) (*api.Response[T], error) {
	return call[T](ctx, c, http.MethodGet, path, query, nil)
}

func post[T any](ctx context.Context, c *APIClient, path string, body any) (*api.Response[T], error) {
	return call[T](ctx, c, http.MethodPost, path, nil, body)
}

// segment escapes a caller-provided value for use as one path element.
func segment(v string) string {
	return url.PathEscape(v)
}
