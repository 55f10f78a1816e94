package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/credential"
	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
	sharedErrors "github.com/Ghorpaderamdas/server-Hotel/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginPath = "/auth/login"

var testUser = domain.User{Id: 3, Username: "meera", Email: "meera@example.com", Roles: []string{"ROLE_USER"}}

type navRecorder struct {
	calls atomic.Int32
	mu    sync.Mutex
	paths []string
}

func (n *navRecorder) Navigate(_ context.Context, path string) {
	n.calls.Add(1)
	n.mu.Lock()
	n.paths = append(n.paths, path)
	n.mu.Unlock()
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, envelope any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(envelope))
}

// newBackend starts a fake backend mounted under /api and a client for it.
func newBackend(t *testing.T, mux *http.ServeMux, opts ...Option) (*APIClient, *navRecorder) {
	t.Helper()
	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", mux))
	srv := httptest.NewServer(root)
	t.Cleanup(srv.Close)

	nav := &navRecorder{}
	opts = append([]Option{WithAuth(nav, loginPath)}, opts...)
	return New(srv.URL+"/api/", opts...), nav
}

func signedIn(t *testing.T, token string) (context.Context, *credential.MemoryStore) {
	t.Helper()
	store := credential.NewMemoryStore()
	require.NoError(t, store.Set(credential.Credential{Token: token, User: testUser}))
	return credential.NewContext(context.Background(), store), store
}

func TestNew_TrimsTrailingSlash(t *testing.T) {
	c := New("http://localhost:8080/api/")
	assert.Equal(t, "http://localhost:8080/api", c.BaseURL)
	assert.NotNil(t, c.Rooms)
	assert.NotNil(t, c.Admin)
}

func TestBearerToken(t *testing.T) {
	mux := http.NewServeMux()
	var (
		mu      sync.Mutex
		headers []http.Header
	)
	mux.HandleFunc("GET /rooms", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		headers = append(headers, r.Header.Clone())
		mu.Unlock()
		writeEnvelope(t, w, http.StatusOK, api.Response[[]domain.Room]{Success: true, Data: &[]domain.Room{}})
	})
	client, _ := newBackend(t, mux)

	authed, _ := signedIn(t, "abc.def.ghi")
	empty := credential.NewContext(context.Background(), credential.NewMemoryStore())

	tests := []struct {
		name       string
		ctx        context.Context
		wantHeader string
		wantSet    bool
	}{
		{name: "signed in", ctx: authed, wantHeader: "Bearer abc.def.ghi", wantSet: true},
		{name: "empty store", ctx: empty},
		{name: "no store in context", ctx: context.Background()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mu.Lock()
			headers = nil
			mu.Unlock()

			_, err := client.Rooms.GetAll(tt.ctx)
			require.NoError(t, err)

			require.Len(t, headers, 1)
			values, present := headers[0]["Authorization"]
			assert.Equal(t, tt.wantSet, present, "authorization header presence")
			if tt.wantSet {
				assert.Equal(t, []string{tt.wantHeader}, values)
			}
		})
	}
}

func TestUnauthorized_ClearsStoreAndNavigates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /user/profile", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, api.Response[api.Empty]{Error: "token expired"})
	})
	client, nav := newBackend(t, mux)
	ctx, store := signedIn(t, "stale")

	resp, err := client.User.GetProfile(ctx)

	assert.Nil(t, resp)
	var re *ResponseError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, http.StatusUnauthorized, re.StatusCode)
	assert.Equal(t, "token expired", re.Message())
	assert.True(t, IsUnauthorized(err))

	_, ok := store.Token()
	assert.False(t, ok, "store should be cleared")
	assert.Equal(t, 1, store.Clears())
	assert.Equal(t, int32(1), nav.calls.Load())
	assert.Equal(t, []string{loginPath}, nav.paths)
}

func TestOtherFailures_KeepCredential(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("GET /rooms/{id}", func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, status, api.Response[api.Empty]{Message: "nope"})
			})
			client, nav := newBackend(t, mux)
			ctx, store := signedIn(t, "fresh")

			_, err := client.Rooms.GetByID(ctx, 9)

			code, ok := StatusCode(err)
			require.True(t, ok)
			assert.Equal(t, status, code)
			token, ok := store.Token()
			assert.True(t, ok)
			assert.Equal(t, "fresh", token)
			assert.Zero(t, store.Clears())
			assert.Zero(t, nav.calls.Load())
		})
	}
}

func TestUnauthorized_ConcurrentCallsEachClear(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /booking/check-availability", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, api.Response[api.Empty]{Error: "expired"})
	})
	client, nav := newBackend(t, mux)
	ctx, store := signedIn(t, "expired")

	const calls = 4
	in := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	errs := make([]error, calls)
	var wg sync.WaitGroup
	for i := range calls {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = client.Bookings.CheckAvailability(ctx, int64(i+1), in, in.AddDate(0, 0, 2))
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.True(t, IsUnauthorized(err))
	}
	_, ok := store.Token()
	assert.False(t, ok)
	// Not coalesced: every rejected call clears and navigates.
	assert.Equal(t, calls, store.Clears())
	assert.Equal(t, int32(calls), nav.calls.Load())
}

func TestRooms_GetAllAndFilter(t *testing.T) {
	rooms := []domain.Room{
		{Id: 1, Name: "Garden", Type: "Standard", PricePerNight: 2500},
		{Id: 2, Name: "Summit", Type: "Deluxe", PricePerNight: 4200},
		{Id: 3, Name: "Ridge", Type: "deluxe", PricePerNight: 3900},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rooms", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, api.Response[[]domain.Room]{Success: true, Message: "ok", Data: &rooms})
	})
	client, _ := newBackend(t, mux)

	resp, err := client.Rooms.GetAll(context.Background())
	require.NoError(t, err)
	all, ok := resp.Value()
	require.True(t, ok)
	assert.Len(t, all, 3)

	deluxe := domain.FilterRoomsByType(all, "Deluxe")
	require.Len(t, deluxe, 2)
	assert.Equal(t, "Summit", deluxe[0].Name)
	assert.Equal(t, "Ridge", deluxe[1].Name)
	assert.Len(t, domain.FilterRoomsByType(all, domain.RoomTypeAll), 3)
}

func TestFeedback_CreateUnsuccessfulIsNotAnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /feedback", func(w http.ResponseWriter, r *http.Request) {
		var req api.CreateFeedbackRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 9, req.Rating)
		writeEnvelope(t, w, http.StatusOK, api.Response[domain.Feedback]{Success: false, Error: "Rating must be between 1 and 5"})
	})
	client, _ := newBackend(t, mux)

	resp, err := client.Feedback.Create(context.Background(), api.CreateFeedbackRequest{GuestName: "Ravi", Rating: 9, Comment: "Great"})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.False(t, resp.Success)
	_, ok := resp.Value()
	assert.False(t, ok)
	assert.Equal(t, "Rating must be between 1 and 5", resp.ErrorMessage())
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	nav := &navRecorder{}
	client := New(base, WithAuth(nav, loginPath))
	ctx, store := signedIn(t, "tok")

	_, err := client.Menu.GetAll(ctx)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "/menu", te.Path)
	assert.Contains(t, err.Error(), "backend unavailable")
	_, isStatus := StatusCode(err)
	assert.False(t, isStatus)
	_, ok := store.Token()
	assert.True(t, ok, "transport failures must not clear the credential")
	assert.Zero(t, nav.calls.Load())
}

func TestRequestAndResponseHooks(t *testing.T) {
	mux := http.NewServeMux()
	var gotID string
	mux.HandleFunc("GET /contact", func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get(RequestIDHeader)
		writeEnvelope(t, w, http.StatusOK, api.Response[domain.ContactInfo]{Success: true, Data: &domain.ContactInfo{Phone: "+91 00000"}})
	})

	var seen []int
	client, _ := newBackend(t, mux,
		WithRequestHook(RequestID()),
		WithResponseHook(func(resp *http.Response, err error) (*http.Response, error) {
			seen = append(seen, resp.StatusCode)
			return resp, err
		}),
	)

	resp, err := client.Contact.GetInfo(context.Background())
	require.NoError(t, err)
	info, ok := resp.Value()
	require.True(t, ok)
	assert.Equal(t, "+91 00000", info.Phone)
	assert.Len(t, gotID, 36)
	assert.Equal(t, []int{http.StatusOK}, seen)
}

func TestRequestHookErrorAborts(t *testing.T) {
	var hits atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { hits.Add(1) })
	boom := errors.New("boom")
	client, _ := newBackend(t, mux, WithRequestHook(func(r *http.Request) (*http.Request, error) { return nil, boom }))

	_, err := client.Gallery.GetAll(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, hits.Load())
}

func TestPathsAndQueries(t *testing.T) {
	checkIn := time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 1, 12, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		call       func(c *APIClient) error
		wantMethod string
		wantPath   string
		wantQuery  string
	}{
		{
			name: "available rooms",
			call: func(c *APIClient) error {
				_, err := c.Rooms.GetAvailable(context.Background(), checkIn, checkOut)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/rooms/available",
			wantQuery:  "checkIn=2025-01-10&checkOut=2025-01-12",
		},
		{
			name: "room type is escaped",
			call: func(c *APIClient) error {
				_, err := c.Rooms.GetByType(context.Background(), "Family Suite")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/rooms/type/Family%20Suite",
		},
		{
			name: "guest bookings",
			call: func(c *APIClient) error {
				_, err := c.Bookings.GetByEmail(context.Background(), "a/b@example.com")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/booking/guest/a%2Fb@example.com",
		},
		{
			name: "availability check",
			call: func(c *APIClient) error {
				_, err := c.Bookings.CheckAvailability(context.Background(), 4, checkIn, checkOut)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/booking/check-availability",
			wantQuery:  "checkIn=2025-01-10&checkOut=2025-01-12&roomId=4",
		},
		{
			name: "blog search",
			call: func(c *APIClient) error {
				_, err := c.Blog.Search(context.Background(), "monsoon & trek")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/blog/search",
			wantQuery:  "title=monsoon+%26+trek",
		},
		{
			name: "menu category",
			call: func(c *APIClient) error {
				_, err := c.Menu.GetByCategory(context.Background(), "Main Course")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/menu/category/Main%20Course",
		},
		{
			name: "update role",
			call: func(c *APIClient) error {
				_, err := c.Admin.UpdateRole(context.Background(), 12, domain.RoleAdmin)
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/admin/users/12/role",
			wantQuery:  "role=ROLE_ADMIN",
		},
		{
			name: "delete user",
			call: func(c *APIClient) error {
				_, err := c.Admin.DeleteUser(context.Background(), 12)
				return err
			},
			wantMethod: http.MethodDelete,
			wantPath:   "/admin/users/12",
		},
		{
			name: "otp request",
			call: func(c *APIClient) error {
				_, err := c.Auth.RequestOtp(context.Background(), "+919800000000")
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/auth/request-otp",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var method, path, query string
			mux := http.NewServeMux()
			mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
				method, path, query = r.Method, r.URL.EscapedPath(), r.URL.RawQuery
				writeEnvelope(t, w, http.StatusOK, api.Response[api.Empty]{Success: true})
			})
			client, _ := newBackend(t, mux)

			require.NoError(t, tt.call(client))
			assert.Equal(t, tt.wantMethod, method)
			assert.Equal(t, tt.wantPath, path)
			assert.Equal(t, tt.wantQuery, query)
		})
	}
}

func TestAuth_LoginResultShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "nested user",
			body: `{"success":true,"message":"Login successful","data":{"token":"t1","type":"Bearer","user":{"id":3,"username":"meera","email":"meera@example.com","roles":["ROLE_USER"]}}}`,
		},
		{
			name: "flat user",
			body: `{"success":true,"message":"Login successful","data":{"token":"t1","type":"Bearer","id":3,"username":"meera","email":"meera@example.com","roles":["ROLE_USER"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
				var req api.LoginRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, "meera@example.com", req.Email)
				w.Write([]byte(tt.body))
			})
			client, _ := newBackend(t, mux)

			resp, err := client.Auth.Login(context.Background(), "meera@example.com", "secret")
			require.NoError(t, err)
			result, ok := resp.Value()
			require.True(t, ok)

			cred := credential.FromLogin(result)
			assert.Equal(t, "t1", cred.Token)
			assert.Equal(t, testUser, cred.User)
		})
	}
}

func TestResponseError_PlainBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /blog/{id}", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	})
	client, _ := newBackend(t, mux)

	_, err := client.Blog.GetByID(context.Background(), 5)

	var re *ResponseError
	require.ErrorAs(t, err, &re)
	assert.Nil(t, re.Envelope)
	assert.Equal(t, "gateway exploded", re.Body)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), re.Message())
	assert.Contains(t, err.Error(), "502")
	assert.False(t, IsNotFound(err))
}

func TestDecodeFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /feedback/average-rating", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>"))
	})
	client, _ := newBackend(t, mux)

	_, err := client.Feedback.GetAverageRating(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode")
	var withStatus *sharedErrors.ErrorWithStatusCode
	require.ErrorAs(t, err, &withStatus)
	assert.Equal(t, "Body is invalid json", withStatus.Message)
	_, isStatus := StatusCode(err)
	assert.False(t, isStatus)
}

type countingTransport struct{ n atomic.Int32 }

func (c *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	c.n.Add(1)
	return http.DefaultTransport.RoundTrip(r)
}

func TestWithTransport_AppliesAfterHTTPClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /rooms", func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, api.Response[[]domain.Room]{Success: true, Data: &[]domain.Room{}})
	})

	tests := []struct {
		name  string
		order func(rt http.RoundTripper, hc *http.Client) []Option
	}{
		{"transport first", func(rt http.RoundTripper, hc *http.Client) []Option {
			return []Option{WithTransport(rt), WithHTTPClient(hc)}
		}},
		{"client first", func(rt http.RoundTripper, hc *http.Client) []Option {
			return []Option{WithHTTPClient(hc), WithTransport(rt)}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &countingTransport{}
			hc := &http.Client{Timeout: 5 * time.Second}
			client, _ := newBackend(t, mux, tt.order(rt, hc)...)

			_, err := client.Rooms.GetAll(context.Background())
			require.NoError(t, err)
			assert.Equal(t, int32(1), rt.n.Load())
			assert.Equal(t, 5*time.Second, client.HttpClient.Timeout)
			assert.Nil(t, hc.Transport, "caller's client must not be modified")
		})
	}
}
