package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/apiclient"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/credential"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/setup"
	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/config"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok", "data": data})
}

func newAdminBackend(t *testing.T, roles []string) *apiclient.APIClient {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req api.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid credentials"})
			return
		}
		writeData(w, api.LoginResult{Token: "admin-tok", Id: 1, Username: "manager", Email: req.Email, Roles: roles})
	})
	mux.HandleFunc("GET /admin/users", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer admin-tok" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		writeData(w, []domain.User{
			{Id: 1, Username: "manager", Email: "manager@kalsubai.example", Roles: []string{domain.RoleAdmin}},
			{Id: 5, Username: "asha", Email: "asha@example.com", PhoneNumber: "9876543210", Roles: []string{"ROLE_USER"}},
		})
	})
	server := httptest.NewServer(http.StripPrefix("/api", mux))
	t.Cleanup(server.Close)

	var nav bytes.Buffer
	return setup.NewAPIClient(server.URL+"/api", cliNavigator(&nav), config.DefaultLoginPath)
}

func TestAdminSession_ListUsers(t *testing.T) {
	client := newAdminBackend(t, []string{domain.RoleAdmin})

	ctx, err := adminSession(context.Background(), client, "manager@kalsubai.example", "secret")
	require.NoError(t, err)
	store, ok := credential.FromContext(ctx)
	require.True(t, ok)
	token, ok := store.Token()
	require.True(t, ok)
	assert.Equal(t, "admin-tok", token)

	var out bytes.Buffer
	require.NoError(t, listUsers(ctx, client, &out))
	assert.Contains(t, out.String(), "asha@example.com")
	assert.Contains(t, out.String(), "9876543210")
	assert.Contains(t, out.String(), "ROLE_ADMIN")
}

func TestAdminSession_Refused(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		password string
		errMsg   string
	}{
		{name: "wrong password", roles: []string{domain.RoleAdmin}, password: "nope", errMsg: "Invalid credentials"},
		{name: "not an administrator", roles: []string{"ROLE_USER"}, password: "secret", errMsg: errNotAdmin.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newAdminBackend(t, tt.roles)
			_, err := adminSession(context.Background(), client, "manager@kalsubai.example", tt.password)
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestPrintUsers_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printUsers(&buf, nil))
	assert.Equal(t, "No users found\n", buf.String())
}
