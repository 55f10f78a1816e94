package setup

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/apiclient"
	"github.com/Ghorpaderamdas/server-Hotel/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAPIClient(t *testing.T) {
	nav := apiclient.NavigatorFunc(func(context.Context, string) {})
	client := NewAPIClient("http://localhost:8080/api/", nav, config.DefaultLoginPath)

	assert.Equal(t, "http://localhost:8080/api", client.BaseURL)
	assert.Equal(t, backendTimeout, client.HttpClient.Timeout)
	assert.NotNil(t, client.HttpClient.Transport)
	assert.NotSame(t, http.DefaultClient, client.HttpClient)
}

func TestSetupDependencies(t *testing.T) {
	cfg := config.New(config.Public{
		APIURL:            config.DefaultAPIURL,
		LoginPath:         config.DefaultLoginPath,
		FormRatePerMinute: 10,
		FormBurst:         5,
	}, bytes.Repeat([]byte{2}, 32))

	deps, err := SetupDependencies(cfg)
	require.NoError(t, err)
	assert.NotNil(t, deps.Handler)
	assert.NotNil(t, deps.Cookies)
	assert.NotNil(t, deps.LoginRedirect)
	assert.NotNil(t, deps.FormLimiter)

	cfg.Public.FormRatePerMinute = 0
	deps, err = SetupDependencies(cfg)
	require.NoError(t, err)
	assert.Nil(t, deps.FormLimiter)
}

func TestSetupDependencies_BadKey(t *testing.T) {
	_, err := SetupDependencies(config.New(config.Public{APIURL: config.DefaultAPIURL}, []byte("short")))
	assert.Error(t, err)
}
