package setup

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/apiclient"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/credential"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/handler"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/markdown"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/middleware"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/templates"
	"github.com/Ghorpaderamdas/server-Hotel/shared/config"
	"github.com/Ghorpaderamdas/server-Hotel/shared/crypto"
	"github.com/Ghorpaderamdas/server-Hotel/shared/middleware/metrics"
)

type Dependencies struct {
	Handler       *handler.Handler
	Public        config.Public
	Cookies       *credential.Cookies
	LoginRedirect *middleware.LoginRedirect
	// FormLimiter is nil when form throttling is off.
	FormLimiter *middleware.Limiter
}

func SetupDependencies(cfg *config.Config, opts ...apiclient.Option) (*Dependencies, error) {
	key, err := cfg.CookieKey()
	if err != nil {
		return nil, err
	}
	sealer, err := crypto.NewSealer(key)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cookie sealer: %w", err)
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	loginRedirect := middleware.NewLoginRedirect(cfg.Public.LoginPath, cfg.Public.SecureCookies)
	apiClient := NewAPIClient(cfg.Public.APIURL, loginRedirect, cfg.Public.LoginPath, opts...)

	return &Dependencies{
		Handler:       handler.New(tmpl, cfg.Public, markdown.New(), apiClient),
		Public:        cfg.Public,
		Cookies:       credential.NewCookies(sealer, cfg.Public.SecureCookies),
		LoginRedirect: loginRedirect,
		FormLimiter:   middleware.PerMinute(cfg.Public.FormRatePerMinute, cfg.Public.FormBurst),
	}, nil
}

// backendTimeout bounds one backend round trip, body included.
const backendTimeout = 10 * time.Second

// NewAPIClient builds the instrumented backend client shared by the web
// server and the command line tools. Extra options apply last.
func NewAPIClient(apiURL string, nav apiclient.Navigator, loginPath string, opts ...apiclient.Option) *apiclient.APIClient {
	base := []apiclient.Option{
		apiclient.WithHTTPClient(&http.Client{Timeout: backendTimeout}),
		apiclient.WithTransport(metrics.InstrumentTransport(nil)),
		apiclient.WithRequestHook(apiclient.RequestID()),
		apiclient.WithAuth(nav, loginPath),
	}
	return apiclient.New(apiURL, append(base, opts...)...)
}
