package router

import (
	"net/http"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/handler"
	frontendMW "github.com/Ghorpaderamdas/server-Hotel/frontend/internal/middleware"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/setup"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/templates"
	mw "github.com/Ghorpaderamdas/server-Hotel/shared/middleware"
	"github.com/Ghorpaderamdas/server-Hotel/shared/middleware/metrics"
	"github.com/go-chi/chi/v5"
	chiMW "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()
	// No RealIP: forwarded headers are client-controlled and the form
	// limiter keys on the connection's peer address.
	r.Use(chiMW.Recoverer)
	r.Use(chiMW.CleanPath)
	r.Use(metrics.Middleware)
	r.Use(mw.SecurityHeadersWithCSP(deps.Public.SecureCookies, mw.DefaultCSP))

	r.Get("/healthz", handler.HealthHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(templates.Static())))

	h := deps.Handler

	// Pages: every request carries the visitor's credential store and can be
	// redirected to the login page by the API client.
	r.Group(func(r chi.Router) {
		r.Use(deps.LoginRedirect.Middleware)
		r.Use(frontendMW.Credentials(deps.Cookies))

		r.With(availabilityCORS(deps.Public.AllowedOrigins)).Group(func(r chi.Router) {
			r.Get("/booking/check", h.BookingCheckHandler)
			r.Options("/booking/check", func(w http.ResponseWriter, r *http.Request) {})
		})

		r.Group(func(r chi.Router) {
			r.Use(frontendMW.CSRF(deps.Public.SecureCookies))
			r.Use(frontendMW.RateLimit(deps.FormLimiter, deps.Public.SecureCookies))

			r.Get("/", h.IndexGetHandler)
			r.Get("/rooms", h.RoomsGetHandler)
			r.Get("/rooms/{id}", h.RoomGetHandler)

			r.Get("/booking", h.BookingGetHandler)
			r.Post("/booking", h.BookingPostHandler)
			r.Get("/booking/lookup", h.BookingLookupHandler)
			r.Get("/booking/{id}", h.BookingConfirmationHandler)

			r.Get("/menu", h.MenuGetHandler)
			r.Get("/gallery", h.GalleryGetHandler)
			r.Get("/blog", h.BlogGetHandler)
			r.Get("/blog/{id}", h.BlogPostGetHandler)

			r.Get("/feedback", h.FeedbackGetHandler)
			r.Post("/feedback", h.FeedbackPostHandler)
			r.Get("/contact", h.ContactGetHandler)
			r.Post("/contact", h.ContactPostHandler)

			r.Route("/auth", func(r chi.Router) {
				r.Get("/login", h.LoginGetHandler)
				r.Post("/login", h.LoginPostHandler)
				r.Post("/google", h.SocialLoginPostHandler("google"))
				r.Post("/facebook", h.SocialLoginPostHandler("facebook"))
				r.Get("/register", h.RegisterGetHandler)
				r.Post("/register", h.RegisterPostHandler)
				r.Get("/forgot-password", h.ForgotPasswordGetHandler)
				r.Post("/forgot-password", h.ForgotPasswordPostHandler)
				r.Get("/reset-password", h.ResetPasswordGetHandler)
				r.Post("/reset-password", h.ResetPasswordPostHandler)
				r.Get("/otp", h.OtpGetHandler)
				r.Post("/otp", h.OtpPostHandler)
				r.Post("/logout", h.LogoutHandler)
			})

			r.Get("/profile", h.ProfileGetHandler)
		})
	})

	return r
}

// availabilityCORS lets partner sites embed the availability widget. Without
// configured origins the endpoint stays same-origin.
func availabilityCORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
}
