package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/credential"
	frontend_domain "github.com/Ghorpaderamdas/server-Hotel/frontend/internal/domain"
	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	sharedErrors "github.com/Ghorpaderamdas/server-Hotel/shared/errors"
	"github.com/Ghorpaderamdas/server-Hotel/shared/logger"
	"github.com/Ghorpaderamdas/server-Hotel/shared/utils"
)

func (h *Handler) LoginGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "login.html", nil)
}

func (h *Handler) LoginPostHandler(w http.ResponseWriter, r *http.Request) {
	email := parseEmail(r)
	password := r.FormValue("password")

	resp, err := h.APIClient.Auth.Login(r.Context(), email, password)
	logBackendError("during login API call", err)
	h.finishLogin(w, r, email, resp, err)
}

// SocialLoginPostHandler exchanges a provider token posted by the sign-in
// widget for a backend session.
func (h *Handler) SocialLoginPostHandler(provider string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("token")

		var (
			resp *api.Response[api.LoginResult]
			err  error
		)
		switch provider {
		case "google":
			resp, err = h.APIClient.Auth.GoogleLogin(r.Context(), token)
		case "facebook":
			resp, err = h.APIClient.Auth.FacebookLogin(r.Context(), token)
		default:
			utils.WriteErrorAndStatusCode(w, sharedErrors.NotFound("Unknown sign-in provider"))
			return
		}
		logBackendError("during "+provider+" login API call", err)
		h.finishLogin(w, r, "", resp, err)
	}
}

// finishLogin persists the credential of a successful login. A bad password
// comes back as 401, whose hook already redirects to the login page; the
// flash set here explains why.
func (h *Handler) finishLogin(w http.ResponseWriter, r *http.Request, email string, resp *api.Response[api.LoginResult], err error) {
	loginResult, errMsg := result(resp, err)
	if errMsg == "" && loginResult.Token == "" {
		errMsg = "Login failed: no token received."
	}
	if errMsg != "" {
		h.setFlash(w, emailPrefillCookie, email)
		h.redirectWithFlash(w, r, h.Public.LoginPath, flashCookieError, errMsg)
		return
	}

	store, ok := credential.FromContext(r.Context())
	if !ok {
		logger.Log.Error("no credential store in request context", "path", r.URL.Path)
		h.redirectWithFlash(w, r, h.Public.LoginPath, flashCookieError, msgRequestFailed)
		return
	}
	cred := credential.FromLogin(loginResult)
	if err := store.Set(cred); err != nil {
		logger.Log.Error("storing credential", "error", err)
		h.redirectWithFlash(w, r, h.Public.LoginPath, flashCookieError, "Login failed: invalid response from server.")
		return
	}

	logger.Log.Info("user logged in", "user_id", cred.User.Id)
	h.redirectWithFlash(w, r, "/", flashCookieSuccess, "Welcome back, "+cred.User.DisplayName()+"!")
}

func (h *Handler) RegisterGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "register.html", nil)
}

func (h *Handler) RegisterPostHandler(w http.ResponseWriter, r *http.Request) {
	req := api.RegisterRequest{
		Username:    strings.TrimSpace(r.FormValue("username")),
		Email:       parseEmail(r),
		Password:    r.FormValue("password"),
		PhoneNumber: strings.TrimSpace(r.FormValue("phoneNumber")),
	}

	resp, err := h.APIClient.Auth.Register(r.Context(), req)
	logBackendError("during registration API call", err)
	registered, errMsg := result(resp, err)
	if errMsg != "" {
		h.setFlash(w, emailPrefillCookie, req.Email)
		h.redirectWithFlash(w, r, "/auth/register", flashCookieError, errMsg)
		return
	}

	// Some backends sign the new user in right away.
	if registered.Token != "" {
		h.finishLogin(w, r, req.Email, resp, nil)
		return
	}
	h.setFlash(w, emailPrefillCookie, req.Email)
	h.redirectWithFlash(w, r, h.Public.LoginPath, flashCookieSuccess, "Registration successful! You can now log in.")
}

func (h *Handler) ForgotPasswordGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "forgot_password.html", nil)
}

func (h *Handler) ForgotPasswordPostHandler(w http.ResponseWriter, r *http.Request) {
	email := parseEmail(r)
	resp, err := h.APIClient.Auth.ForgotPassword(r.Context(), email)
	logBackendError("requesting password reset", err)
	if _, errMsg := result(resp, err); errMsg != "" {
		h.setFlash(w, emailPrefillCookie, email)
		h.redirectWithFlash(w, r, "/auth/forgot-password", flashCookieError, errMsg)
		return
	}
	h.redirectWithFlash(w, r, h.Public.LoginPath, flashCookieSuccess, "If the email is registered, a reset link is on its way.")
}

func (h *Handler) ResetPasswordGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "reset_password.html", frontend_domain.ResetPasswordPageData{Token: r.URL.Query().Get("token")})
}

func (h *Handler) ResetPasswordPostHandler(w http.ResponseWriter, r *http.Request) {
	token := r.FormValue("token")
	resp, err := h.APIClient.Auth.ResetPassword(r.Context(), token, r.FormValue("newPassword"))
	logBackendError("resetting password", err)
	if _, errMsg := result(resp, err); errMsg != "" {
		h.redirectWithFlash(w, r, "/auth/reset-password?token="+url.QueryEscape(token), flashCookieError, errMsg)
		return
	}
	h.redirectWithFlash(w, r, h.Public.LoginPath, flashCookieSuccess, "Password updated. You can now log in.")
}

func (h *Handler) OtpGetHandler(w http.ResponseWriter, r *http.Request) {
	h.renderTemplate(w, r, "otp.html", frontend_domain.OtpPageData{})
}

// OtpPostHandler drives the two-step phone reset: request a code, then verify
// it together with the new password.
func (h *Handler) OtpPostHandler(w http.ResponseWriter, r *http.Request) {
	data := frontend_domain.OtpPageData{PhoneNumber: strings.TrimSpace(r.FormValue("phoneNumber"))}

	if r.FormValue("step") == "verify" {
		resp, err := h.APIClient.Auth.VerifyOtp(r.Context(), data.PhoneNumber, strings.TrimSpace(r.FormValue("otpCode")), r.FormValue("newPassword"))
		logBackendError("verifying otp", err)
		if _, errMsg := result(resp, err); errMsg != "" {
			data.CodeSent = true
			h.renderTemplateWithError(w, r, http.StatusOK, "otp.html", data, errMsg)
			return
		}
		h.redirectWithFlash(w, r, h.Public.LoginPath, flashCookieSuccess, "Password updated. You can now log in.")
		return
	}

	resp, err := h.APIClient.Auth.RequestOtp(r.Context(), data.PhoneNumber)
	logBackendError("requesting otp", err)
	if _, errMsg := result(resp, err); errMsg != "" {
		h.renderTemplateWithError(w, r, http.StatusOK, "otp.html", data, errMsg)
		return
	}
	data.CodeSent = true
	h.renderTemplate(w, r, "otp.html", data)
}

func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if store, ok := credential.FromContext(r.Context()); ok {
		store.Clear()
	}
	h.redirectWithFlash(w, r, "/", flashCookieSuccess, "You have been logged out.")
}

// ProfileGetHandler needs a signed-in visitor; anonymous ones get a 401,
// which the login redirect middleware turns into a trip to the login page.
func (h *Handler) ProfileGetHandler(w http.ResponseWriter, r *http.Request) {
	store, ok := credential.FromContext(r.Context())
	if ok {
		_, ok = store.Token()
	}
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	resp, err := h.APIClient.User.GetProfile(r.Context())
	logBackendError("fetching profile", err)
	user, errMsg := result(resp, err)
	if errMsg != "" {
		h.renderFetchError(w, r, err, errMsg, "Profile not found")
		return
	}
	h.renderTemplate(w, r, "profile.html", frontend_domain.ProfilePageData{User: user})
}
