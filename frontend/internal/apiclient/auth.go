package apiclient

import (
	"context"

	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
)

type AuthAPI struct{ c *APIClient }

// Login is one of the two calls that can yield a credential; persist it with
// credential.FromLogin on a successful result.
func (a *AuthAPI) Login(ctx context.Context, email, password string) (*api.Response[api.LoginResult], error) {
	return post[api.LoginResult](ctx, a.c, "/auth/login", api.LoginRequest{Email: email, Password: password})
}

// Register creates an account. The backend currently answers without a token;
// if it ever sends one the result carries it like Login does.
func (a *AuthAPI) Register(ctx context.Context, data api.RegisterRequest) (*api.Response[api.LoginResult], error) {
	return post[api.LoginResult](ctx, a.c, "/auth/register", data)
}

func (a *AuthAPI) ForgotPassword(ctx context.Context, email string) (*api.Response[api.Empty], error) {
	return post[api.Empty](ctx, a.c, "/auth/forgot-password", api.ForgotPasswordRequest{Email: email})
}

func (a *AuthAPI) ResetPassword(ctx context.Context, token, newPassword string) (*api.Response[api.Empty], error) {
	return post[api.Empty](ctx, a.c, "/auth/reset-password", api.ResetPasswordRequest{Token: token, NewPassword: newPassword})
}

func (a *AuthAPI) RequestOtp(ctx context.Context, phoneNumber string) (*api.Response[api.Empty], error) {
	return post[api.Empty](ctx, a.c, "/auth/request-otp", api.OtpRequest{PhoneNumber: phoneNumber})
}

func (a *AuthAPI) VerifyOtp(ctx context.Context, phoneNumber, otpCode, newPassword string) (*api.Response[api.Empty], error) {
	return post[api.Empty](ctx, a.c, "/auth/verify-otp", api.VerifyOtpRequest{
		PhoneNumber: phoneNumber,
		OtpCode:     otpCode,
		NewPassword: newPassword,
	})
}

// GoogleLogin exchanges a Google ID token for a backend session.
func (a *AuthAPI) GoogleLogin(ctx context.Context, idToken string) (*api.Response[api.LoginResult], error) {
	return post[api.LoginResult](ctx, a.c, "/auth/google", api.SocialLoginRequest{Token: idToken})
}

// FacebookLogin exchanges a Facebook access token for a backend session.
func (a *AuthAPI) FacebookLogin(ctx context.Context, accessToken string) (*api.Response[api.LoginResult], error) {
	return post[api.LoginResult](ctx, a.c, "/auth/facebook", api.SocialLoginRequest{Token: accessToken})
}
