package api

import "github.com/Ghorpaderamdas/server-Hotel/shared/domain"

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

type OtpRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type VerifyOtpRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	OtpCode     string `json:"otpCode"`
	NewPassword string `json:"newPassword"`
}

type SocialLoginRequest struct {
	Token string `json:"token"`
}

// Response DTOs

// LoginResult is the payload of a successful login. The backend either nests
// the user record or sends it flat next to the token; User() handles both.
type LoginResult struct {
	Token  string       `json:"token"`
	Type   string       `json:"type,omitempty"`
	Nested *domain.User `json:"user,omitempty"`

	Id       domain.UserId `json:"id,omitempty"`
	Username string        `json:"username,omitempty"`
	Email    string        `json:"email,omitempty"`
	Roles    []string      `json:"roles,omitempty"`
}

func (l LoginResult) User() domain.User {
	if l.Nested != nil {
		return *l.Nested
	}
	return domain.User{
		Id:       l.Id,
		Username: l.Username,
		Email:    l.Email,
		Roles:    l.Roles,
	}
}
