package frontend_domain

import "github.com/Ghorpaderamdas/server-Hotel/shared/domain"

// CommonTemplateData holds fields that are common to all page templates.
// Available in templates as .Common via the TemplateData wrapper.
type CommonTemplateData struct {
	Error            string
	Success          string
	User             *domain.User // nil for anonymous visitors
	CurrentPath      string       // highlights the active navbar entry
	CSRFToken        string       // CSRF token for form submissions
	EmailPlaceholder string       // Pre-filled email for auth forms (from cookie, not URL)
	Validation       ValidationData
}

// ValidationData holds the form limits templates render as input attributes.
// The backend enforces them again.
type ValidationData struct {
	PasswordMinLen int
	OtpCodeLen     int
	MinRating      int
	MaxRating      int
	CommentMaxLen  int
}

func DefaultValidation() ValidationData {
	return ValidationData{
		PasswordMinLen: 6,
		OtpCodeLen:     6,
		MinRating:      1,
		MaxRating:      5,
		CommentMaxLen:  1000,
	}
}
