package handler

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/apiclient"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/credential"
	frontend_domain "github.com/Ghorpaderamdas/server-Hotel/frontend/internal/domain"
	"github.com/Ghorpaderamdas/server-Hotel/frontend/internal/middleware"
	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
	"github.com/Ghorpaderamdas/server-Hotel/shared/domain"
	sharedErrors "github.com/Ghorpaderamdas/server-Hotel/shared/errors"
	"github.com/Ghorpaderamdas/server-Hotel/shared/logger"
	"github.com/Ghorpaderamdas/server-Hotel/shared/utils"
)

const (
	msgBackendUnavailable = "Backend unavailable. Please try again later."
	msgRequestFailed      = "Something went wrong. Please try again."
)

// TemplateData wraps page-specific data with common template data.
// Templates access page data via .Data and common data via .Common.
type TemplateData struct {
	Data   any
	Common frontend_domain.CommonTemplateData
}

func (h *Handler) initCommonTemplateData(w http.ResponseWriter, r *http.Request) frontend_domain.CommonTemplateData {
	return frontend_domain.CommonTemplateData{
		Error:            h.popFlash(w, r, flashCookieError),
		Success:          h.popFlash(w, r, flashCookieSuccess),
		EmailPlaceholder: h.popFlash(w, r, emailPrefillCookie),
		User:             currentUser(r),
		CurrentPath:      r.URL.Path,
		CSRFToken:        middleware.CSRFToken(r),
		Validation:       frontend_domain.DefaultValidation(),
	}
}

// currentUser hydrates the layout from the credential store. A damaged
// credential counts as anonymous and is thrown away.
func currentUser(r *http.Request) *domain.User {
	store, ok := credential.FromContext(r.Context())
	if !ok {
		return nil
	}
	cred, err := store.Get()
	if err != nil {
		if errors.Is(err, credential.ErrMalformed) {
			logger.Log.Warn("discarding malformed credential", "error", err)
			store.Clear()
		}
		return nil
	}
	if cred == nil {
		return nil
	}
	return &cred.User
}

func (h *Handler) renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	h.renderTemplateWithError(w, r, http.StatusOK, name, data, "")
}

func (h *Handler) renderTemplateWithError(w http.ResponseWriter, r *http.Request, status int, name string, data any, errMsg string) {
	// A rejected credential already sent the visitor to the login page.
	if middleware.Navigated(r.Context()) {
		return
	}

	tmpl, ok := h.Templates[name]
	if !ok {
		utils.WriteErrorAndStatusCode(w, &sharedErrors.ErrorWithStatusCode{
			Message:    fmt.Sprintf("Template %s not found", name),
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	common := h.initCommonTemplateData(w, r)
	if errMsg != "" {
		common.Error = errMsg
	}

	wrapped := TemplateData{
		Data:   data,
		Common: common,
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, wrapped); err != nil {
		logger.Log.Error("error executing template", "template", name, "error", err)
		utils.WriteErrorAndStatusCode(w, &sharedErrors.ErrorWithStatusCode{
			Message:    "Internal Server Error rendering template",
			StatusCode: http.StatusInternalServerError,
		})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderError shows the error page. The status comes from err when it is an
// ErrorWithStatusCode.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := sharedErrors.StatusCode(err)
	title := http.StatusText(status)
	message := msgRequestFailed
	var withStatus *sharedErrors.ErrorWithStatusCode
	if errors.As(err, &withStatus) {
		message = withStatus.Message
	}
	h.renderTemplateWithError(w, r, status, "error.html", frontend_domain.ErrorPageData{Title: title, Message: message}, "")
}

// renderFetchError shows the error page for a detail page whose record could
// not be loaded. A refusal inside a 2xx envelope counts as not found.
func (h *Handler) renderFetchError(w http.ResponseWriter, r *http.Request, err error, errMsg, notFound string) {
	if err == nil || apiclient.IsNotFound(err) {
		h.renderError(w, r, sharedErrors.NotFound(notFound))
		return
	}
	h.renderError(w, r, &sharedErrors.ErrorWithStatusCode{Message: errMsg, StatusCode: http.StatusBadGateway})
}

// backendErrorMessage converts an API error into text for the error banner.
func backendErrorMessage(err error) string {
	var te *apiclient.TransportError
	var re *apiclient.ResponseError
	switch {
	case errors.As(err, &te):
		return msgBackendUnavailable
	case errors.As(err, &re):
		return re.Message()
	default:
		return msgRequestFailed
	}
}

// result unpacks a backend call. errMsg is empty on success and otherwise
// holds the banner text, taken from the envelope when the backend said no.
func result[T any](resp *api.Response[T], err error) (value T, errMsg string) {
	if err != nil {
		return value, backendErrorMessage(err)
	}
	value, ok := resp.Value()
	if !ok {
		// Endpoints without a payload only report success.
		if _, empty := any(value).(api.Empty); empty && resp.Success {
			return value, ""
		}
		if msg := resp.ErrorMessage(); msg != "" {
			return value, msg
		}
		return value, msgRequestFailed
	}
	return value, ""
}

// logBackendError logs failures worth an operator's attention. 401 and 404
// are ordinary outcomes.
func logBackendError(op string, err error) {
	if err == nil || apiclient.IsUnauthorized(err) || apiclient.IsNotFound(err) {
		return
	}
	logger.Log.Error(op, "error", err)
}
