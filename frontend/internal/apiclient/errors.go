package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Ghorpaderamdas/server-Hotel/shared/api"
)

const maxErrorBody = 64 << 10

// TransportError means no response reached us.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend unavailable: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ResponseError is a non-2xx answer from the backend.
type ResponseError struct {
	Method     string
	Path       string
	StatusCode int
	// Envelope is set when the body was a JSON envelope.
	Envelope *api.Response[json.RawMessage]
	Body     string
}

func newResponseError(method, path string, resp *http.Response) *ResponseError {
	e := &ResponseError{Method: method, Path: path, StatusCode: resp.StatusCode}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	resp.Body.Close()
	resp.Body = http.NoBody

	var envelope api.Response[json.RawMessage]
	if err := json.Unmarshal(raw, &envelope); err == nil && (envelope.Error != "" || envelope.Message != "") {
		e.Envelope = &envelope
	} else {
		e.Body = strings.TrimSpace(string(raw))
	}
	return e
}

// Message is the text worth showing to a visitor.
func (e *ResponseError) Message() string {
	if msg := e.Envelope.ErrorMessage(); msg != "" {
		return msg
	}
	return http.StatusText(e.StatusCode)
}

func (e *ResponseError) Error() string {
	detail := e.Envelope.ErrorMessage()
	if detail == "" {
		detail = e.Body
	}
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("backend returned status %d for %s %s: %s", e.StatusCode, e.Method, e.Path, detail)
}

// StatusCode returns the backend status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var re *ResponseError
	if errors.As(err, &re) {
		return re.StatusCode, true
	}
	return 0, false
}

func IsUnauthorized(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}
