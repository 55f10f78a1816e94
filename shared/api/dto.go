package api

// Response is the envelope every backend endpoint answers with.
// Data is nil when the backend sent no payload.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Value returns the payload only for successful responses that carry one.
func (r *Response[T]) Value() (T, bool) {
	var zero T
	if r == nil || !r.Success || r.Data == nil {
		return zero, false
	}
	return *r.Data, true
}

// ErrorMessage picks the most specific failure text the backend gave.
func (r *Response[T]) ErrorMessage() string {
	if r == nil {
		return ""
	}
	if r.Error != "" {
		return r.Error
	}
	return r.Message
}

// Empty is the payload type for endpoints that only report success.
type Empty = struct{}
