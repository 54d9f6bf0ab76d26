package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform success wrapper every endpoint ships:
// {"success": true, "data": <payload>, "timestamp": <RFC3339>}.
// Data is always present; a nil payload serializes as data: null.
type Envelope struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorBody is the error-path counterpart, built separately from the
// normalization pass. Errors carries per-field validation entries when
// there are any.
type ErrorBody struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Errors    any       `json:"errors,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Wrap builds a success envelope around payload.
func Wrap(payload any) Envelope {
	return Envelope{Success: true, Data: payload, Timestamp: time.Now().UTC()}
}

// Normalize wraps payload in an Envelope unless it already is one,
// detected structurally: anything carrying both a success and a
// timestamp field passes through unmodified so an envelope built by an
// inner layer is never double-wrapped.
func Normalize(payload any) any {
	if IsEnveloped(payload) {
		return payload
	}
	return Wrap(payload)
}

// IsEnveloped reports whether v already has the envelope shape.
func IsEnveloped(v any) bool {
	switch m := v.(type) {
	case Envelope, *Envelope, ErrorBody, *ErrorBody:
		return true
	case map[string]any:
		_, hasSuccess := m["success"]
		_, hasTimestamp := m["timestamp"]
		return hasSuccess && hasTimestamp
	}
	return false
}

// Error writes an error envelope and aborts the request.
func Error(c *gin.Context, status int, message string, errs any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, ErrorBody{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: time.Now().UTC(),
	})
}
