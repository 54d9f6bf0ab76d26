package middleware

import (
	"bufio"
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Observeo-tech/template-go-api/pkg/response"
)

// normalizeWriter buffers the response body and defers the status line
// so the envelope pass can rewrite 2xx JSON bodies before anything
// reaches the wire.
type normalizeWriter struct {
	gin.ResponseWriter
	body     bytes.Buffer
	status   int
	flushed  bool
	hijacked bool
}

func (w *normalizeWriter) WriteHeader(code int) {
	w.status = code
}

// WriteHeaderNow is forced by abort paths (e.g. recovery); honor it so
// the status is not lost even though the envelope pass is skipped.
func (w *normalizeWriter) WriteHeaderNow() {
	if w.flushed {
		return
	}
	if w.status != 0 {
		w.flushed = true
		w.ResponseWriter.WriteHeader(w.status)
		w.ResponseWriter.WriteHeaderNow()
	}
}

func (w *normalizeWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}

func (w *normalizeWriter) WriteString(s string) (int, error) {
	return w.body.WriteString(s)
}

func (w *normalizeWriter) Status() int {
	if w.status != 0 {
		return w.status
	}
	return w.ResponseWriter.Status()
}

func (w *normalizeWriter) Written() bool {
	return w.status != 0 || w.body.Len() > 0
}

func (w *normalizeWriter) Size() int {
	return w.body.Len()
}

// Hijack hands the connection to the caller (websocket upgrades); the
// envelope pass must not touch it afterwards.
func (w *normalizeWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	w.hijacked = true
	return w.ResponseWriter.Hijack()
}

// ResponseNormalizer wraps every successful JSON response in the
// standard envelope in one cross-cutting pass. Payloads that already
// carry the envelope shape (a success and a timestamp field) are passed
// through unmodified. Error statuses and non-JSON bodies are untouched.
func ResponseNormalizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		w := &normalizeWriter{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		if w.hijacked {
			return
		}

		status := w.status
		if status == 0 {
			status = http.StatusOK
		}
		body := w.body.Bytes()

		if shouldNormalize(status, w.Header().Get("Content-Type"), body) {
			var payload any
			if err := json.Unmarshal(body, &payload); err == nil {
				if wrapped, merr := json.Marshal(response.Normalize(payload)); merr == nil {
					body = wrapped
				}
			}
		}

		if !w.flushed {
			w.flushed = true
			w.ResponseWriter.WriteHeader(status)
		}
		if len(body) > 0 {
			_, _ = w.ResponseWriter.Write(body)
		}
	}
}

func shouldNormalize(status int, contentType string, body []byte) bool {
	if status < 200 || status >= 300 {
		return false
	}
	if len(body) == 0 {
		return false
	}
	return strings.Contains(contentType, "application/json")
}
