package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Manager sets and clears the HttpOnly session cookie.
type Manager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *Manager {
	return &Manager{Domain: domain, Secure: secure}
}

func (m *Manager) SetSession(c *gin.Context, name, id string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := int(ttl.Seconds())
	if maxAge < 0 {
		maxAge = 0
	}
	c.SetCookie(name, id, maxAge, "/", m.Domain, m.Secure, true)
}

func (m *Manager) ClearSession(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", m.Domain, m.Secure, true)
}
