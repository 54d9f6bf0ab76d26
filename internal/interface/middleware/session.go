package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Observeo-tech/template-go-api/internal/session"
	"github.com/Observeo-tech/template-go-api/pkg/helpers"
)

// Session resolves the request's session from the session_id cookie and
// binds it into the request context, so any code downstream of this
// middleware can call session.Current without the session being passed
// around. A client without a valid token gets a fresh session and its
// cookie. Dirty sessions are saved after the handler chain finishes.
func Session(store *session.Store, cookies *helpers.Manager, cookieName string, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookieName)

		sess, err := store.Load(c.Request.Context(), id)
		if err != nil && logger != nil {
			logger.WithError(err).Warn("session load failed, issuing fresh session")
		}
		if sess == nil {
			sess = session.New()
			cookies.SetSession(c, cookieName, sess.ID, store.TTL())
		}

		c.Request = c.Request.WithContext(session.With(c.Request.Context(), sess))
		c.Next()

		if sess.Dirty() {
			if err := store.Save(c.Request.Context(), sess); err != nil && logger != nil {
				logger.WithError(err).WithField("session_id", sess.ID).Warn("session save failed")
			}
		}
	}
}
