package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Observeo-tech/template-go-api/internal/application"
	"github.com/Observeo-tech/template-go-api/internal/domain/repository"
	"github.com/Observeo-tech/template-go-api/internal/events"
	"github.com/Observeo-tech/template-go-api/internal/session"
	"github.com/Observeo-tech/template-go-api/pkg/helpers"
	"github.com/Observeo-tech/template-go-api/pkg/notify"
	"github.com/Observeo-tech/template-go-api/pkg/response"
	"github.com/Observeo-tech/template-go-api/pkg/validation"
)

// AuthHandler is the transport adapter for the authentication use case.
// Session writes, job enqueueing, and event publishing all happen here,
// never inside the use case.
type AuthHandler struct {
	Svc        *application.Service
	Sessions   *session.Store
	Cookies    *helpers.Manager
	CookieName string
	Logger     *logrus.Logger
	Pub        *helpers.RabbitPublisher // nil when the queue is not configured
	Events     *events.Publisher        // nil when pub/sub is not configured
}

func NewAuthHandler(svc *application.Service, sessions *session.Store, cookies *helpers.Manager, cookieName string, logger *logrus.Logger, pub *helpers.RabbitPublisher, ev *events.Publisher) *AuthHandler {
	return &AuthHandler{
		Svc:        svc,
		Sessions:   sessions,
		Cookies:    cookies,
		CookieName: cookieName,
		Logger:     logger,
		Pub:        pub,
		Events:     ev,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

func clientIP(c *gin.Context) string {
	if ip := c.GetString("real_ip"); ip != "" {
		return ip
	}
	return c.ClientIP()
}

// Login handles POST /auth/login. Validation failures never reach the
// use case; invalid credentials come back as an opaque 401 and
// infrastructure failures as a generic 500 with detail only in the logs.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "validation failed", validation.ToFieldErrors(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}

	if sess := session.Current(c.Request.Context()); sess != nil {
		sess.SetUserID(res.User.ID)
	}

	if h.Pub != nil {
		job := notify.LoginNotification{
			To:   res.User.Email,
			Name: res.User.Name,
			Time: time.Now().UTC(),
			IP:   clientIP(c),
		}
		if err := h.Pub.PublishJSON(c.Request.Context(), job); err != nil && h.Logger != nil {
			h.Logger.WithError(err).Warn("failed to enqueue login notification")
		}
	}

	if h.Events != nil {
		ev := events.Event{Type: "user.login", Data: map[string]any{"user_id": res.User.ID}}
		if err := h.Events.Publish(c.Request.Context(), ev); err != nil && h.Logger != nil {
			h.Logger.WithError(err).Warn("failed to publish login event")
		}
	}

	c.JSON(http.StatusOK, res)
}

// Logout handles POST /auth/logout: drops the server-side session and
// clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess := session.Current(c.Request.Context()); sess != nil {
		if err := h.Sessions.Delete(c.Request.Context(), sess.ID); err != nil && h.Logger != nil {
			h.Logger.WithError(err).Warn("session delete failed")
		}
	}
	h.Cookies.ClearSession(c, h.CookieName)
	c.JSON(http.StatusOK, gin.H{"logged_out": true})
}

// Me handles GET /auth/me. The user id comes from the ambient session
// bound by the session middleware, not from a parameter.
func (h *AuthHandler) Me(c *gin.Context) {
	sess := session.Current(c.Request.Context())
	if sess == nil || sess.UserID() == "" {
		response.Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), sess.UserID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.Error(c, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.WithError(err).Error("user lookup failed")
		}
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u.Public()})
}
