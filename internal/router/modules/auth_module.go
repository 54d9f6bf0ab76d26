package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Observeo-tech/template-go-api/internal/container"
	handlers "github.com/Observeo-tech/template-go-api/internal/interface/http"
	"github.com/Observeo-tech/template-go-api/internal/interface/middleware"
)

// AuthModule wires the auth endpoints.
// Public: POST /api/auth/login
// Session-backed: POST /api/auth/logout, GET /api/auth/me

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// 10 attempts/min per IP keeps credential stuffing slow without
	// bothering real users
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/logout", m.Handler.Logout)
	rg.GET("/auth/me", m.Handler.Me)
}
