package router

import (
	"github.com/Observeo-tech/template-go-api/internal/application"
	"github.com/Observeo-tech/template-go-api/internal/container"
	pginfra "github.com/Observeo-tech/template-go-api/internal/infrastructure/postgres"
	handlers "github.com/Observeo-tech/template-go-api/internal/interface/http"
	"github.com/Observeo-tech/template-go-api/internal/interface/ws"
	"github.com/Observeo-tech/template-go-api/internal/router/modules"
	"github.com/Observeo-tech/template-go-api/pkg/helpers"
)

func buildAuthHandler() *handlers.AuthHandler {
	cfg := container.GetConfig()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewService(repo, helpers.NewBcryptHasher(), container.GetLogger())

	return handlers.NewAuthHandler(
		svc,
		container.GetSessionStore(),
		helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure),
		cfg.SessionCookie,
		container.GetLogger(),
		container.GetRabbitPub(),
		container.GetEventsPub(),
	)
}

// InitModules builds all application modules from the container
// singletons and registers them with the router registry. Called once
// during startup.
func InitModules(r *Registry, hub *ws.Hub) {
	r.Add(modules.NewHealthModule())
	r.Add(modules.NewAuthModule(buildAuthHandler()))
	r.Add(modules.NewEventsModule(ws.NewHandler(hub, container.GetLogger())))
}
