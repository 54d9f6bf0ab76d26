package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/Observeo-tech/template-go-api/internal/interface/ws"
)

// EventsModule exposes the websocket events endpoint.

type EventsModule struct {
	Handler *ws.Handler
}

func NewEventsModule(h *ws.Handler) *EventsModule {
	return &EventsModule{Handler: h}
}

func (m *EventsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/events/ws", m.Handler.Serve)
}
