package ws

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Observeo-tech/template-go-api/internal/session"
	"github.com/Observeo-tech/template-go-api/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is enforced by the HTTP layer; the cookie-bound session below
	// is what gates the upgrade.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Handler upgrades authenticated requests to a websocket connection fed
// by the hub.
type Handler struct {
	Hub    *Hub
	Logger *logrus.Logger
}

func NewHandler(hub *Hub, logger *logrus.Logger) *Handler {
	return &Handler{Hub: hub, Logger: logger}
}

// Serve handles GET /events/ws. The current user is resolved from the
// ambient session bound by the session middleware.
func (h *Handler) Serve(c *gin.Context) {
	sess := session.Current(c.Request.Context())
	if sess == nil || sess.UserID() == "" {
		response.Error(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).Warn("websocket upgrade failed")
		}
		return
	}
	h.Hub.serve(conn)
}
