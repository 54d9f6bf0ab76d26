package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Healthz is a liveness probe.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
