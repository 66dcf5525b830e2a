package router

import (
	"steak-log-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(r *gin.Engine, h *handler.Handler) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong from gin"})
	})
	r.GET("/users", h.ListUsers)
}
