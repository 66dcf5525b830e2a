package router

import (
	"steak-log-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(r *gin.Engine, authLimiter gin.HandlerFunc, h *handler.Handler) {
	r.POST("/login", authLimiter, h.Login)
	r.POST("/register", authLimiter, h.Register)
}
