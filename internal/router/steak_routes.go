package router

import (
	"steak-log-server/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerSteakRoutes(r *gin.Engine, uploadLimiter gin.HandlerFunc, h *handler.Handler) {
	r.POST("/upload", uploadLimiter, h.UploadPhoto)
	r.POST("/add_steak", h.AddSteak)
	r.GET("/steaks", h.ListSteaks)
	r.DELETE("/steak/:id", h.DeleteSteak)
}
