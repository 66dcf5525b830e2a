package router

import (
	"steak-log-server/internal/handler"
	"steak-log-server/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler *handler.Handler
}

func NewRouter(h *handler.Handler) *Router {
	return &Router{handler: h}
}

func (rt *Router) Init(r *gin.Engine) {
	// 注册全局安全标头中间件
	r.Use(middleware.SecurityHeaders())
	// 应用请求体大小限制中间件
	r.Use(middleware.BodyLimitMiddleware())

	// 认证限流：登录与注册共用同一个实例，保持行为一致
	authLimiter := middleware.AuthRateLimitMiddleware()
	uploadLimiter := middleware.UploadRateLimitMiddleware()

	registerPublicRoutes(r, rt.handler)
	registerAuthRoutes(r, authLimiter, rt.handler)
	registerSteakRoutes(r, uploadLimiter, rt.handler)
}
