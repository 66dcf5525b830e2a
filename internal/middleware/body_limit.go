package middleware

import (
	"fmt"
	"net/http"

	"steak-log-server/internal/config"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware 限制请求体大小，超限返回 413
func BodyLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		maxMB := config.Get().Limit.BodyMaxMB
		if maxMB <= 0 {
			c.Next()
			return
		}

		limit := int64(maxMB) * 1024 * 1024
		if c.Request.ContentLength > limit {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("请求体不能超过 %dMB", maxMB)})
			c.Abort()
			return
		}

		// ContentLength 不可信时由 MaxBytesReader 兜底
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
