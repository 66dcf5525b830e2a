package handler

import (
	"steak-log-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}
