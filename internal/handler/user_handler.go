package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListUsers(c *gin.Context) {
	usernames, err := h.service.ListUsernames()
	if err != nil {
		WriteServiceError(c, err, "获取用户列表失败")
		return
	}

	list := make([]gin.H, 0, len(usernames))
	for _, username := range usernames {
		list = append(list, gin.H{"username": username})
	}
	c.JSON(http.StatusOK, list)
}
