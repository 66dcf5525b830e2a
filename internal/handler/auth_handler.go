package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少登录凭证"})
		return
	}

	user, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少用户名或密码"})
		return
	}

	user, err := h.service.Register(req.Username, req.Password)
	if err != nil {
		WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
