package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) AddSteak(c *gin.Context) {
	var req struct {
		Type   string  `json:"type"`
		Cost   float64 `json:"cost"`
		Weight float64 `json:"weight"`
		Photo  *string `json:"photo"`
		User   string  `json:"user"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数格式错误"})
		return
	}

	owner := resolveOwner(c, req.User)
	steak, err := h.service.AddSteak(owner, req.Type, req.Cost, req.Weight, req.Photo)
	if err != nil {
		WriteServiceError(c, err, "记录保存失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, steak)
}

func (h *Handler) ListSteaks(c *gin.Context) {
	owner := resolveOwner(c, optionalBodyUser(c))
	steaks, err := h.service.ListSteaks(owner)
	if err != nil {
		WriteServiceError(c, err, "获取记录列表失败")
		return
	}

	c.JSON(http.StatusOK, steaks)
}

func (h *Handler) DeleteSteak(c *gin.Context) {
	owner := resolveOwner(c, optionalBodyUser(c))
	if err := h.service.DeleteSteak(owner, c.Param("id")); err != nil {
		WriteServiceError(c, err, "删除失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
