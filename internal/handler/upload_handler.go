package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未选择文件"})
		return
	}

	filename, err := h.service.StoreUpload(file)
	if err != nil {
		log.Printf("Upload failed: %v", err)
		WriteServiceError(c, err, "上传失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{"filename": filename})
}
