//go:build !embed

package main

import (
	"io/fs"

	"github.com/gin-gonic/gin"
)

// GetFrontendAssets 默认构建不内嵌前端，返回 nil。
// 需要内嵌时加 -tags embed 编译。
func GetFrontendAssets() fs.FS {
	return nil
}

func setupFrontend(_ *gin.Engine, _ fs.FS) []byte {
	return nil
}
