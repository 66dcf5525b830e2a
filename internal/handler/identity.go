package handler

import (
	"strings"

	"steak-log-server/internal/consts"

	"github.com/gin-gonic/gin"
)

// resolveOwner 解析本次请求的操作者身份。
//
// 优先级：请求头 x-user-id > 请求体 user 字段 > 查询参数 user，
// 均未提供时退回匿名身份。该身份只决定记录归属，
// 不与任何登录凭证绑定。
func resolveOwner(c *gin.Context, bodyUser string) string {
	if v := strings.TrimSpace(c.GetHeader("x-user-id")); v != "" {
		return v
	}
	if v := strings.TrimSpace(bodyUser); v != "" {
		return v
	}
	if v := strings.TrimSpace(c.Query("user")); v != "" {
		return v
	}
	return consts.AnonymousOwner
}

// optionalBodyUser 从请求体中取可选的 user 字段。
// 没有请求体或 JSON 不合法时视为未提供。
func optionalBodyUser(c *gin.Context) string {
	var req struct {
		User string `json:"user"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return ""
	}
	return req.User
}
