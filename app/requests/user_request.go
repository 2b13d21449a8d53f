package requests

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// UserBanRequest 封禁/解封客户
type UserBanRequest struct {
	Banned bool   `json:"banned"`
	Reason string `json:"reason"`
}

// ValidateUserBan 校验封禁请求，封禁必须给出原因
func ValidateUserBan(c *gin.Context) (*UserBanRequest, error) {
	var req UserBanRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}

	if req.Banned && req.Reason == "" {
		return nil, fmt.Errorf("封禁客户必须填写原因")
	}

	return &req, nil
}
