package requests

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"backoffice/pkg/fiscal"
)

// ExportCreateRequest 发起结算报表导出
type ExportCreateRequest struct {
	Selector string `json:"selector"` // today / yesterday / before_yesterday
	GirlID   uint64 `json:"girl_id"`  // 可选，只导出单个技师
}

// ValidateExportCreate 校验导出请求
func ValidateExportCreate(c *gin.Context) (*ExportCreateRequest, error) {
	var req ExportCreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}

	if _, err := fiscal.ParseSelector(req.Selector); err != nil {
		return nil, err
	}

	return &req, nil
}
