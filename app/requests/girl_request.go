package requests

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// GirlStatusRequest 切换技师接单状态
type GirlStatusRequest struct {
	Status string `json:"status" valid:"required"`
}

// ValidateGirlStatus 校验技师状态请求
func ValidateGirlStatus(c *gin.Context) (*GirlStatusRequest, error) {
	rules := govalidator.MapData{
		"status": []string{"required", "in:active,suspended"},
	}
	messages := govalidator.MapData{
		"status": []string{
			"required:技师状态不能为空",
			"in:技师状态必须是 active 或 suspended",
		},
	}

	return ValidateRequestPtr[GirlStatusRequest](c, rules, messages)
}

// DepositCeilingRequest 调整押金额度
type DepositCeilingRequest struct {
	Ceiling float64 `json:"ceiling"`
}

// ValidateDepositCeiling 校验押金额度请求
func ValidateDepositCeiling(c *gin.Context) (*DepositCeilingRequest, error) {
	var req DepositCeilingRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}

	if req.Ceiling < 0 {
		return nil, fmt.Errorf("押金额度不能为负数")
	}

	return &req, nil
}
