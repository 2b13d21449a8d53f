package requests

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// SettlementPaymentRequest 更新收款信息
// 指针字段区分"未提交"和"提交了零值"
type SettlementPaymentRequest struct {
	ActualPaidAmount   *float64 `json:"actual_paid_amount"`
	CustomerPaidAmount *float64 `json:"customer_paid_amount"`
	PlatformShouldGet  *float64 `json:"platform_should_get"`
	PaymentMethod      *string  `json:"payment_method"`
	PaymentNotes       *string  `json:"payment_notes"`
	Notes              *string  `json:"notes"`
}

// ValidateSettlementPayment 校验收款信息更新请求
func ValidateSettlementPayment(c *gin.Context) (*SettlementPaymentRequest, error) {
	var req SettlementPaymentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}

	// 至少提交一个字段
	if req.ActualPaidAmount == nil && req.CustomerPaidAmount == nil &&
		req.PlatformShouldGet == nil &&
		req.PaymentMethod == nil && req.PaymentNotes == nil && req.Notes == nil {
		return nil, fmt.Errorf("至少提交一个待更新字段")
	}

	if req.ActualPaidAmount != nil && *req.ActualPaidAmount < 0 {
		return nil, fmt.Errorf("实收金额不能为负数")
	}
	if req.CustomerPaidAmount != nil && *req.CustomerPaidAmount < 0 {
		return nil, fmt.Errorf("客户支付金额不能为负数")
	}
	if req.PlatformShouldGet != nil && *req.PlatformShouldGet < 0 {
		return nil, fmt.Errorf("平台应得金额不能为负数")
	}

	return &req, nil
}

// SettlementRejectRequest 驳回结算
type SettlementRejectRequest struct {
	Reason string `json:"reason" valid:"required"`
}

// ValidateSettlementReject 校验驳回请求
func ValidateSettlementReject(c *gin.Context) (*SettlementRejectRequest, error) {
	rules := govalidator.MapData{
		"reason": []string{"required", "min:1", "max:500"},
	}
	messages := govalidator.MapData{
		"reason": []string{
			"required:驳回原因不能为空",
			"min:驳回原因不能为空",
			"max:驳回原因不能超过 500 个字符",
		},
	}

	return ValidateRequestPtr[SettlementRejectRequest](c, rules, messages)
}

// SettlementBatchRequest 批量结算
type SettlementBatchRequest struct {
	IDs []uint64 `json:"ids" valid:"required"`
}

// ValidateSettlementBatch 校验批量结算请求
func ValidateSettlementBatch(c *gin.Context) (*SettlementBatchRequest, error) {
	var req SettlementBatchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, fmt.Errorf("解析 JSON 失败: %w", err)
	}

	if len(req.IDs) == 0 {
		return nil, fmt.Errorf("结算记录ID列表不能为空")
	}
	if len(req.IDs) > 200 {
		return nil, fmt.Errorf("单次批量结算最多 200 条")
	}

	return &req, nil
}
