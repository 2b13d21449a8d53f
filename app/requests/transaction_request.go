package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// TransactionCancelRequest 取消流水
type TransactionCancelRequest struct {
	Reason string `json:"reason" valid:"required"`
}

// ValidateTransactionCancel 校验取消流水请求
func ValidateTransactionCancel(c *gin.Context) (*TransactionCancelRequest, error) {
	rules := govalidator.MapData{
		"reason": []string{"required", "min:1", "max:500"},
	}
	messages := govalidator.MapData{
		"reason": []string{
			"required:取消原因不能为空",
			"min:取消原因不能为空",
			"max:取消原因不能超过 500 个字符",
		},
	}

	return ValidateRequestPtr[TransactionCancelRequest](c, rules, messages)
}
