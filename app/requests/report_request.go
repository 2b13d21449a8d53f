package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// ReportCloseRequest 办结举报工单
type ReportCloseRequest struct {
	Resolution string `json:"resolution" valid:"required"` // resolved 或 dismissed
	HandleNote string `json:"handle_note" valid:"required"`
}

// ValidateReportClose 校验工单办结请求
func ValidateReportClose(c *gin.Context) (*ReportCloseRequest, error) {
	rules := govalidator.MapData{
		"resolution":  []string{"required", "in:resolved,dismissed"},
		"handle_note": []string{"required", "min:1", "max:500"},
	}
	messages := govalidator.MapData{
		"resolution": []string{
			"required:处理结论不能为空",
			"in:处理结论必须是 resolved 或 dismissed",
		},
		"handle_note": []string{
			"required:处理说明不能为空",
			"max:处理说明不能超过 500 个字符",
		},
	}

	return ValidateRequestPtr[ReportCloseRequest](c, rules, messages)
}
