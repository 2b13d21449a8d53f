package requests

import (
	"github.com/gin-gonic/gin"
	"github.com/thedevsaddam/govalidator"
)

// AdminCreateRequest 创建管理员账号
type AdminCreateRequest struct {
	UID   string `json:"uid" valid:"required"`
	Name  string `json:"name" valid:"required"`
	Email string `json:"email" valid:"required"`
	Role  string `json:"role" valid:"required"`
}

// ValidateAdminCreate 校验创建管理员请求
func ValidateAdminCreate(c *gin.Context) (*AdminCreateRequest, error) {
	rules := govalidator.MapData{
		"uid":   []string{"required", "min:1", "max:36"},
		"name":  []string{"required", "min:1", "max:50"},
		"email": []string{"required", "email"},
		"role":  []string{"required", "in:super,finance,ops"},
	}
	messages := govalidator.MapData{
		"uid": []string{
			"required:外部身份 UID 不能为空",
			"max:UID 不能超过 36 个字符",
		},
		"name": []string{
			"required:姓名不能为空",
			"max:姓名不能超过 50 个字符",
		},
		"email": []string{
			"required:邮箱不能为空",
			"email:邮箱格式不正确",
		},
		"role": []string{
			"required:角色不能为空",
			"in:角色必须是 super、finance 或 ops",
		},
	}

	return ValidateRequestPtr[AdminCreateRequest](c, rules, messages)
}
