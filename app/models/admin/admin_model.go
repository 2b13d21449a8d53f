// Package admin 后台管理员账号
package admin

import (
	"backoffice/app/models"
)

// Role 管理员角色
type Role string

const (
	RoleSuper   Role = "super"   // 超级管理员
	RoleFinance Role = "finance" // 财务
	RoleOps     Role = "ops"     // 运营
)

// Admin 管理员模型
// 登录鉴权由外部身份服务负责，这里只维护账号档案和启停状态
type Admin struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UID      string `gorm:"type:varchar(36);uniqueIndex" json:"uid"` // 外部身份服务的用户ID
	Name     string `gorm:"type:varchar(50)" json:"name"`
	Email    string `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	Role     Role   `gorm:"type:varchar(20);index;default:'ops'" json:"role"`
	IsActive bool   `gorm:"default:true;index" json:"is_active"`

	models.CommonTimestampsField
}

// TableName 表名
func (Admin) TableName() string {
	return "admins"
}
