// Package user 存放客户 Model 相关逻辑
package user

import (
	"backoffice/app/models"
)

// User 客户模型
type User struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Phone     string `gorm:"type:varchar(20);uniqueIndex" json:"phone"`
	Nickname  string `gorm:"type:varchar(50)" json:"nickname"`
	AvatarURL string `gorm:"type:text" json:"avatar_url"`
	Banned    bool   `gorm:"default:false;index" json:"banned"`  // 封禁标记
	BanReason string `gorm:"type:text" json:"ban_reason"`        // 封禁原因

	models.CommonTimestampsField
}

// TableName 表名
func (User) TableName() string {
	return "users"
}
