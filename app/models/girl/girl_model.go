// Package girl 存放技师 Model 相关逻辑
package girl

import (
	"backoffice/app/models"
)

// Girl 技师档案模型
type Girl struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name     string `gorm:"type:varchar(50);index" json:"name"`            // 艺名
	Phone    string `gorm:"type:varchar(20);uniqueIndex" json:"phone"`     // 联系电话
	City     string `gorm:"type:varchar(50);index" json:"city"`            // 所在城市
	AvatarURL string `gorm:"type:text" json:"avatar_url"`                  // 头像
	Rating   float64 `gorm:"default:5" json:"rating"`                      // 评分
	Status   Status  `gorm:"type:varchar(20);index;default:'active'" json:"status"` // 接单状态

	models.CommonTimestampsField
}

// TableName 表名
func (Girl) TableName() string {
	return "girls"
}
