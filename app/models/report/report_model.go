// Package report 用户对技师的举报/差评工单
package report

import (
	"time"

	"backoffice/app/models"
)

// Report 举报工单模型
type Report struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  uint64 `gorm:"index;not null" json:"user_id"` // 举报客户
	GirlID  uint64 `gorm:"index;not null" json:"girl_id"` // 被举报技师
	OrderID uint64 `gorm:"index" json:"order_id"`         // 关联订单（可为空）

	Category   string     `gorm:"type:varchar(20);index" json:"category"` // 举报类别
	Content    string     `gorm:"type:text" json:"content"`               // 举报内容
	Status     Status     `gorm:"type:varchar(20);index;default:'open'" json:"status"`
	HandlerID  string     `gorm:"type:varchar(36)" json:"handler_id"` // 处理人
	HandleNote string     `gorm:"type:text" json:"handle_note"`       // 处理说明
	HandledAt  *time.Time `gorm:"" json:"handled_at"`                 // 处理时间

	models.CommonTimestampsField
}

// TableName 表名
func (Report) TableName() string {
	return "reports"
}
