// 订单监控视图
package order

import (
	"time"

	"backoffice/app/models"
)

// Order 订单模型
// 后台只做监控与展示，订单的创建和状态推进由面向客户的服务负责。
type Order struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	GirlID uint64 `gorm:"index" json:"girl_id"` // 技师ID
	UserID uint64 `gorm:"index" json:"user_id"` // 客户ID

	Status                  Status     `gorm:"type:varchar(20);index" json:"status"`       // 订单状态
	ServiceFee              float64    `gorm:"default:0" json:"service_fee"`               // 服务费
	EstimatedArrivalAt      *time.Time `gorm:"" json:"estimated_arrival_at"`               // 预计到达时间
	ServiceStartedAt        *time.Time `gorm:"" json:"service_started_at"`                 // 服务开始时间
	ExpectedDurationMinutes int        `gorm:"default:0" json:"expected_duration_minutes"` // 预计服务时长（分钟）

	models.CommonTimestampsField
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
