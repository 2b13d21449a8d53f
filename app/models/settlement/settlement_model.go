// 订单结算记录
package settlement

import (
	"time"

	"backoffice/app/models"
)

// Settlement 订单结算记录模型
// 订单完成后由数据库触发器创建，财务在后台逐条或批量审核。
// 审核通过/驳回后触发器会联动更新技师账户余额，本服务只负责状态流转。
type Settlement struct {
	ID      uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	GirlID  uint64 `gorm:"index;not null" json:"girl_id"`            // 技师ID
	OrderID uint64 `gorm:"uniqueIndex;not null" json:"order_id"`     // 关联订单ID

	ServiceFee         float64 `gorm:"not null" json:"service_fee"`           // 服务费（泰铢）
	ExtraFee           float64 `gorm:"default:0" json:"extra_fee"`            // 附加费（泰铢）
	ServiceCommission  float64 `gorm:"not null" json:"service_commission"`    // 服务费抽成比例
	ExtraCommission    float64 `gorm:"default:0" json:"extra_commission"`     // 附加费抽成比例
	PlatformShouldGet  float64 `gorm:"not null" json:"platform_should_get"`   // 平台应得（泰铢）
	CustomerPaidAmount float64 `gorm:"default:0" json:"customer_paid_amount"` // 客户线上支付给平台的金额（人民币）
	ActualPaidAmount   float64 `gorm:"default:0" json:"actual_paid_amount"`   // 技师实收现金（人民币）

	Status        Status     `gorm:"type:varchar(20);index;default:'pending'" json:"status"` // 结算状态
	PaymentMethod string     `gorm:"type:varchar(20)" json:"payment_method"`                 // 收款方式标签
	ContentType   string     `gorm:"type:varchar(20)" json:"content_type"`                   // 服务内容标签
	Notes         string     `gorm:"type:text" json:"notes"`                                 // 备注
	PaymentNotes  string     `gorm:"type:text" json:"payment_notes"`                         // 收款备注
	RejectReason  string     `gorm:"type:text" json:"reject_reason"`                         // 驳回原因
	ReviewedBy    string     `gorm:"type:varchar(36);index" json:"reviewed_by"`              // 审核人
	SettledAt     *time.Time `gorm:"index" json:"settled_at"`                                // 结算时间，仅在结算时写入一次
	ReviewedAt    *time.Time `gorm:"" json:"reviewed_at"`                                    // 审核时间

	models.CommonTimestampsField
}

// TableName 指定表名
func (Settlement) TableName() string {
	return "settlements"
}
