// Package account 技师结算账户
package account

import (
	"backoffice/app/models"
)

// Account 技师结算账户模型
// balance 与 platform_collected_rmb_balance 由数据库触发器在结算记录、
// 交易流水确认时联动维护，本服务只读取并分类展示，绝不直接写入。
type Account struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	GirlID uint64 `gorm:"uniqueIndex;not null" json:"girl_id"` // 技师ID

	DepositCeiling              float64 `gorm:"default:0" json:"deposit_ceiling"`                // 押金额度（泰铢）
	Balance                     float64 `gorm:"default:0" json:"balance"`                        // 欠平台余额（泰铢），预期非负
	PlatformCollectedRMBBalance float64 `gorm:"default:0" json:"platform_collected_rmb_balance"` // 平台代收人民币余额

	models.CommonTimestampsField
}

// TableName 指定表名
func (Account) TableName() string {
	return "girl_accounts"
}
