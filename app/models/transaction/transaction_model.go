// 技师发起的资金流水（结算/提现申请）
package transaction

import (
	"time"

	"backoffice/app/models"
)

// Transaction 资金流水模型
type Transaction struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	SerialNo string `gorm:"type:varchar(36);uniqueIndex" json:"serial_no"` // 流水号
	GirlID   uint64 `gorm:"index;not null" json:"girl_id"`                 // 技师ID

	Type         Type    `gorm:"type:varchar(20);index;not null" json:"type"` // settlement / withdrawal
	Amount       float64 `gorm:"not null" json:"amount"`                      // 金额
	ExchangeRate float64 `gorm:"default:0" json:"exchange_rate"`              // 汇率（提现时生效）
	FeeRate      float64 `gorm:"default:0" json:"fee_rate"`                   // 手续费率（提现时生效）

	Status       Status     `gorm:"type:varchar(20);index;default:'pending'" json:"status"` // 审核状态
	OperatorID   string     `gorm:"type:varchar(36);index" json:"operator_id"`              // 审核操作人
	Notes        string     `gorm:"type:text" json:"notes"`                                 // 备注
	CancelReason string     `gorm:"type:text" json:"cancel_reason"`                         // 取消原因
	ProofURL     string     `gorm:"type:text" json:"proof_url"`                             // 转账凭证
	PayeeAccount string     `gorm:"type:varchar(64)" json:"payee_account"`                  // 收款账号（提现打款用）
	ReviewedAt   *time.Time `gorm:"" json:"reviewed_at"`                                    // 审核时间

	models.CommonTimestampsField
}

// TableName 指定表名
func (Transaction) TableName() string {
	return "transactions"
}
