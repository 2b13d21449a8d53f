package transaction

// Type 流水类型
type Type string

const (
	TypeSettlement Type = "settlement" // 结算
	TypeWithdrawal Type = "withdrawal" // 提现
)

// Status 审核状态
// pending 之外的状态均为终态，只允许财务操作一次
type Status string

const (
	StatusPending   Status = "pending"   // 待审核
	StatusConfirmed Status = "confirmed" // 已确认（终态）
	StatusCancelled Status = "cancelled" // 已取消（终态）
)

// IsPending 检查是否待审核
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// IsWithdrawal 检查是否提现流水
func (t *Transaction) IsWithdrawal() bool {
	return t.Type == TypeWithdrawal
}

// NetAmount 提现到账金额：扣除手续费后按汇率折算
func (t *Transaction) NetAmount() float64 {
	if !t.IsWithdrawal() || t.ExchangeRate <= 0 {
		return t.Amount
	}
	return t.Amount * (1 - t.FeeRate) * t.ExchangeRate
}
