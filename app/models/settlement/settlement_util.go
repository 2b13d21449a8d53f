package settlement

// Status 结算状态
type Status string

const (
	StatusPending  Status = "pending"  // 待结算
	StatusSettled  Status = "settled"  // 已结算（终态）
	StatusRejected Status = "rejected" // 已驳回（终态）
)

// IsPending 检查是否待结算
func (s *Settlement) IsPending() bool {
	return s.Status == StatusPending
}

// IsSettled 检查是否已结算
func (s *Settlement) IsSettled() bool {
	return s.Status == StatusSettled
}

// IsRejected 检查是否已驳回
func (s *Settlement) IsRejected() bool {
	return s.Status == StatusRejected
}

// IsTerminal 检查是否处于终态，终态记录的金额字段不可再修改
func (s *Settlement) IsTerminal() bool {
	return s.Status != StatusPending
}
