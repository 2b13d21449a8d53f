package report

// Status 工单状态
type Status string

const (
	StatusOpen      Status = "open"      // 待处理
	StatusResolved  Status = "resolved"  // 已处理
	StatusDismissed Status = "dismissed" // 已驳回
)

// IsOpen 检查是否待处理
func (r *Report) IsOpen() bool {
	return r.Status == StatusOpen
}
