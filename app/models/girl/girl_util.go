package girl

// Status 技师接单状态
type Status string

const (
	StatusActive    Status = "active"    // 正常接单
	StatusSuspended Status = "suspended" // 已停用
)

// IsActive 检查是否正常接单
func (g *Girl) IsActive() bool {
	return g.Status == StatusActive
}
