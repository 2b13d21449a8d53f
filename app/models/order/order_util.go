package order

import (
	"fmt"
	"time"
)

// Status 订单状态
type Status string

const (
	StatusPending   Status = "pending"    // 待接单
	StatusConfirmed Status = "confirmed"  // 已接单
	StatusEnRoute   Status = "en_route"   // 技师出发
	StatusArrived   Status = "arrived"    // 已到达
	StatusInService Status = "in_service" // 服务中
	StatusCompleted Status = "completed"  // 已完成
	StatusCancelled Status = "cancelled"  // 已取消
)

// 异常判定阈值，固定不可配置
const (
	// ConfirmTimeout 待接单超时
	ConfirmTimeout = 10 * time.Minute
	// ArrivalGrace 超过预计到达时间的宽限
	ArrivalGrace = 30 * time.Minute
	// ServiceGrace 超过预计服务时长的宽限
	ServiceGrace = 30 * time.Minute
)

// DetectAbnormal 判断订单在 now 时刻是否卡单
//
// 纯读侧派生标记，不落库：
//   - pending：下单超过 10 分钟未接单
//   - en_route：超过预计到达时间 30 分钟
//   - in_service：超过预计服务时长 30 分钟宽限
//
// 其余状态（confirmed/arrived/completed/cancelled）一律不标记。
func DetectAbnormal(o *Order, now time.Time) (bool, string) {
	switch o.Status {
	case StatusPending:
		elapsed := now.Sub(o.CreatedAt)
		if elapsed > ConfirmTimeout {
			return true, fmt.Sprintf("下单已 %d 分钟未接单", int(elapsed.Minutes()))
		}

	case StatusEnRoute:
		if o.EstimatedArrivalAt == nil {
			return false, ""
		}
		late := now.Sub(*o.EstimatedArrivalAt)
		if late > ArrivalGrace {
			return true, fmt.Sprintf("已超过预计到达时间 %d 分钟", int(late.Minutes()))
		}

	case StatusInService:
		if o.ServiceStartedAt == nil {
			return false, ""
		}
		expected := time.Duration(o.ExpectedDurationMinutes) * time.Minute
		overrun := now.Sub(*o.ServiceStartedAt) - expected - ServiceGrace
		if overrun > 0 {
			return true, fmt.Sprintf("服务已超出预计时长及 30 分钟宽限 %d 分钟", int(overrun.Minutes()))
		}
	}

	return false, ""
}
