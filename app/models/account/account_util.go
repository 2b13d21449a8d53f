package account

// DebtBand 欠款风险档位
type DebtBand string

const (
	DebtNormal   DebtBand = "normal"   // 正常
	DebtWarning  DebtBand = "warning"  // 接近押金额度
	DebtExceeded DebtBand = "exceeded" // 已超出押金额度
)

// WarningThreshold 进入警告档的额度占比
const WarningThreshold = 0.8

// ClassifyDebt 按押金额度对欠款余额分档，并返回用于进度条展示的占比
//
// 档位判断必须按严重程度从高到低进行：当 ceiling 为 0 时各档的
// 区间判断并不互斥，先判 exceeded 再判 warning 才能得到稳定结果。
// 边界归属：恰好 80% 为 warning，恰好 100% 仍为 warning，
// exceeded 要求严格大于额度。
func ClassifyDebt(balance, ceiling float64) (DebtBand, float64) {
	ratio := 0.0
	if ceiling > 0 {
		ratio = balance / ceiling
	}

	switch {
	case balance > ceiling:
		return DebtExceeded, ratio
	case ceiling > 0 && balance >= ceiling*WarningThreshold:
		return DebtWarning, ratio
	default:
		return DebtNormal, ratio
	}
}
