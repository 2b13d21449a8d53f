package account

import (
	"math"
	"testing"
)

func TestClassifyDebtBands(t *testing.T) {
	cases := []struct {
		name      string
		balance   float64
		ceiling   float64
		wantBand  DebtBand
		wantRatio float64
	}{
		{"恰好80%进入警告档", 80, 100, DebtWarning, 0.8},
		{"略低于80%为正常", 79.999, 100, DebtNormal, 0.79999},
		{"恰好100%仍为警告档", 100, 100, DebtWarning, 1},
		{"超出额度为超额档", 100.01, 100, DebtExceeded, 1.0001},
		{"零欠款为正常", 0, 100, DebtNormal, 0},
		{"远超额度", 250, 100, DebtExceeded, 2.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			band, ratio := ClassifyDebt(tc.balance, tc.ceiling)
			if band != tc.wantBand {
				t.Fatalf("ClassifyDebt(%v, %v) 档位 = %s，期望 %s",
					tc.balance, tc.ceiling, band, tc.wantBand)
			}
			if math.Abs(ratio-tc.wantRatio) > 1e-9 {
				t.Fatalf("ClassifyDebt(%v, %v) 占比 = %v，期望 %v",
					tc.balance, tc.ceiling, ratio, tc.wantRatio)
			}
		})
	}
}

func TestClassifyDebtZeroCeiling(t *testing.T) {
	// 押金额度为 0 时不允许除零，占比固定为 0
	for _, balance := range []float64{0, 1, 500} {
		_, ratio := ClassifyDebt(balance, 0)
		if ratio != 0 {
			t.Fatalf("ClassifyDebt(%v, 0) 占比 = %v，期望 0", balance, ratio)
		}
	}

	// 有欠款但额度为 0：按从严评估归入超额档
	band, _ := ClassifyDebt(1, 0)
	if band != DebtExceeded {
		t.Fatalf("ClassifyDebt(1, 0) 档位 = %s，期望 %s", band, DebtExceeded)
	}
}
