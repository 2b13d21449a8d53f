package order

import (
	"strings"
	"testing"
	"time"

	"backoffice/app/models"
)

func minutesAgo(now time.Time, m int) *time.Time {
	t := now.Add(-time.Duration(m) * time.Minute)
	return &t
}

func TestDetectAbnormalPending(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	o := &Order{Status: StatusPending}
	o.CreatedAt = now.Add(-12 * time.Minute)
	flagged, reason := DetectAbnormal(o, now)
	if !flagged {
		t.Fatal("下单 12 分钟未接单应被标记")
	}
	if !strings.Contains(reason, "12 分钟") {
		t.Fatalf("原因应包含已等待分钟数，得到: %s", reason)
	}

	o.CreatedAt = now.Add(-9 * time.Minute)
	if flagged, _ := DetectAbnormal(o, now); flagged {
		t.Fatal("下单 9 分钟不应被标记")
	}
}

func TestDetectAbnormalEnRoute(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	o := &Order{Status: StatusEnRoute, EstimatedArrivalAt: minutesAgo(now, 45)}
	flagged, reason := DetectAbnormal(o, now)
	if !flagged {
		t.Fatal("超过预计到达时间 45 分钟应被标记")
	}
	if !strings.Contains(reason, "45 分钟") {
		t.Fatalf("原因应包含迟到分钟数，得到: %s", reason)
	}

	o.EstimatedArrivalAt = minutesAgo(now, 20)
	if flagged, _ := DetectAbnormal(o, now); flagged {
		t.Fatal("迟到 20 分钟在宽限内，不应被标记")
	}

	// 缺少预计到达时间时视为正常，不允许崩溃
	o.EstimatedArrivalAt = nil
	if flagged, _ := DetectAbnormal(o, now); flagged {
		t.Fatal("缺少预计到达时间不应被标记")
	}
}

func TestDetectAbnormalInService(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)

	// 已服务 90 分钟，预计 30 分钟：超出预计时长及宽限 30 分钟
	o := &Order{
		Status:                  StatusInService,
		ServiceStartedAt:        minutesAgo(now, 90),
		ExpectedDurationMinutes: 30,
	}
	flagged, reason := DetectAbnormal(o, now)
	if !flagged {
		t.Fatal("服务 90 分钟（预计 30 分钟）应被标记")
	}
	if !strings.Contains(reason, "30 分钟") {
		t.Fatalf("原因应包含超出的分钟数，得到: %s", reason)
	}

	// 已服务 55 分钟：只超出预计 25 分钟，仍在 30 分钟宽限内
	o.ServiceStartedAt = minutesAgo(now, 55)
	if flagged, _ := DetectAbnormal(o, now); flagged {
		t.Fatal("超出预计 25 分钟在宽限内，不应被标记")
	}
}

func TestDetectAbnormalTerminalStatuses(t *testing.T) {
	now := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	ancient := models.CommonTimestampsField{CreatedAt: now.Add(-48 * time.Hour)}

	for _, status := range []Status{StatusConfirmed, StatusArrived, StatusCompleted, StatusCancelled} {
		o := &Order{Status: status, EstimatedArrivalAt: minutesAgo(now, 600), ServiceStartedAt: minutesAgo(now, 600)}
		o.CommonTimestampsField = ancient
		if flagged, _ := DetectAbnormal(o, now); flagged {
			t.Fatalf("状态 %s 不应被标记", status)
		}
	}
}
