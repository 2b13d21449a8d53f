package fiscal

import (
	"testing"
	"time"
)

func TestWindowIsAlwaysOneDay(t *testing.T) {
	instants := []time.Time{
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC),  // 平年 2 月末
		time.Date(2024, 2, 29, 5, 59, 59, 0, time.UTC), // 闰日
		time.Date(2025, 12, 31, 22, 30, 0, 0, time.UTC),
		time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
	}

	for _, now := range instants {
		for _, sel := range []Selector{Today, Yesterday, BeforeYesterday} {
			start, end := Window(sel, now)
			if got := end.Sub(start); got != WindowDuration {
				t.Fatalf("Window(%v, %v) 长度为 %v，期望 24h", sel, now, got)
			}
			if start.In(Location).Hour() != CutoverHour {
				t.Fatalf("Window(%v, %v) 起点当地小时为 %d，期望 %d",
					sel, now, start.In(Location).Hour(), CutoverHour)
			}
			if start.In(Location).Minute() != 0 || start.In(Location).Second() != 0 {
				t.Fatalf("Window(%v, %v) 起点不是整点: %v", sel, now, start.In(Location))
			}
		}
	}
}

func TestWindowSelectorsStepBackOneDay(t *testing.T) {
	now := time.Date(2025, 3, 1, 2, 0, 0, 0, time.UTC) // 当地 09:00，跨月附近

	todayStart, _ := Window(Today, now)
	yesterdayStart, _ := Window(Yesterday, now)
	beforeStart, _ := Window(BeforeYesterday, now)

	if !yesterdayStart.Equal(todayStart.Add(-WindowDuration)) {
		t.Fatalf("yesterday 起点 %v 不等于 today 起点 %v - 24h", yesterdayStart, todayStart)
	}
	if !beforeStart.Equal(yesterdayStart.Add(-WindowDuration)) {
		t.Fatalf("before_yesterday 起点 %v 不等于 yesterday 起点 %v - 24h", beforeStart, yesterdayStart)
	}
}

func TestWindowCutoverBoundary(t *testing.T) {
	// 当地 2025-05-10 05:59:59（UTC 前一天 22:59:59）：仍属于 05-09 开始的记账日
	justBefore := time.Date(2025, 5, 9, 22, 59, 59, 0, time.UTC)
	start, _ := Window(Today, justBefore)
	wantBefore := time.Date(2025, 5, 9, 6, 0, 0, 0, Location)
	if !start.Equal(wantBefore.UTC()) {
		t.Fatalf("05:59:59 的当前窗口起点 = %v，期望 %v", start.In(Location), wantBefore)
	}

	// 当地 2025-05-10 06:00:00 整：新记账日从当天 06:00 开始
	exactly := time.Date(2025, 5, 9, 23, 0, 0, 0, time.UTC)
	start, _ = Window(Today, exactly)
	wantAfter := time.Date(2025, 5, 10, 6, 0, 0, 0, Location)
	if !start.Equal(wantAfter.UTC()) {
		t.Fatalf("06:00:00 的当前窗口起点 = %v，期望 %v", start.In(Location), wantAfter)
	}
}

func TestWindowCalendarRollover(t *testing.T) {
	// UTC 23:30 加 7 小时偏移会越过午夜，日期必须安全进位到下个月
	now := time.Date(2025, 1, 31, 23, 30, 0, 0, time.UTC) // 当地 2025-02-01 06:30
	start, _ := Window(Today, now)
	want := time.Date(2025, 2, 1, 6, 0, 0, 0, Location)
	if !start.Equal(want.UTC()) {
		t.Fatalf("跨月窗口起点 = %v，期望 %v", start.In(Location), want)
	}
}

func TestParseSelector(t *testing.T) {
	cases := []struct {
		in      string
		want    Selector
		wantErr bool
	}{
		{"today", Today, false},
		{"", Today, false},
		{"yesterday", Yesterday, false},
		{"before_yesterday", BeforeYesterday, false},
		{"last_week", Today, true},
	}

	for _, tc := range cases {
		got, err := ParseSelector(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseSelector(%q) 期望报错", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseSelector(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSelector(%q) = %v，期望 %v", tc.in, got, tc.want)
		}
	}
}
