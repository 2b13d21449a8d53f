// Package fiscal 财务日（记账日）窗口计算
//
// 平台的记账日不是自然日：以当地时间（固定 UTC+7）每天 06:00 为切换点，
// 06:00 之前发生的流水归属前一个记账日。本包只做纯时间计算，
// 不涉及任何存储和格式化，出入参均为 time.Time。
package fiscal

import (
	"fmt"
	"time"
)

// 记账日相关常量
const (
	// UTCOffsetHours 业务时区相对 UTC 的固定偏移（小时）
	UTCOffsetHours = 7
	// CutoverHour 记账日切换的当地整点（06:00）
	CutoverHour = 6
	// WindowDuration 一个记账日的长度
	WindowDuration = 24 * time.Hour
)

// Location 业务时区（固定偏移，不使用 tzdata，避免夏令时歧义）
var Location = time.FixedZone("UTC+7", UTCOffsetHours*3600)

// Selector 记账日选择器
type Selector int

const (
	Today           Selector = iota // 当前记账日
	Yesterday                       // 上一个记账日
	BeforeYesterday                 // 上上个记账日
)

// ParseSelector 解析 HTTP 边界传入的选择器字符串
func ParseSelector(s string) (Selector, error) {
	switch s {
	case "", "today":
		return Today, nil
	case "yesterday":
		return Yesterday, nil
	case "before_yesterday":
		return BeforeYesterday, nil
	}
	return Today, fmt.Errorf("无效的记账日选择器: %s", s)
}

// days 选择器对应的回退天数
func (s Selector) days() int {
	switch s {
	case Yesterday:
		return 1
	case BeforeYesterday:
		return 2
	}
	return 0
}

// Window 计算指定记账日的 [start, end) UTC 时间窗口
//
// 算法：
//  1. 将 now 换算到业务时区得到当地钟表时间；
//  2. 当地小时 < 06 时，当前记账日起始于前一个日历日（hour == 06 整点归属当日）；
//  3. 按选择器回退 0/1/2 个日历日，日期运算交给 AddDate，保证跨月、闰年安全；
//  4. 以（起始日历日, 06:00）构造当地起点，终点为起点 + 24h，最后转回 UTC。
func Window(selector Selector, now time.Time) (start, end time.Time) {
	local := now.In(Location)

	year, month, day := local.Date()
	anchor := time.Date(year, month, day, CutoverHour, 0, 0, 0, Location)
	if local.Hour() < CutoverHour {
		anchor = anchor.AddDate(0, 0, -1)
	}

	anchor = anchor.AddDate(0, 0, -selector.days())

	return anchor.UTC(), anchor.Add(WindowDuration).UTC()
}
