package export

import (
	"sync/atomic"
	"time"
)

// Metrics 导出队列运行指标
type Metrics struct {
	pushedTasks    atomic.Int64
	pushFailures   atomic.Int64
	completedTasks atomic.Int64
	failedTasks    atomic.Int64

	// 处理耗时（毫秒）
	totalProcessMs atomic.Int64
	maxProcessMs   atomic.Int64
}

// NewMetrics 创建指标收集器
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordPush 记录成功入队
func (m *Metrics) RecordPush() {
	m.pushedTasks.Add(1)
}

// RecordPushFailure 记录入队失败
func (m *Metrics) RecordPushFailure() {
	m.pushFailures.Add(1)
}

// RecordCompletion 记录任务完成及其耗时
func (m *Metrics) RecordCompletion(d time.Duration) {
	m.completedTasks.Add(1)

	ms := d.Milliseconds()
	m.totalProcessMs.Add(ms)
	for {
		current := m.maxProcessMs.Load()
		if ms <= current || m.maxProcessMs.CompareAndSwap(current, ms) {
			break
		}
	}
}

// RecordFailure 记录任务失败
func (m *Metrics) RecordFailure() {
	m.failedTasks.Add(1)
}

// Snapshot 指标快照
type Snapshot struct {
	Pushed       int64 `json:"pushed"`
	PushFailures int64 `json:"push_failures"`
	Completed    int64 `json:"completed"`
	Failed       int64 `json:"failed"`
	AvgProcessMs int64 `json:"avg_process_ms"`
	MaxProcessMs int64 `json:"max_process_ms"`
}

// Stats 读取当前指标快照
func (m *Metrics) Stats() Snapshot {
	snapshot := Snapshot{
		Pushed:       m.pushedTasks.Load(),
		PushFailures: m.pushFailures.Load(),
		Completed:    m.completedTasks.Load(),
		Failed:       m.failedTasks.Load(),
		MaxProcessMs: m.maxProcessMs.Load(),
	}
	if snapshot.Completed > 0 {
		snapshot.AvgProcessMs = m.totalProcessMs.Load() / snapshot.Completed
	}
	return snapshot
}
