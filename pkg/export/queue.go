// Package export 结算报表异步导出
//
// 财务按记账日发起 CSV 导出，任务进入 Redis 队列，由后台
// worker 渲染文件。任务状态与产物路径记录在 Redis 中供前端轮询。
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"backoffice/pkg/config"
	"backoffice/pkg/fiscal"
	"backoffice/pkg/redis"
)

// TaskStatus 导出任务状态
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskRunning   TaskStatus = "running"
	TaskCompleted TaskStatus = "completed"
	TaskFailed    TaskStatus = "failed"
)

// Task 一次导出任务
type Task struct {
	ID         string          `json:"id"`
	OperatorID string          `json:"operator_id"`
	Selector   fiscal.Selector `json:"selector"`   // 导出哪个记账日
	GirlID     uint64          `json:"girl_id"`    // 可选：只导出单个技师
	FilePath   string          `json:"file_path"`  // 完成后产物路径
	Error      string          `json:"error"`      // 失败原因
	CreatedAt  time.Time       `json:"created_at"`
}

// Queue Redis 导出任务队列
type Queue struct {
	client      *redis.RedisClient
	prefix      string
	timeout     time.Duration
	rateLimiter *rate.Limiter
	metrics     *Metrics
}

// NewQueue 创建导出队列实例
func NewQueue() *Queue {
	rateLimit := config.GetInt("export.rate_limit", 10)

	return &Queue{
		client:      redis.GetRedis(redis.QueueDB),
		prefix:      config.GetString("redis.queue_prefix", "backoffice:export"),
		timeout:     time.Duration(config.GetInt("redis.queue_timeout", 3600)) * time.Second,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateLimit),
		metrics:     NewMetrics(),
	}
}

// Push 将任务推入队列
func (q *Queue) Push(ctx context.Context, task *Task) error {
	// 应用限流
	if err := q.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit exceeded: %w", err)
	}

	taskJSON, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	// 入队与状态写入保持原子
	pipe := q.client.Client.Pipeline()
	pipe.LPush(ctx, q.tasksKey(), taskJSON)
	pipe.Set(ctx, q.statusKey(task.ID), string(TaskPending), q.timeout)

	if _, err = pipe.Exec(ctx); err != nil {
		q.metrics.RecordPushFailure()
		return fmt.Errorf("failed to push task: %w", err)
	}

	q.metrics.RecordPush()
	return nil
}

// isQueueIdle 判断 BRPop 的错误是否只是"队列为空"
// go-redis 可能把超时错误包一层，需要用 errors.Is 解包
func isQueueIdle(err error) bool {
	return errors.Is(err, goredis.Nil) || errors.Is(err, context.DeadlineExceeded)
}

// Pop 阻塞取出一个任务
func (q *Queue) Pop(ctx context.Context) (*Task, error) {
	result, err := q.client.Client.BRPop(ctx, 0, q.tasksKey()).Result()
	if err != nil {
		if isQueueIdle(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop task from queue: %w", err)
	}
	if len(result) != 2 {
		return nil, fmt.Errorf("invalid result from queue")
	}

	var task Task
	if err := json.Unmarshal([]byte(result[1]), &task); err != nil {
		return nil, fmt.Errorf("failed to unmarshal task: %w", err)
	}
	return &task, nil
}

// UpdateStatus 更新任务状态；detail 在完成时是文件路径，失败时是原因
func (q *Queue) UpdateStatus(ctx context.Context, taskID string, status TaskStatus, detail string) error {
	if err := q.client.Client.Set(ctx, q.statusKey(taskID), string(status), q.timeout).Err(); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	if detail != "" {
		if err := q.client.Client.Set(ctx, q.detailKey(taskID), detail, q.timeout).Err(); err != nil {
			return fmt.Errorf("failed to save task detail: %w", err)
		}
	}
	return nil
}

// Progress 任务进度信息
type Progress struct {
	TaskID   string     `json:"task_id"`
	Status   TaskStatus `json:"status"`
	FilePath string     `json:"file_path,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// GetProgress 查询任务进度，任务不存在返回 nil
func (q *Queue) GetProgress(ctx context.Context, taskID string) (*Progress, error) {
	status, err := q.client.Client.Get(ctx, q.statusKey(taskID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task status: %w", err)
	}

	progress := &Progress{TaskID: taskID, Status: TaskStatus(status)}

	detail, err := q.client.Client.Get(ctx, q.detailKey(taskID)).Result()
	if err != nil && err != goredis.Nil {
		return nil, fmt.Errorf("failed to get task detail: %w", err)
	}
	switch progress.Status {
	case TaskCompleted:
		progress.FilePath = detail
	case TaskFailed:
		progress.Error = detail
	}

	return progress, nil
}

// Ping 检查队列健康状态
func (q *Queue) Ping(ctx context.Context) error {
	return q.client.Ping()
}

func (q *Queue) tasksKey() string {
	return fmt.Sprintf("%s:tasks", q.prefix)
}

func (q *Queue) statusKey(taskID string) string {
	return fmt.Sprintf("%s:status:%s", q.prefix, taskID)
}

func (q *Queue) detailKey(taskID string) string {
	return fmt.Sprintf("%s:detail:%s", q.prefix, taskID)
}
