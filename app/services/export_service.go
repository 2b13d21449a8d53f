package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"backoffice/pkg/export"
	"backoffice/pkg/fiscal"
)

// ExportService 结算报表导出
type ExportService struct {
	queue *export.Queue
}

// NewExportService 创建导出服务
func NewExportService(queue *export.Queue) *ExportService {
	return &ExportService{queue: queue}
}

// Create 发起一次导出，返回任务ID
func (s *ExportService) Create(ctx context.Context, operatorID, selectorStr string, girlID uint64) (string, error) {
	if strings.TrimSpace(operatorID) == "" {
		return "", ErrOperatorRequired
	}

	selector, err := fiscal.ParseSelector(selectorStr)
	if err != nil {
		return "", &ServiceError{Code: ErrCodeValidation, Message: err.Error()}
	}

	task := &export.Task{
		ID:         uuid.New().String(),
		OperatorID: operatorID,
		Selector:   selector,
		GirlID:     girlID,
		CreatedAt:  time.Now(),
	}

	if err := s.queue.Push(ctx, task); err != nil {
		return "", NewStoreError(err)
	}
	return task.ID, nil
}

// Progress 查询导出任务进度
func (s *ExportService) Progress(ctx context.Context, taskID string) (*export.Progress, error) {
	progress, err := s.queue.GetProgress(ctx, taskID)
	if err != nil {
		return nil, NewStoreError(err)
	}
	if progress == nil {
		return nil, ErrNotFound
	}
	return progress, nil
}
