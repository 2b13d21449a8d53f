package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"gorm.io/gorm"

	"backoffice/app/repositories"
	"backoffice/pkg/config"
	"backoffice/pkg/fiscal"
	"backoffice/pkg/logger"
	"backoffice/pkg/notify"
)

// Worker 导出工作器组
type Worker struct {
	queue          *Queue
	settlementRepo *repositories.SettlementRepository
	stopChan       chan struct{}
	workerCount    int
	outputDir      string
	wg             sync.WaitGroup
}

// NewWorker 创建导出工作器组
func NewWorker(queue *Queue, db *gorm.DB) *Worker {
	workerCount := config.GetInt("export.worker_count", 2)
	if workerCount <= 0 {
		workerCount = 2
	}

	return &Worker{
		queue:          queue,
		settlementRepo: repositories.NewSettlementRepository(db),
		stopChan:       make(chan struct{}),
		workerCount:    workerCount,
		outputDir:      config.GetString("export.output_dir", "storage/exports"),
	}
}

// Start 启动工作器组
func (w *Worker) Start() {
	for i := 0; i < w.workerCount; i++ {
		w.wg.Add(1)
		go w.run(i)
	}
}

// run 单个工作器循环
func (w *Worker) run(id int) {
	defer w.wg.Done()

	logger.InfoString("导出", "Worker", fmt.Sprintf("worker %d 已启动", id))

	for {
		select {
		case <-w.stopChan:
			logger.InfoString("导出", "Worker", fmt.Sprintf("worker %d 停止", id))
			return
		default:
			if err := w.processNext(); err != nil {
				logger.ErrorString("导出", "Worker", fmt.Sprintf("worker %d: %v", id, err))
				time.Sleep(time.Second)
			}
		}
	}
}

// processNext 取出并处理下一个任务
func (w *Worker) processNext() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	task, err := w.queue.Pop(ctx)
	if err != nil {
		return err
	}
	if task == nil {
		// 空队列，避免忙等
		time.Sleep(100 * time.Millisecond)
		return nil
	}

	return w.handleTask(task)
}

// handleTask 处理单个导出任务
func (w *Worker) handleTask(task *Task) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := w.queue.UpdateStatus(ctx, task.ID, TaskRunning, ""); err != nil {
		return fmt.Errorf("update task status error: %w", err)
	}

	filePath, err := w.renderCSV(ctx, task)
	if err != nil {
		w.queue.metrics.RecordFailure()
		if updateErr := w.queue.UpdateStatus(ctx, task.ID, TaskFailed, err.Error()); updateErr != nil {
			logger.ErrorString("导出", "UpdateStatus", updateErr.Error())
		}
		return fmt.Errorf("render export error: %w", err)
	}

	if err := w.queue.UpdateStatus(ctx, task.ID, TaskCompleted, filePath); err != nil {
		return fmt.Errorf("update task result error: %w", err)
	}

	w.queue.metrics.RecordCompletion(time.Since(start))
	notify.Dispatch(notify.EventExportCompleted, map[string]interface{}{
		"task_id":     task.ID,
		"operator_id": task.OperatorID,
		"file_path":   filePath,
	})
	return nil
}

// renderCSV 按任务的记账日窗口渲染结算明细 CSV
// 窗口以任务创建时刻为基准计算，结果不随处理时间漂移
func (w *Worker) renderCSV(ctx context.Context, task *Task) (string, error) {
	start, end := fiscal.Window(task.Selector, task.CreatedAt)

	records, err := w.settlementRepo.ListInWindow(ctx, start, end, task.GirlID)
	if err != nil {
		return "", fmt.Errorf("query settlements error: %w", err)
	}

	if err := os.MkdirAll(w.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir error: %w", err)
	}

	filePath := filepath.Join(w.outputDir,
		fmt.Sprintf("settlements_%s_%s.csv", start.Format("20060102"), task.ID))

	file, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("create export file error: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	header := []string{
		"结算ID", "技师ID", "订单ID", "服务费(THB)", "附加费(THB)",
		"平台应得(THB)", "客户支付(RMB)", "实收现金(RMB)",
		"状态", "收款方式", "审核人", "创建时间",
	}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("write csv header error: %w", err)
	}

	for i := range records {
		r := &records[i]
		row := []string{
			strconv.FormatUint(r.ID, 10),
			strconv.FormatUint(r.GirlID, 10),
			strconv.FormatUint(r.OrderID, 10),
			strconv.FormatFloat(r.ServiceFee, 'f', 2, 64),
			strconv.FormatFloat(r.ExtraFee, 'f', 2, 64),
			strconv.FormatFloat(r.PlatformShouldGet, 'f', 2, 64),
			strconv.FormatFloat(r.CustomerPaidAmount, 'f', 2, 64),
			strconv.FormatFloat(r.ActualPaidAmount, 'f', 2, 64),
			string(r.Status),
			r.PaymentMethod,
			r.ReviewedBy,
			r.CreatedAt.Format(time.RFC3339),
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("write csv row error: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("flush csv error: %w", err)
	}

	return filePath, nil
}

// Stop 优雅关闭工作器组
func (w *Worker) Stop() {
	close(w.stopChan)

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logger.InfoString("导出", "Worker", "全部 worker 已停止")
	case <-time.After(30 * time.Second):
		logger.WarnString("导出", "Worker", "worker 关闭超时")
	}
}
