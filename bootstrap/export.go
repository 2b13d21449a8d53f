package bootstrap

import (
	"backoffice/pkg/database"
	"backoffice/pkg/export"
	"backoffice/pkg/logger"
	"backoffice/pkg/redis"
)

// exportWorker 持有工作器引用，关停时优雅退出
var exportWorker *export.Worker

// SetupExport 启动结算报表导出的后台 worker
func SetupExport() {
	if redis.Manager == nil {
		logger.ErrorString("导出", "Setup", "Redis 未初始化，导出服务不可用")
		return
	}

	queue := export.NewQueue()
	exportWorker = export.NewWorker(queue, database.DB)
	exportWorker.Start()

	logger.InfoString("导出", "Setup", "导出服务启动成功")
}

// ShutdownExport 停止导出 worker
func ShutdownExport() {
	if exportWorker != nil {
		exportWorker.Stop()
	}
}
