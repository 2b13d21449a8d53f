package config

import "backoffice/pkg/config"

func init() {
	config.Add("export", func() map[string]interface{} {
		return map[string]interface{}{
			// 入队限流（每秒）
			"rate_limit": config.Env("EXPORT_RATE_LIMIT", 10),

			// 后台渲染 worker 数量
			"worker_count": config.Env("EXPORT_WORKER_COUNT", 2),

			// CSV 产物目录
			"output_dir": config.Env("EXPORT_OUTPUT_DIR", "storage/exports"),
		}
	})
}
