package config

import "backoffice/pkg/config"

func init() {
	config.Add("notify", func() map[string]interface{} {
		return map[string]interface{}{
			// 留空表示关闭通知
			"webhook_url": config.Env("NOTIFY_WEBHOOK_URL", ""),
			"timeout":     config.Env("NOTIFY_TIMEOUT", 5),
			"max_retries": config.Env("NOTIFY_MAX_RETRIES", 2),
		}
	})
}
