package config

import "backoffice/pkg/config"

func init() {
	config.Add("payout", func() map[string]interface{} {
		return map[string]interface{}{
			// 是否开启提现确认后的支付宝自动打款
			"enabled": config.Env("PAYOUT_ENABLED", false),

			"alipay": map[string]interface{}{
				"app_id":        config.Env("ALIPAY_APP_ID", ""),
				"private_key":   config.Env("ALIPAY_PRIVATE_KEY", ""),
				"public_key":    config.Env("ALIPAY_PUBLIC_KEY", ""),
				"is_production": config.Env("ALIPAY_IS_PRODUCTION", false),
			},
		}
	})
}
