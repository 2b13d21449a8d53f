package routes

import (
	"github.com/gin-gonic/gin"

	"backoffice/app/http/controllers/api/v1/admin"
	"backoffice/app/http/controllers/api/v1/exports"
	"backoffice/app/http/controllers/api/v1/girl"
	"backoffice/app/http/controllers/api/v1/monitor"
	"backoffice/app/http/controllers/api/v1/report"
	"backoffice/app/http/controllers/api/v1/settlement"
	"backoffice/app/http/controllers/api/v1/transaction"
	"backoffice/app/http/controllers/api/v1/user"
	"backoffice/app/http/middlewares"
)

// 路由限流配置
const (
	// 🌍 全局限流：每小时每IP 30000 请求
	GlobalRateLimit = "30000-H"
	// ✍️ 写操作限流：每分钟每IP 120 请求
	WriteRateLimit = "120-M"
	// 📤 发起导出限流：每小时每IP 30 请求
	ExportRateLimit = "30-H"
)

// RegisterAPIRoutes 注册所有 API 路由
func RegisterAPIRoutes(r *gin.Engine) {
	v1 := r.Group("/v1")

	v1.Use(
		middlewares.SecurityHeaders(),
		middlewares.LimitIP(GlobalRateLimit),
		middlewares.Cors(),
	)

	// 💰 结算审核
	settlementRoutes := v1.Group("/settlements")
	{
		sc := settlement.NewSettlementController()

		// GET /v1/settlements
		settlementRoutes.GET("", sc.Index)

		// 写操作要求 X-Operator-Id，用于审计落库
		settlementRoutes.PATCH("/:id/payment",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			sc.UpdatePayment,
		)
		settlementRoutes.POST("/:id/settle",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			sc.Settle,
		)
		settlementRoutes.POST("/:id/reject",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			sc.Reject,
		)
		settlementRoutes.POST("/batch-settle",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			sc.BatchSettle,
		)
	}

	// 💸 资金流水审核
	transactionRoutes := v1.Group("/transactions")
	{
		tc := transaction.NewTransactionController()

		transactionRoutes.GET("", tc.Index)
		transactionRoutes.POST("/:id/confirm",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			tc.Confirm,
		)
		transactionRoutes.POST("/:id/cancel",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			tc.Cancel,
		)
	}

	// 📈 订单监控与经营统计
	monitorRoutes := v1.Group("/monitor")
	{
		mc := monitor.NewMonitorController()

		monitorRoutes.GET("/orders", mc.Orders)
		monitorRoutes.GET("/orders/abnormal", mc.AbnormalOrders)
		monitorRoutes.GET("/statistics/day", mc.DayStatistics)
	}

	// 💃 技师档案与账户
	girlRoutes := v1.Group("/girls")
	{
		gc := girl.NewGirlController()

		girlRoutes.GET("", gc.Index)
		girlRoutes.PATCH("/:id/status",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			gc.UpdateStatus,
		)
		girlRoutes.PATCH("/:id/deposit-ceiling",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			gc.UpdateDepositCeiling,
		)
	}

	// 🙋 客户管理
	userRoutes := v1.Group("/users")
	{
		uc := user.NewUserController()

		userRoutes.GET("", uc.Index)
		userRoutes.PATCH("/:id/ban",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			uc.SetBanned,
		)
	}

	// 🛡 管理员账号
	adminRoutes := v1.Group("/admins")
	{
		ac := admin.NewAdminController()

		adminRoutes.GET("", ac.Index)
		adminRoutes.POST("",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			ac.Store,
		)
		adminRoutes.PATCH("/:id/active",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			ac.SetActive,
		)
	}

	// 📋 举报工单
	reportRoutes := v1.Group("/reports")
	{
		rc := report.NewReportController()

		reportRoutes.GET("", rc.Index)
		reportRoutes.POST("/:id/close",
			middlewares.RequireOperator(),
			middlewares.LimitIP(WriteRateLimit),
			rc.Close,
		)
	}

	// 📤 结算报表导出
	exportRoutes := v1.Group("/exports")
	{
		ec := exports.NewExportController()

		exportRoutes.POST("",
			middlewares.RequireOperator(),
			middlewares.LimitIP(ExportRateLimit),
			ec.Store,
		)
		exportRoutes.GET("/:id", ec.Show)
	}
}
