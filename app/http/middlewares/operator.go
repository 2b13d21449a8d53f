package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"backoffice/pkg/response"
)

// OperatorIDKey 操作人ID在 gin 上下文中的键
const OperatorIDKey = "operator_id"

// RequireOperator 提取审计用操作人标识
//
// 身份认证由上游网关完成，本服务只要求写操作带上
// X-Operator-Id 头，用于审计字段落库。
func RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		operatorID := strings.TrimSpace(c.GetHeader("X-Operator-Id"))
		if operatorID == "" {
			response.Unauthorized(c, "缺少 X-Operator-Id 请求头")
			return
		}

		c.Set(OperatorIDKey, operatorID)
		c.Next()
	}
}

// OperatorID 从上下文读取操作人ID
func OperatorID(c *gin.Context) string {
	return c.GetString(OperatorIDKey)
}
