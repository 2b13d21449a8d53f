package middlewares

import (
	"bytes"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"backoffice/pkg/logger"
)

// responseBodyWriter 包装 ResponseWriter 以便记录响应体
type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// Logger 记录请求日志
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		// 写操作记录请求体，方便审计回溯
		var requestBody []byte
		if c.Request.Body != nil && c.Request.Method != "GET" {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		start := time.Now()
		c.Next()

		cost := time.Since(start)
		status := c.Writer.Status()

		logFields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.String("ip", c.ClientIP()),
			zap.String("operator", c.GetString(OperatorIDKey)),
			zap.String("time", cost.String()),
		}
		if c.Request.Method != "GET" {
			logFields = append(logFields,
				zap.String("request_body", string(requestBody)),
				zap.String("response_body", w.body.String()),
			)
		}

		switch {
		case status >= 500:
			logger.Error("HTTP", logFields...)
		case status >= 400:
			logger.Warn("HTTP", logFields...)
		default:
			logger.Debug("HTTP", logFields...)
		}
	}
}
