// Package v1 放置 API v1 版本的公共控制器逻辑
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"backoffice/app/services"
	"backoffice/pkg/response"
)

// BaseAPIController 基础控制器
type BaseAPIController struct{}

// HandleServiceError 将服务层错误映射为 HTTP 响应
//
// 4001 校验失败 -> 422
// 4002 状态冲突 -> 409
// 4003 不存在   -> 404
// 其他         -> 500
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err):
		response.Abort422(c, err.Error())
	case services.IsInvalidState(err):
		response.Abort409(c, err.Error())
	case services.IsNotFound(err):
		response.Abort404(c, err.Error())
	default:
		response.ServerError(c, err)
	}
}

// PageParams 解析分页查询参数
func PageParams(c *gin.Context) (page, pageSize int) {
	page = cast.ToInt(c.DefaultQuery("page", "1"))
	pageSize = cast.ToInt(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}

// Paginated 构造统一的分页响应体
func Paginated(data interface{}, total int64, page, pageSize int) gin.H {
	return gin.H{
		"data": data,
		"meta": gin.H{
			"total":     total,
			"page":      page,
			"page_size": pageSize,
		},
	}
}
