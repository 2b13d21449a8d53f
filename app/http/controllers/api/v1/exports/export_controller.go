package exports

import (
	"github.com/gin-gonic/gin"

	v1 "backoffice/app/http/controllers/api/v1"
	"backoffice/app/http/middlewares"
	"backoffice/app/requests"
	"backoffice/app/services"
	"backoffice/pkg/export"
	"backoffice/pkg/response"
)

// ExportController 结算报表导出
type ExportController struct {
	v1.BaseAPIController
	service *services.ExportService
}

// NewExportController 创建导出控制器
func NewExportController() *ExportController {
	return &ExportController{
		service: services.NewExportService(export.NewQueue()),
	}
}

// Store 发起一次导出，返回任务ID供轮询
func (ctrl *ExportController) Store(c *gin.Context) {
	request, err := requests.ValidateExportCreate(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	taskID, err := ctrl.service.Create(
		c.Request.Context(),
		middlewares.OperatorID(c),
		request.Selector,
		request.GirlID,
	)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, gin.H{
		"task_id": taskID,
		"message": "导出任务已加入队列",
	})
}

// Show 查询导出任务进度
func (ctrl *ExportController) Show(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		response.Abort400(c, "缺少任务 ID")
		return
	}

	progress, err := ctrl.service.Progress(c.Request.Context(), taskID)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, progress)
}
