package report

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	v1 "backoffice/app/http/controllers/api/v1"
	"backoffice/app/http/middlewares"
	reportmodel "backoffice/app/models/report"
	"backoffice/app/repositories"
	"backoffice/app/requests"
	"backoffice/pkg/database"
	"backoffice/pkg/response"
)

// ReportController 举报工单处理
type ReportController struct {
	v1.BaseAPIController
}

// NewReportController 创建工单控制器
func NewReportController() *ReportController {
	return &ReportController{}
}

// Index 工单列表
func (ctrl *ReportController) Index(c *gin.Context) {
	page, pageSize := v1.PageParams(c)

	filter := repositories.ReportFilter{
		GirlID:   cast.ToUint64(c.Query("girl_id")),
		Status:   reportmodel.Status(c.Query("status")),
		Category: c.Query("category"),
		Page:     page,
		PageSize: pageSize,
	}

	repo := repositories.NewReportRepository(database.DB)
	records, total, err := repo.List(c.Request.Context(), filter)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Data(c, v1.Paginated(records, total, page, pageSize))
}

// Close 办结工单：open -> resolved / dismissed
func (ctrl *ReportController) Close(c *gin.Context) {
	request, err := requests.ValidateReportClose(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	repo := repositories.NewReportRepository(database.DB)
	rows, err := repo.Close(
		c.Request.Context(),
		cast.ToUint64(c.Param("id")),
		reportmodel.Status(request.Resolution),
		middlewares.OperatorID(c),
		request.HandleNote,
		time.Now(),
	)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if rows == 0 {
		// 0 行可能是工单不存在，也可能是已被别人办结，回读区分
		if _, err := repo.GetByID(c.Request.Context(), cast.ToUint64(c.Param("id"))); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Abort404(c, "工单不存在")
				return
			}
			response.ServerError(c, err)
			return
		}
		response.Abort409(c, "工单已办结")
		return
	}

	response.Data(c, gin.H{"message": "工单已办结"})
}
