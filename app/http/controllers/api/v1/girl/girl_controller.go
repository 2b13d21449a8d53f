package girl

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	v1 "backoffice/app/http/controllers/api/v1"
	"backoffice/app/http/middlewares"
	girlmodel "backoffice/app/models/girl"
	"backoffice/app/repositories"
	"backoffice/app/requests"
	"backoffice/app/services"
	"backoffice/pkg/database"
	"backoffice/pkg/response"
)

// GirlController 技师档案与账户管理
type GirlController struct {
	v1.BaseAPIController
	service *services.GirlService
}

// NewGirlController 创建技师控制器
func NewGirlController() *GirlController {
	return &GirlController{
		service: services.NewGirlService(database.DB),
	}
}

// Index 技师列表，合并账户余额与欠款档位
func (ctrl *GirlController) Index(c *gin.Context) {
	page, pageSize := v1.PageParams(c)

	filter := repositories.GirlFilter{
		City:     c.Query("city"),
		Status:   girlmodel.Status(c.Query("status")),
		Keyword:  c.Query("keyword"),
		Page:     page,
		PageSize: pageSize,
	}

	views, total, err := ctrl.service.List(c.Request.Context(), filter)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, v1.Paginated(views, total, page, pageSize))
}

// UpdateStatus 切换技师接单状态
func (ctrl *GirlController) UpdateStatus(c *gin.Context) {
	request, err := requests.ValidateGirlStatus(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	err = ctrl.service.UpdateStatus(
		c.Request.Context(),
		middlewares.OperatorID(c),
		cast.ToUint64(c.Param("id")),
		girlmodel.Status(request.Status),
	)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, gin.H{"message": "状态已更新"})
}

// UpdateDepositCeiling 调整押金额度
func (ctrl *GirlController) UpdateDepositCeiling(c *gin.Context) {
	request, err := requests.ValidateDepositCeiling(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	err = ctrl.service.UpdateDepositCeiling(
		c.Request.Context(),
		middlewares.OperatorID(c),
		cast.ToUint64(c.Param("id")),
		request.Ceiling,
	)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, gin.H{"message": "押金额度已更新"})
}
