package transaction

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	v1 "backoffice/app/http/controllers/api/v1"
	"backoffice/app/http/middlewares"
	transactionmodel "backoffice/app/models/transaction"
	"backoffice/app/repositories"
	"backoffice/app/requests"
	"backoffice/app/services"
	"backoffice/pkg/database"
	"backoffice/pkg/response"
)

// TransactionController 资金流水审核
type TransactionController struct {
	v1.BaseAPIController
	service *services.TransactionService
}

// NewTransactionController 创建流水控制器
func NewTransactionController() *TransactionController {
	return &TransactionController{
		service: services.NewTransactionService(database.DB),
	}
}

// Index 流水列表
func (ctrl *TransactionController) Index(c *gin.Context) {
	page, pageSize := v1.PageParams(c)

	filter := repositories.TransactionFilter{
		GirlID:   cast.ToUint64(c.Query("girl_id")),
		Type:     transactionmodel.Type(c.Query("type")),
		Status:   transactionmodel.Status(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	records, total, err := ctrl.service.List(c.Request.Context(), filter)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, v1.Paginated(records, total, page, pageSize))
}

// Confirm 确认流水
// 提现类流水确认后会尝试自动打款
func (ctrl *TransactionController) Confirm(c *gin.Context) {
	err := ctrl.service.Confirm(
		c.Request.Context(),
		middlewares.OperatorID(c),
		cast.ToUint64(c.Param("id")),
	)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, gin.H{"message": "流水已确认"})
}

// Cancel 取消流水，原因必填
func (ctrl *TransactionController) Cancel(c *gin.Context) {
	request, err := requests.ValidateTransactionCancel(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	err = ctrl.service.Cancel(
		c.Request.Context(),
		middlewares.OperatorID(c),
		cast.ToUint64(c.Param("id")),
		request.Reason,
	)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, gin.H{"message": "流水已取消"})
}
