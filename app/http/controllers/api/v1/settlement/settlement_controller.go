package settlement

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	v1 "backoffice/app/http/controllers/api/v1"
	"backoffice/app/http/middlewares"
	settlementmodel "backoffice/app/models/settlement"
	"backoffice/app/repositories"
	"backoffice/app/requests"
	"backoffice/app/services"
	"backoffice/pkg/database"
	"backoffice/pkg/fiscal"
	"backoffice/pkg/response"
)

// SettlementController 结算审核
type SettlementController struct {
	v1.BaseAPIController
	service *services.SettlementService
}

// NewSettlementController 创建结算控制器
func NewSettlementController() *SettlementController {
	return &SettlementController{
		service: services.NewSettlementService(database.DB),
	}
}

// Index 结算记录列表
//
// 支持按技师、状态、收款方式、备注关键字过滤；
// 传 day=today/yesterday/before_yesterday 时按记账日窗口过滤
func (ctrl *SettlementController) Index(c *gin.Context) {
	page, pageSize := v1.PageParams(c)

	filter := repositories.SettlementFilter{
		GirlID:        cast.ToUint64(c.Query("girl_id")),
		Status:        settlementmodel.Status(c.Query("status")),
		PaymentMethod: c.Query("payment_method"),
		Keyword:       c.Query("keyword"),
		Page:          page,
		PageSize:      pageSize,
	}

	if day := c.Query("day"); day != "" {
		selector, err := fiscal.ParseSelector(day)
		if err != nil {
			response.Abort422(c, err.Error())
			return
		}
		start, end := fiscal.Window(selector, time.Now())
		filter.StartTime = &start
		filter.EndTime = &end
	}

	records, total, err := ctrl.service.List(c.Request.Context(), filter)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, v1.Paginated(records, total, page, pageSize))
}

// UpdatePayment 更新收款信息
func (ctrl *SettlementController) UpdatePayment(c *gin.Context) {
	request, err := requests.ValidateSettlementPayment(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	err = ctrl.service.UpdatePayment(
		c.Request.Context(),
		middlewares.OperatorID(c),
		cast.ToUint64(c.Param("id")),
		services.PaymentFields{
			ActualPaidAmount:   request.ActualPaidAmount,
			CustomerPaidAmount: request.CustomerPaidAmount,
			PlatformShouldGet:  request.PlatformShouldGet,
			PaymentMethod:      request.PaymentMethod,
			PaymentNotes:       request.PaymentNotes,
			Notes:              request.Notes,
		},
	)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, gin.H{"message": "收款信息已更新"})
}

// Settle 标记单条记录为已结算
func (ctrl *SettlementController) Settle(c *gin.Context) {
	err := ctrl.service.MarkSettled(
		c.Request.Context(),
		middlewares.OperatorID(c),
		cast.ToUint64(c.Param("id")),
	)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, gin.H{"message": "结算成功"})
}

// Reject 驳回单条结算记录
func (ctrl *SettlementController) Reject(c *gin.Context) {
	request, err := requests.ValidateSettlementReject(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	err = ctrl.service.Reject(
		c.Request.Context(),
		middlewares.OperatorID(c),
		cast.ToUint64(c.Param("id")),
		request.Reason,
	)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, gin.H{"message": "已驳回"})
}

// BatchSettle 批量结算
// 单条失败不影响其他记录，返回成功/失败条数汇总
func (ctrl *SettlementController) BatchSettle(c *gin.Context) {
	request, err := requests.ValidateSettlementBatch(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	result, err := ctrl.service.BatchMarkSettled(
		c.Request.Context(),
		middlewares.OperatorID(c),
		request.IDs,
	)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, result)
}
