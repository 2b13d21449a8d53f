package monitor

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	v1 "backoffice/app/http/controllers/api/v1"
	ordermodel "backoffice/app/models/order"
	"backoffice/app/repositories"
	"backoffice/app/services"
	"backoffice/pkg/database"
	"backoffice/pkg/fiscal"
	"backoffice/pkg/response"
)

// MonitorController 订单监控与经营统计
type MonitorController struct {
	v1.BaseAPIController
	service *services.MonitorService
}

// NewMonitorController 创建监控控制器
func NewMonitorController() *MonitorController {
	return &MonitorController{
		service: services.NewMonitorService(database.DB),
	}
}

// Orders 订单列表，附带读侧异常标注
func (ctrl *MonitorController) Orders(c *gin.Context) {
	page, pageSize := v1.PageParams(c)

	filter := repositories.OrderFilter{
		GirlID:   cast.ToUint64(c.Query("girl_id")),
		Status:   ordermodel.Status(c.Query("status")),
		Page:     page,
		PageSize: pageSize,
	}

	// day=today/yesterday/before_yesterday 时按记账日窗口过滤
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

	views, total, err := ctrl.service.ListOrders(c.Request.Context(), filter)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, v1.Paginated(views, total, page, pageSize))
}

// AbnormalOrders 进行中且已判定异常的订单
func (ctrl *MonitorController) AbnormalOrders(c *gin.Context) {
	views, err := ctrl.service.ListAbnormalOrders(c.Request.Context())
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, gin.H{
		"data":  views,
		"count": len(views),
	})
}

// DayStatistics 记账日经营统计
// day 取 today / yesterday / before_yesterday，默认 today
func (ctrl *MonitorController) DayStatistics(c *gin.Context) {
	selector, err := fiscal.ParseSelector(c.Query("day"))
	if err != nil {
		response.Abort422(c, err.Error())
		return
	}

	stats, err := ctrl.service.DayStatistics(c.Request.Context(), selector)
	if err != nil {
		v1.HandleServiceError(c, err)
		return
	}

	response.Data(c, stats)
}
