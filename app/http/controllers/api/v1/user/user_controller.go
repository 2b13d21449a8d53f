package user

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	v1 "backoffice/app/http/controllers/api/v1"
	"backoffice/app/repositories"
	"backoffice/app/requests"
	"backoffice/pkg/database"
	"backoffice/pkg/response"
)

// UserController 客户管理
type UserController struct {
	v1.BaseAPIController
}

// NewUserController 创建客户控制器
func NewUserController() *UserController {
	return &UserController{}
}

// Index 客户列表
func (ctrl *UserController) Index(c *gin.Context) {
	page, pageSize := v1.PageParams(c)

	filter := repositories.UserFilter{
		Keyword:  c.Query("keyword"),
		Page:     page,
		PageSize: pageSize,
	}
	if banned := c.Query("banned"); banned != "" {
		value := cast.ToBool(banned)
		filter.Banned = &value
	}

	repo := repositories.NewUserRepository(database.DB)
	records, total, err := repo.List(c.Request.Context(), filter)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Data(c, v1.Paginated(records, total, page, pageSize))
}

// SetBanned 封禁或解封客户
func (ctrl *UserController) SetBanned(c *gin.Context) {
	request, err := requests.ValidateUserBan(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	repo := repositories.NewUserRepository(database.DB)
	rows, err := repo.SetBanned(c.Request.Context(), cast.ToUint64(c.Param("id")), request.Banned, request.Reason)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if rows == 0 {
		response.Abort404(c, "客户不存在")
		return
	}

	response.Data(c, gin.H{"message": "已更新"})
}
