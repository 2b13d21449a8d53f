package admin

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
	"gorm.io/gorm"

	v1 "backoffice/app/http/controllers/api/v1"
	adminmodel "backoffice/app/models/admin"
	"backoffice/app/repositories"
	"backoffice/app/requests"
	"backoffice/pkg/database"
	"backoffice/pkg/response"
)

// AdminController 管理员账号管理
type AdminController struct {
	v1.BaseAPIController
}

// NewAdminController 创建管理员控制器
func NewAdminController() *AdminController {
	return &AdminController{}
}

// Index 管理员列表
func (ctrl *AdminController) Index(c *gin.Context) {
	repo := repositories.NewAdminRepository(database.DB)
	records, err := repo.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Data(c, records)
}

// Store 创建管理员账号
func (ctrl *AdminController) Store(c *gin.Context) {
	request, err := requests.ValidateAdminCreate(c)
	if err != nil {
		response.BadRequest(c, err, "请求参数验证失败")
		return
	}

	repo := repositories.NewAdminRepository(database.DB)

	// UID 唯一
	if existing, err := repo.GetByUID(c.Request.Context(), request.UID); err == nil && existing != nil {
		response.Abort409(c, "该 UID 已存在管理员账号")
		return
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		response.ServerError(c, err)
		return
	}

	record := &adminmodel.Admin{
		UID:      request.UID,
		Name:     request.Name,
		Email:    request.Email,
		Role:     adminmodel.Role(request.Role),
		IsActive: true,
	}
	if err := repo.Create(c.Request.Context(), record); err != nil {
		response.ServerError(c, err)
		return
	}

	response.Created(c, record)
}

// SetActive 启用或停用管理员账号
func (ctrl *AdminController) SetActive(c *gin.Context) {
	active := cast.ToBool(c.DefaultQuery("active", "true"))

	repo := repositories.NewAdminRepository(database.DB)
	rows, err := repo.SetActive(c.Request.Context(), cast.ToUint64(c.Param("id")), active)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	if rows == 0 {
		response.Abort404(c, "管理员不存在")
		return
	}

	response.Data(c, gin.H{"message": "已更新"})
}
