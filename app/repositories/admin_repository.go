package repositories

import (
	"context"

	"gorm.io/gorm"

	"backoffice/app/models/admin"
)

// AdminRepository 管理员仓库
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建仓库实例
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// List 查询全部管理员（后台账号数量有限，不做分页）
func (r *AdminRepository) List(ctx context.Context) ([]admin.Admin, error) {
	var records []admin.Admin
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&records).Error
	return records, err
}

// Create 创建管理员
func (r *AdminRepository) Create(ctx context.Context, record *admin.Admin) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetByUID 按外部身份ID获取管理员
func (r *AdminRepository) GetByUID(ctx context.Context, uid string) (*admin.Admin, error) {
	var record admin.Admin
	err := r.db.WithContext(ctx).Where("uid = ?", uid).First(&record).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// SetActive 启用/停用管理员
func (r *AdminRepository) SetActive(ctx context.Context, id uint64, active bool) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&admin.Admin{}).
		Where("id = ?", id).
		Update("is_active", active)
	return result.RowsAffected, result.Error
}
