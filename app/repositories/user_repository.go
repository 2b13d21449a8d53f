package repositories

import (
	"context"

	"gorm.io/gorm"

	"backoffice/app/models/user"
)

// UserRepository 客户仓库
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建仓库实例
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// UserFilter 客户查询条件
type UserFilter struct {
	Keyword  string // 按昵称/电话模糊匹配
	Banned   *bool
	Page     int
	PageSize int
}

// List 按条件分页查询客户
func (r *UserRepository) List(ctx context.Context, filter UserFilter) ([]user.User, int64, error) {
	var records []user.User
	var total int64

	query := r.db.WithContext(ctx).Model(&user.User{})

	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("nickname LIKE ? OR phone LIKE ?", like, like)
	}
	if filter.Banned != nil {
		query = query.Where("banned = ?", *filter.Banned)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&records).Error

	return records, total, err
}

// SetBanned 更新封禁标记
func (r *UserRepository) SetBanned(ctx context.Context, id uint64, banned bool, reason string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&user.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"banned":     banned,
			"ban_reason": reason,
		})
	return result.RowsAffected, result.Error
}
