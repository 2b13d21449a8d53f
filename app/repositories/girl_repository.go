package repositories

import (
	"context"

	"gorm.io/gorm"

	"backoffice/app/models/girl"
)

// GirlRepository 技师档案仓库
type GirlRepository struct {
	db *gorm.DB
}

// NewGirlRepository 创建仓库实例
func NewGirlRepository(db *gorm.DB) *GirlRepository {
	return &GirlRepository{db: db}
}

// GirlFilter 技师查询条件
type GirlFilter struct {
	City     string
	Status   girl.Status
	Keyword  string // 按艺名/电话模糊匹配
	Page     int
	PageSize int
}

// List 按条件分页查询技师
func (r *GirlRepository) List(ctx context.Context, filter GirlFilter) ([]girl.Girl, int64, error) {
	var records []girl.Girl
	var total int64

	query := r.db.WithContext(ctx).Model(&girl.Girl{})

	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Keyword != "" {
		like := "%" + filter.Keyword + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
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

// GetByID 按主键获取技师
func (r *GirlRepository) GetByID(ctx context.Context, id uint64) (*girl.Girl, error) {
	var record girl.Girl
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateStatus 切换接单状态
func (r *GirlRepository) UpdateStatus(ctx context.Context, id uint64, status girl.Status) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&girl.Girl{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}
