package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"backoffice/app/models/order"
)

// OrderRepository 订单监控仓库（只读投影）
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建仓库实例
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// OrderFilter 订单查询条件
type OrderFilter struct {
	GirlID    uint64
	Status    order.Status
	StartTime *time.Time
	EndTime   *time.Time
	Page      int
	PageSize  int
}

// List 按条件分页查询订单
func (r *OrderRepository) List(ctx context.Context, filter OrderFilter) ([]order.Order, int64, error) {
	var records []order.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&order.Order{})

	if filter.GirlID > 0 {
		query = query.Where("girl_id = ?", filter.GirlID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.StartTime != nil {
		query = query.Where("created_at >= ?", *filter.StartTime)
	}
	if filter.EndTime != nil {
		query = query.Where("created_at < ?", *filter.EndTime)
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

// ListInFlight 查询所有进行中的订单，用于异常巡检
func (r *OrderRepository) ListInFlight(ctx context.Context) ([]order.Order, error) {
	var records []order.Order
	err := r.db.WithContext(ctx).
		Where("status IN ?", []order.Status{
			order.StatusPending,
			order.StatusEnRoute,
			order.StatusInService,
		}).
		Order("created_at ASC").
		Find(&records).Error
	return records, err
}
