package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"backoffice/app/models/settlement"
)

// SettlementRepository 结算记录仓库
type SettlementRepository struct {
	db *gorm.DB
}

// NewSettlementRepository 创建仓库实例
func NewSettlementRepository(db *gorm.DB) *SettlementRepository {
	return &SettlementRepository{db: db}
}

// SettlementFilter 结算记录查询条件
type SettlementFilter struct {
	GirlID        uint64
	Status        settlement.Status
	PaymentMethod string
	Keyword       string     // 按备注模糊匹配
	StartTime     *time.Time // 创建时间范围（记账日窗口）
	EndTime       *time.Time
	Page          int
	PageSize      int
}

// List 按条件分页查询结算记录
func (r *SettlementRepository) List(ctx context.Context, filter SettlementFilter) ([]settlement.Settlement, int64, error) {
	var records []settlement.Settlement
	var total int64

	query := r.db.WithContext(ctx).Model(&settlement.Settlement{})

	if filter.GirlID > 0 {
		query = query.Where("girl_id = ?", filter.GirlID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentMethod != "" {
		query = query.Where("payment_method = ?", filter.PaymentMethod)
	}
	if filter.Keyword != "" {
		query = query.Where("notes LIKE ?", "%"+filter.Keyword+"%")
	}
	if filter.StartTime != nil {
		query = query.Where("created_at >= ?", *filter.StartTime)
	}
	if filter.EndTime != nil {
		query = query.Where("created_at < ?", *filter.EndTime)
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 分页查询
	err := query.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&records).Error

	return records, total, err
}

// GetByID 按主键获取结算记录
func (r *SettlementRepository) GetByID(ctx context.Context, id uint64) (*settlement.Settlement, error) {
	var record settlement.Settlement
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdatePendingFields 仅当记录仍为待结算时更新字段
// 返回受影响行数，0 行表示记录不存在或已离开 pending 状态
func (r *SettlementRepository) UpdatePendingFields(ctx context.Context, id uint64, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&settlement.Settlement{}).
		Where("id = ? AND status = ?", id, settlement.StatusPending).
		Updates(fields)
	return result.RowsAffected, result.Error
}

// MarkSettled 条件更新：pending -> settled
// WHERE status = 'pending' 保证并发操作下只有一次流转能生效
func (r *SettlementRepository) MarkSettled(ctx context.Context, id uint64, operatorID string, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&settlement.Settlement{}).
		Where("id = ? AND status = ?", id, settlement.StatusPending).
		Updates(map[string]interface{}{
			"status":      settlement.StatusSettled,
			"settled_at":  now,
			"reviewed_at": now,
			"reviewed_by": operatorID,
		})
	return result.RowsAffected, result.Error
}

// Reject 条件更新：pending -> rejected
func (r *SettlementRepository) Reject(ctx context.Context, id uint64, operatorID, reason string, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&settlement.Settlement{}).
		Where("id = ? AND status = ?", id, settlement.StatusPending).
		Updates(map[string]interface{}{
			"status":        settlement.StatusRejected,
			"reject_reason": reason,
			"reviewed_at":   now,
			"reviewed_by":   operatorID,
		})
	return result.RowsAffected, result.Error
}

// ListInWindow 拉取窗口内全部结算记录，girlID 为 0 时不限技师
// 报表导出用，不分页
func (r *SettlementRepository) ListInWindow(ctx context.Context, start, end time.Time, girlID uint64) ([]settlement.Settlement, error) {
	var records []settlement.Settlement

	query := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", start, end)
	if girlID > 0 {
		query = query.Where("girl_id = ?", girlID)
	}

	err := query.Order("created_at ASC").Find(&records).Error
	return records, err
}

// WindowStats 一个记账日窗口内的结算汇总
type WindowStats struct {
	SettledCount  int64   `json:"settled_count"`
	SettledAmount float64 `json:"settled_amount"`
	PendingCount  int64   `json:"pending_count"`
	RejectedCount int64   `json:"rejected_count"`
}

// StatsInWindow 统计窗口内各状态的结算记录
func (r *SettlementRepository) StatsInWindow(ctx context.Context, start, end time.Time) (*WindowStats, error) {
	stats := &WindowStats{}
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&settlement.Settlement{}).
			Where("created_at >= ? AND created_at < ?", start, end)
	}

	if err := base().Where("status = ?", settlement.StatusSettled).Count(&stats.SettledCount).Error; err != nil {
		return nil, err
	}

	var settledAmount *float64
	if err := base().Where("status = ?", settlement.StatusSettled).
		Select("SUM(platform_should_get)").Scan(&settledAmount).Error; err != nil {
		return nil, err
	}
	if settledAmount != nil {
		stats.SettledAmount = *settledAmount
	}

	if err := base().Where("status = ?", settlement.StatusPending).Count(&stats.PendingCount).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", settlement.StatusRejected).Count(&stats.RejectedCount).Error; err != nil {
		return nil, err
	}

	return stats, nil
}
