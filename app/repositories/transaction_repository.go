package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"backoffice/app/models/transaction"
)

// TransactionRepository 资金流水仓库
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository 创建仓库实例
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// TransactionFilter 流水查询条件
type TransactionFilter struct {
	GirlID    uint64
	Type      transaction.Type
	Status    transaction.Status
	StartTime *time.Time
	EndTime   *time.Time
	Page      int
	PageSize  int
}

// List 按条件分页查询流水
func (r *TransactionRepository) List(ctx context.Context, filter TransactionFilter) ([]transaction.Transaction, int64, error) {
	var records []transaction.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&transaction.Transaction{})

	if filter.GirlID > 0 {
		query = query.Where("girl_id = ?", filter.GirlID)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
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

// GetByID 按主键获取流水
func (r *TransactionRepository) GetByID(ctx context.Context, id uint64) (*transaction.Transaction, error) {
	var record transaction.Transaction
	err := r.db.WithContext(ctx).First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Confirm 条件更新：pending -> confirmed
// 返回受影响行数，0 行表示记录不存在或已被其他操作人处理
func (r *TransactionRepository) Confirm(ctx context.Context, id uint64, operatorID string, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&transaction.Transaction{}).
		Where("id = ? AND status = ?", id, transaction.StatusPending).
		Updates(map[string]interface{}{
			"status":      transaction.StatusConfirmed,
			"operator_id": operatorID,
			"reviewed_at": now,
		})
	return result.RowsAffected, result.Error
}

// Cancel 条件更新：pending -> cancelled
func (r *TransactionRepository) Cancel(ctx context.Context, id uint64, operatorID, reason string, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&transaction.Transaction{}).
		Where("id = ? AND status = ?", id, transaction.StatusPending).
		Updates(map[string]interface{}{
			"status":        transaction.StatusCancelled,
			"operator_id":   operatorID,
			"cancel_reason": reason,
			"reviewed_at":   now,
		})
	return result.RowsAffected, result.Error
}
