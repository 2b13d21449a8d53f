package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"backoffice/app/models/report"
)

// ReportRepository 举报工单仓库
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository 创建仓库实例
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// ReportFilter 工单查询条件
type ReportFilter struct {
	GirlID   uint64
	Status   report.Status
	Category string
	Page     int
	PageSize int
}

// List 按条件分页查询工单
func (r *ReportRepository) List(ctx context.Context, filter ReportFilter) ([]report.Report, int64, error) {
	var records []report.Report
	var total int64

	query := r.db.WithContext(ctx).Model(&report.Report{})

	if filter.GirlID > 0 {
		query = query.Where("girl_id = ?", filter.GirlID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
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

// GetByID 按 ID 查询工单
func (r *ReportRepository) GetByID(ctx context.Context, id uint64) (*report.Report, error) {
	var record report.Report
	if err := r.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Close 条件更新：open -> resolved/dismissed
// 返回受影响行数，0 行表示工单不存在或已被处理
func (r *ReportRepository) Close(ctx context.Context, id uint64, status report.Status, handlerID, note string, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&report.Report{}).
		Where("id = ? AND status = ?", id, report.StatusOpen).
		Updates(map[string]interface{}{
			"status":      status,
			"handler_id":  handlerID,
			"handle_note": note,
			"handled_at":  now,
		})
	return result.RowsAffected, result.Error
}
