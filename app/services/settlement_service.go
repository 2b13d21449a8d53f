package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gorm.io/gorm"

	"backoffice/app/models/settlement"
	"backoffice/app/repositories"
	"backoffice/pkg/logger"
	"backoffice/pkg/notify"
)

// BatchChunkSize 批量结算的并发分片大小
// 只是对数据库的吞吐保护，不提供任何跨分片的顺序保证
const BatchChunkSize = 10

// SettlementService 结算生命周期控制器
//
// 状态机：pending ->（settled | rejected），两个终态均不可再流转。
// 所有写操作走条件更新（WHERE status = 'pending'），并发操作人同时
// 审核同一条记录时只有一次能生效。
// 结算确认后的账户余额联动由数据库触发器完成，属于最终一致：
// 调用方不能假设同一响应周期内余额已经刷新。
type SettlementService struct {
	repo *repositories.SettlementRepository
}

// NewSettlementService 创建结算服务
func NewSettlementService(db *gorm.DB) *SettlementService {
	return &SettlementService{
		repo: repositories.NewSettlementRepository(db),
	}
}

// List 分页查询结算记录
func (s *SettlementService) List(ctx context.Context, filter repositories.SettlementFilter) ([]settlement.Settlement, int64, error) {
	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, NewStoreError(err)
	}
	return records, total, nil
}

// PaymentFields 待结算记录上允许修改的收款字段
type PaymentFields struct {
	ActualPaidAmount   *float64
	CustomerPaidAmount *float64
	PlatformShouldGet  *float64
	PaymentMethod      *string
	PaymentNotes       *string
	Notes              *string
}

// UpdatePayment 更新待结算记录的收款信息
// 记录一旦离开 pending 状态，金额字段即不可变，由条件更新兜底（前端禁用只是辅助）
func (s *SettlementService) UpdatePayment(ctx context.Context, operatorID string, id uint64, fields PaymentFields) error {
	if strings.TrimSpace(operatorID) == "" {
		return ErrOperatorRequired
	}

	updates := map[string]interface{}{}
	if fields.ActualPaidAmount != nil {
		if *fields.ActualPaidAmount < 0 {
			return ErrAmountNegative
		}
		updates["actual_paid_amount"] = *fields.ActualPaidAmount
	}
	if fields.CustomerPaidAmount != nil {
		if *fields.CustomerPaidAmount < 0 {
			return ErrAmountNegative
		}
		updates["customer_paid_amount"] = *fields.CustomerPaidAmount
	}
	if fields.PlatformShouldGet != nil {
		if *fields.PlatformShouldGet < 0 {
			return ErrAmountNegative
		}
		updates["platform_should_get"] = *fields.PlatformShouldGet
	}
	if fields.PaymentMethod != nil {
		updates["payment_method"] = *fields.PaymentMethod
	}
	if fields.PaymentNotes != nil {
		updates["payment_notes"] = *fields.PaymentNotes
	}
	if fields.Notes != nil {
		updates["notes"] = *fields.Notes
	}
	if len(updates) == 0 {
		return ErrNoFields
	}

	rows, err := s.repo.UpdatePendingFields(ctx, id, updates)
	if err != nil {
		return NewStoreError(err)
	}
	if rows == 0 {
		return s.classifyZeroRows(ctx, id)
	}
	return nil
}

// MarkSettled 将待结算记录标记为已结算
// settled_at 只在这次流转时写入一次
func (s *SettlementService) MarkSettled(ctx context.Context, operatorID string, id uint64) error {
	if strings.TrimSpace(operatorID) == "" {
		return ErrOperatorRequired
	}

	rows, err := s.repo.MarkSettled(ctx, id, operatorID, time.Now())
	if err != nil {
		return NewStoreError(err)
	}
	if rows == 0 {
		return s.classifyZeroRows(ctx, id)
	}
	return nil
}

// Reject 驳回待结算记录，原因必填且在任何存储调用之前校验
func (s *SettlementService) Reject(ctx context.Context, operatorID string, id uint64, reason string) error {
	if strings.TrimSpace(operatorID) == "" {
		return ErrOperatorRequired
	}
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}

	rows, err := s.repo.Reject(ctx, id, operatorID, reason, time.Now())
	if err != nil {
		return NewStoreError(err)
	}
	if rows == 0 {
		return s.classifyZeroRows(ctx, id)
	}

	notify.Dispatch(notify.EventSettlementRejected, map[string]interface{}{
		"settlement_id": id,
		"operator_id":   operatorID,
		"reason":        reason,
	})
	return nil
}

// BatchResult 批量结算的汇总结果
type BatchResult struct {
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// BatchMarkSettled 批量结算
//
// 每条记录独立流转：单条失败不回滚其他记录，也不重试，
// 最终以 "成功 N 条 / 失败 M 条" 汇总返回。
// 以 BatchChunkSize 为分片并发写入，分片之间无完成顺序保证；
// 部分失败时库里会留下 settled 与 pending 混合的状态，由财务重新发起。
func (s *SettlementService) BatchMarkSettled(ctx context.Context, operatorID string, ids []uint64) (BatchResult, error) {
	if strings.TrimSpace(operatorID) == "" {
		return BatchResult{}, ErrOperatorRequired
	}

	var succeeded, failed atomic.Int64

	for start := 0; start < len(ids); start += BatchChunkSize {
		end := start + BatchChunkSize
		if end > len(ids) {
			end = len(ids)
		}

		var wg sync.WaitGroup
		for _, id := range ids[start:end] {
			wg.Add(1)
			go func(id uint64) {
				defer wg.Done()
				if err := s.MarkSettled(ctx, operatorID, id); err != nil {
					failed.Add(1)
					logger.ErrorString("结算", "批量结算",
						fmt.Sprintf("记录 %d 结算失败: %v", id, err))
					return
				}
				succeeded.Add(1)
			}(id)
		}
		wg.Wait()
	}

	return BatchResult{
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
	}, nil
}

// classifyZeroRows 条件更新没有命中任何行时，区分"记录不存在"与"状态已流转"
func (s *SettlementService) classifyZeroRows(ctx context.Context, id uint64) error {
	_, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return NewStoreError(err)
	}
	return ErrInvalidState
}
