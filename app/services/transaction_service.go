package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"backoffice/app/models/transaction"
	"backoffice/app/repositories"
	"backoffice/pkg/logger"
	"backoffice/pkg/notify"
	"backoffice/pkg/payout"
)

// TransactionService 资金流水审核服务
//
// pending 之外均为终态：条件更新保证每笔流水只能被一名财务处理一次。
type TransactionService struct {
	repo *repositories.TransactionRepository
}

// NewTransactionService 创建流水审核服务
func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{
		repo: repositories.NewTransactionRepository(db),
	}
}

// List 分页查询流水
func (s *TransactionService) List(ctx context.Context, filter repositories.TransactionFilter) ([]transaction.Transaction, int64, error) {
	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, NewStoreError(err)
	}
	return records, total, nil
}

// Confirm 确认一笔流水
//
// 先走条件更新抢占状态，再做提现自动打款：并发确认时只有抢到
// 状态流转的那次会触发打款，不会重复付款。打款失败不回滚确认
// （原始流程本就是人工转账后再确认），只记日志并推送告警事件，
// 由财务人工补救。
func (s *TransactionService) Confirm(ctx context.Context, operatorID string, id uint64) error {
	if strings.TrimSpace(operatorID) == "" {
		return ErrOperatorRequired
	}

	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return NewStoreError(err)
	}

	rows, err := s.repo.Confirm(ctx, id, operatorID, time.Now())
	if err != nil {
		return NewStoreError(err)
	}
	if rows == 0 {
		// 读到过记录，零行只可能是状态已被他人流转
		return ErrInvalidState
	}

	if record.IsWithdrawal() {
		s.tryAutoPayout(ctx, record)
	}

	notify.Dispatch(notify.EventTransactionApproved, map[string]interface{}{
		"transaction_id": id,
		"serial_no":      record.SerialNo,
		"type":           record.Type,
		"amount":         record.Amount,
		"operator_id":    operatorID,
	})
	return nil
}

// Cancel 取消一笔流水，原因必填且在任何存储调用之前校验
func (s *TransactionService) Cancel(ctx context.Context, operatorID string, id uint64, reason string) error {
	if strings.TrimSpace(operatorID) == "" {
		return ErrOperatorRequired
	}
	if strings.TrimSpace(reason) == "" {
		return ErrReasonRequired
	}

	rows, err := s.repo.Cancel(ctx, id, operatorID, reason, time.Now())
	if err != nil {
		return NewStoreError(err)
	}
	if rows == 0 {
		_, err := s.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return NewStoreError(err)
		}
		return ErrInvalidState
	}

	notify.Dispatch(notify.EventTransactionCanceled, map[string]interface{}{
		"transaction_id": id,
		"operator_id":    operatorID,
		"reason":         reason,
	})
	return nil
}

// tryAutoPayout 提现确认后的自动打款，未启用时跳过
func (s *TransactionService) tryAutoPayout(ctx context.Context, record *transaction.Transaction) {
	svc := payout.GetService()
	if svc == nil {
		return
	}

	err := svc.Transfer(ctx, payout.Request{
		SerialNo:     record.SerialNo,
		PayeeAccount: record.PayeeAccount,
		Amount:       record.NetAmount(),
		Remark:       "提现打款",
	})
	if err != nil {
		logger.ErrorString("流水", "自动打款",
			fmt.Sprintf("流水 %s 打款失败: %v", record.SerialNo, err))
		notify.Dispatch(notify.EventPayoutFailed, map[string]interface{}{
			"transaction_id": record.ID,
			"serial_no":      record.SerialNo,
			"error":          err.Error(),
		})
	}
}
