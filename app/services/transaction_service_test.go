package services

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"backoffice/app/models/transaction"
)

// createPendingTransaction 插入一条待审核流水
func createPendingTransaction(t *testing.T, db *gorm.DB, serialNo string, txType transaction.Type) *transaction.Transaction {
	t.Helper()

	record := &transaction.Transaction{
		SerialNo:     serialNo,
		GirlID:       1,
		Type:         txType,
		Amount:       5000,
		ExchangeRate: 0.2,
		FeeRate:      0.05,
		Status:       transaction.StatusPending,
		PayeeAccount: "girl@example.com",
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("创建测试流水失败: %v", err)
	}
	return record
}

func TestConfirmIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransactionService(db)
	ctx := context.Background()
	record := createPendingTransaction(t, db, "tx-001", transaction.TypeSettlement)

	if err := svc.Confirm(ctx, "op-1", record.ID); err != nil {
		t.Fatalf("首次确认应成功: %v", err)
	}

	var saved transaction.Transaction
	db.First(&saved, record.ID)
	if saved.Status != transaction.StatusConfirmed {
		t.Fatalf("状态 = %s，期望 confirmed", saved.Status)
	}
	if saved.OperatorID != "op-1" {
		t.Fatalf("操作人 = %s，期望 op-1", saved.OperatorID)
	}
	if saved.ReviewedAt == nil {
		t.Fatal("reviewed_at 应在确认时写入")
	}

	// 离开 pending 后为终态
	if err := svc.Confirm(ctx, "op-2", record.ID); !IsInvalidState(err) {
		t.Fatalf("重复确认应返回状态冲突错误，得到: %v", err)
	}
	if err := svc.Cancel(ctx, "op-2", record.ID, "重复提交"); !IsInvalidState(err) {
		t.Fatalf("确认后取消应返回状态冲突错误，得到: %v", err)
	}
}

func TestConfirmNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransactionService(db)

	if err := svc.Confirm(context.Background(), "op-1", 424242); !IsNotFound(err) {
		t.Fatalf("不存在的流水应返回 NotFound，得到: %v", err)
	}
}

func TestCancelRequiresReason(t *testing.T) {
	db := setupTestDB(t)
	svc := NewTransactionService(db)
	ctx := context.Background()
	record := createPendingTransaction(t, db, "tx-002", transaction.TypeWithdrawal)

	if err := svc.Cancel(ctx, "op-1", record.ID, ""); !IsValidation(err) {
		t.Fatalf("空原因应返回校验错误，得到: %v", err)
	}

	var saved transaction.Transaction
	db.First(&saved, record.ID)
	if saved.Status != transaction.StatusPending {
		t.Fatalf("校验失败后流水不应被修改，状态 = %s", saved.Status)
	}

	if err := svc.Cancel(ctx, "op-1", record.ID, "凭证不清晰"); err != nil {
		t.Fatalf("取消应成功: %v", err)
	}
	db.First(&saved, record.ID)
	if saved.Status != transaction.StatusCancelled || saved.CancelReason != "凭证不清晰" {
		t.Fatalf("取消后状态 = %s，原因 = %q", saved.Status, saved.CancelReason)
	}
}

func TestWithdrawalNetAmount(t *testing.T) {
	record := &transaction.Transaction{
		Type:         transaction.TypeWithdrawal,
		Amount:       5000,
		ExchangeRate: 0.2,
		FeeRate:      0.05,
	}

	// 5000 * (1 - 0.05) * 0.2 = 950
	if got := record.NetAmount(); got != 950 {
		t.Fatalf("NetAmount = %v，期望 950", got)
	}

	// 结算类流水不折算
	record.Type = transaction.TypeSettlement
	if got := record.NetAmount(); got != 5000 {
		t.Fatalf("结算流水 NetAmount = %v，期望 5000", got)
	}
}
