package services

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"backoffice/app/models/settlement"
	"backoffice/app/models/transaction"
	"backoffice/pkg/logger"
)

// setupTestDB 打开内存 sqlite 并迁移测试用表
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// 测试中不关心日志输出
	logger.Logger = zap.NewNop()

	// 每个测试用独立命名的内存库，cache=shared 让同名连接共享数据
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}

	// 内存库在多连接下会各自独立，批量结算的并发写需要收敛到单连接
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&settlement.Settlement{}, &transaction.Transaction{}); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}
	return db
}

// createPendingSettlement 插入一条待结算记录
func createPendingSettlement(t *testing.T, db *gorm.DB, orderID uint64) *settlement.Settlement {
	t.Helper()

	record := &settlement.Settlement{
		GirlID:            1,
		OrderID:           orderID,
		ServiceFee:        1000,
		ServiceCommission: 0.3,
		PlatformShouldGet: 300,
		Status:            settlement.StatusPending,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("创建测试结算记录失败: %v", err)
	}
	return record
}

func TestMarkSettledOnlyOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettlementService(db)
	record := createPendingSettlement(t, db, 101)

	if err := svc.MarkSettled(context.Background(), "op-1", record.ID); err != nil {
		t.Fatalf("首次结算应成功: %v", err)
	}

	var saved settlement.Settlement
	if err := db.First(&saved, record.ID).Error; err != nil {
		t.Fatalf("读取结算记录失败: %v", err)
	}
	if saved.Status != settlement.StatusSettled {
		t.Fatalf("状态 = %s，期望 settled", saved.Status)
	}
	if saved.SettledAt == nil {
		t.Fatal("settled_at 应在结算流转时写入")
	}
	if saved.ReviewedBy != "op-1" {
		t.Fatalf("审核人 = %s，期望 op-1", saved.ReviewedBy)
	}

	// 二次结算必须被状态守卫拦下
	err := svc.MarkSettled(context.Background(), "op-2", record.ID)
	if !IsInvalidState(err) {
		t.Fatalf("重复结算应返回状态冲突错误，得到: %v", err)
	}

	// settled_at 与审核人保持第一次的值
	var again settlement.Settlement
	db.First(&again, record.ID)
	if again.ReviewedBy != "op-1" {
		t.Fatalf("终态记录被二次操作改写: 审核人 = %s", again.ReviewedBy)
	}
}

func TestMarkSettledNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettlementService(db)

	err := svc.MarkSettled(context.Background(), "op-1", 99999)
	if !IsNotFound(err) {
		t.Fatalf("不存在的记录应返回 NotFound，得到: %v", err)
	}
}

func TestRejectRequiresReason(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettlementService(db)
	record := createPendingSettlement(t, db, 102)

	// 空原因必须在任何存储调用之前被拦截
	err := svc.Reject(context.Background(), "op-1", record.ID, "   ")
	if !IsValidation(err) {
		t.Fatalf("空原因应返回校验错误，得到: %v", err)
	}

	var saved settlement.Settlement
	db.First(&saved, record.ID)
	if saved.Status != settlement.StatusPending {
		t.Fatalf("校验失败后记录不应被修改，状态 = %s", saved.Status)
	}

	if err := svc.Reject(context.Background(), "op-1", record.ID, "金额与订单不符"); err != nil {
		t.Fatalf("驳回应成功: %v", err)
	}
	db.First(&saved, record.ID)
	if saved.Status != settlement.StatusRejected || saved.RejectReason != "金额与订单不符" {
		t.Fatalf("驳回后状态 = %s，原因 = %q", saved.Status, saved.RejectReason)
	}
}

func TestUpdatePaymentGuards(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettlementService(db)
	record := createPendingSettlement(t, db, 103)
	ctx := context.Background()

	amount := 888.0
	notes := "现金已点收"
	if err := svc.UpdatePayment(ctx, "op-1", record.ID, PaymentFields{
		ActualPaidAmount: &amount,
		PaymentNotes:     &notes,
	}); err != nil {
		t.Fatalf("待结算记录应允许更新收款信息: %v", err)
	}

	var saved settlement.Settlement
	db.First(&saved, record.ID)
	if saved.ActualPaidAmount != 888.0 || saved.PaymentNotes != "现金已点收" {
		t.Fatalf("字段未写入: %+v", saved)
	}

	// 只修正平台应得金额也是合法的部分更新
	shouldGet := 450.0
	if err := svc.UpdatePayment(ctx, "op-1", record.ID, PaymentFields{
		PlatformShouldGet: &shouldGet,
	}); err != nil {
		t.Fatalf("更新平台应得金额应成功: %v", err)
	}
	db.First(&saved, record.ID)
	if saved.PlatformShouldGet != 450.0 {
		t.Fatalf("平台应得金额未写入，得到: %v", saved.PlatformShouldGet)
	}

	// 没有任何字段
	if err := svc.UpdatePayment(ctx, "op-1", record.ID, PaymentFields{}); !IsValidation(err) {
		t.Fatalf("空更新应返回校验错误，得到: %v", err)
	}

	// 负数金额
	bad := -1.0
	if err := svc.UpdatePayment(ctx, "op-1", record.ID, PaymentFields{ActualPaidAmount: &bad}); !IsValidation(err) {
		t.Fatalf("负数金额应返回校验错误，得到: %v", err)
	}

	// 结算后金额不可变
	if err := svc.MarkSettled(ctx, "op-1", record.ID); err != nil {
		t.Fatalf("结算失败: %v", err)
	}
	err := svc.UpdatePayment(ctx, "op-1", record.ID, PaymentFields{ActualPaidAmount: &amount})
	if !IsInvalidState(err) {
		t.Fatalf("终态记录更新应返回状态冲突错误，得到: %v", err)
	}
}

func TestBatchMarkSettledIsolation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettlementService(db)
	ctx := context.Background()

	ids := []uint64{
		createPendingSettlement(t, db, 201).ID,
		createPendingSettlement(t, db, 202).ID,
		createPendingSettlement(t, db, 203).ID,
		77701, // 不存在
		77702, // 不存在
	}

	result, err := svc.BatchMarkSettled(ctx, "op-1", ids)
	if err != nil {
		t.Fatalf("批量结算本身不应报错: %v", err)
	}
	if result.Succeeded != 3 || result.Failed != 2 {
		t.Fatalf("批量结果 = %+v，期望 {Succeeded:3 Failed:2}", result)
	}

	// 单条失败不影响其他记录落库
	var settled int64
	db.Model(&settlement.Settlement{}).
		Where("status = ?", settlement.StatusSettled).
		Count(&settled)
	if settled != 3 {
		t.Fatalf("已结算记录数 = %d，期望 3", settled)
	}
}

func TestBatchMarkSettledEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettlementService(db)

	result, err := svc.BatchMarkSettled(context.Background(), "op-1", nil)
	if err != nil {
		t.Fatalf("空批量不应报错: %v", err)
	}
	if result.Succeeded != 0 || result.Failed != 0 {
		t.Fatalf("空批量结果 = %+v", result)
	}
}

func TestOperatorRequired(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettlementService(db)
	record := createPendingSettlement(t, db, 301)

	if err := svc.MarkSettled(context.Background(), "", record.ID); !IsValidation(err) {
		t.Fatalf("缺少操作人应返回校验错误，得到: %v", err)
	}
}
