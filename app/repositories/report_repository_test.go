package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"backoffice/app/models/report"
	"backoffice/pkg/logger"
)

// setupReportDB 打开内存 sqlite 并迁移工单表
func setupReportDB(t *testing.T) *gorm.DB {
	t.Helper()

	logger.Logger = zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("打开内存数据库失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("获取底层连接失败: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&report.Report{}); err != nil {
		t.Fatalf("迁移测试表失败: %v", err)
	}
	return db
}

func TestReportCloseZeroRowsDisambiguation(t *testing.T) {
	db := setupReportDB(t)
	repo := NewReportRepository(db)
	ctx := context.Background()
	now := time.Now()

	record := &report.Report{
		UserID:   1,
		GirlID:   2,
		Category: "service",
		Content:  "服务态度差",
		Status:   report.StatusOpen,
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("创建测试工单失败: %v", err)
	}

	rows, err := repo.Close(ctx, record.ID, report.StatusResolved, "op-1", "已与技师沟通", now)
	if err != nil || rows != 1 {
		t.Fatalf("办结待处理工单应影响 1 行，得到 rows=%d err=%v", rows, err)
	}

	// 已办结的工单再次办结：0 行，但回读仍能找到记录
	rows, err = repo.Close(ctx, record.ID, report.StatusDismissed, "op-2", "重复处理", now)
	if err != nil || rows != 0 {
		t.Fatalf("重复办结应影响 0 行，得到 rows=%d err=%v", rows, err)
	}
	saved, err := repo.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("回读已办结工单应成功: %v", err)
	}
	if saved.Status != report.StatusResolved || saved.HandlerID != "op-1" {
		t.Fatalf("重复办结不应覆盖首次结果: %+v", saved)
	}

	// 不存在的工单：0 行，回读返回 ErrRecordNotFound
	rows, err = repo.Close(ctx, 99999, report.StatusResolved, "op-1", "x", now)
	if err != nil || rows != 0 {
		t.Fatalf("办结不存在的工单应影响 0 行，得到 rows=%d err=%v", rows, err)
	}
	if _, err = repo.GetByID(ctx, 99999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("回读不存在的工单应返回 ErrRecordNotFound，得到: %v", err)
	}
}
