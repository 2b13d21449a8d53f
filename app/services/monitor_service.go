package services

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"backoffice/app/models/order"
	"backoffice/app/repositories"
	"backoffice/pkg/fiscal"
	"backoffice/pkg/logger"
	"backoffice/pkg/redis"
)

// statsCacheTTL 记账日统计的缓存时长
const statsCacheTTL = 60 * time.Second

// MonitorService 订单监控与经营统计
type MonitorService struct {
	orderRepo      *repositories.OrderRepository
	settlementRepo *repositories.SettlementRepository
}

// NewMonitorService 创建监控服务
func NewMonitorService(db *gorm.DB) *MonitorService {
	return &MonitorService{
		orderRepo:      repositories.NewOrderRepository(db),
		settlementRepo: repositories.NewSettlementRepository(db),
	}
}

// OrderView 订单监控行：订单 + 读侧派生的异常标记
type OrderView struct {
	order.Order
	Abnormal       bool   `json:"abnormal"`
	AbnormalReason string `json:"abnormal_reason,omitempty"`
}

// ListOrders 分页查询订单并标注异常
func (s *MonitorService) ListOrders(ctx context.Context, filter repositories.OrderFilter) ([]OrderView, int64, error) {
	records, total, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, NewStoreError(err)
	}

	now := time.Now()
	views := make([]OrderView, 0, len(records))
	for i := range records {
		flagged, reason := order.DetectAbnormal(&records[i], now)
		views = append(views, OrderView{
			Order:          records[i],
			Abnormal:       flagged,
			AbnormalReason: reason,
		})
	}
	return views, total, nil
}

// ListAbnormalOrders 只返回进行中且已判定异常的订单
func (s *MonitorService) ListAbnormalOrders(ctx context.Context) ([]OrderView, error) {
	records, err := s.orderRepo.ListInFlight(ctx)
	if err != nil {
		return nil, NewStoreError(err)
	}

	now := time.Now()
	var views []OrderView
	for i := range records {
		flagged, reason := order.DetectAbnormal(&records[i], now)
		if !flagged {
			continue
		}
		views = append(views, OrderView{
			Order:          records[i],
			Abnormal:       true,
			AbnormalReason: reason,
		})
	}
	return views, nil
}

// DayStats 一个记账日的经营统计
type DayStats struct {
	StartUTC string                   `json:"start_utc"`
	EndUTC   string                   `json:"end_utc"`
	Stats    repositories.WindowStats `json:"stats"`
}

// DayStatistics 按记账日窗口统计结算情况，结果缓存 60 秒
func (s *MonitorService) DayStatistics(ctx context.Context, selector fiscal.Selector) (*DayStats, error) {
	start, end := fiscal.Window(selector, time.Now())

	cacheKey := "stats:day:" + start.Format("2006-01-02")
	if cached := s.cacheGet(cacheKey); cached != nil {
		return cached, nil
	}

	stats, err := s.settlementRepo.StatsInWindow(ctx, start, end)
	if err != nil {
		return nil, NewStoreError(err)
	}

	result := &DayStats{
		StartUTC: start.Format(time.RFC3339),
		EndUTC:   end.Format(time.RFC3339),
		Stats:    *stats,
	}
	s.cacheSet(cacheKey, result)
	return result, nil
}

// cacheGet 从 redis 读取统计缓存，redis 未初始化时直接穿透
func (s *MonitorService) cacheGet(key string) *DayStats {
	if redis.Redis == nil {
		return nil
	}

	raw := redis.Redis.Get(key)
	if raw == "" {
		return nil
	}

	var stats DayStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		logger.ErrorString("监控", "统计缓存", "缓存反序列化失败: "+err.Error())
		return nil
	}
	return &stats
}

// cacheSet 写入统计缓存
func (s *MonitorService) cacheSet(key string, stats *DayStats) {
	if redis.Redis == nil {
		return
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	redis.Redis.Set(key, string(raw), statsCacheTTL)
}
