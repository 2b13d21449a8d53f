// Package notify 财务事件 Webhook 通知
//
// 向运营群机器人（或任意 HTTP 回调）推送结算驳回、流水审核、
// 导出完成等事件。通知失败只记日志，绝不影响业务流程。
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"backoffice/pkg/config"
	"backoffice/pkg/logger"
)

// Event 事件类型
type Event string

const (
	EventSettlementRejected  Event = "settlement.rejected"   // 结算驳回
	EventTransactionApproved Event = "transaction.confirmed" // 流水确认
	EventTransactionCanceled Event = "transaction.cancelled" // 流水取消
	EventPayoutFailed        Event = "payout.failed"         // 自动打款失败
	EventExportCompleted     Event = "export.completed"      // 导出完成
)

// payload Webhook 请求体
type payload struct {
	Event     Event                  `json:"event"`
	Timestamp int64                  `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

var (
	client     *resty.Client
	clientOnce sync.Once
)

// getClient 懒加载共享的 resty 客户端
func getClient() *resty.Client {
	clientOnce.Do(func() {
		client = resty.New().
			SetTimeout(time.Duration(config.GetInt("notify.timeout", 5)) * time.Second).
			SetRetryCount(config.GetInt("notify.max_retries", 2)).
			SetRetryWaitTime(500 * time.Millisecond).
			SetHeader("Content-Type", "application/json")
	})
	return client
}

// Dispatch 异步推送一个事件
// 未配置 notify.webhook_url 时为关闭状态，直接返回
func Dispatch(event Event, data map[string]interface{}) {
	url := config.GetString("notify.webhook_url")
	if url == "" {
		return
	}

	go func() {
		body := payload{
			Event:     event,
			Timestamp: time.Now().Unix(),
			Data:      data,
		}

		resp, err := getClient().R().SetBody(body).Post(url)
		if err != nil {
			logger.ErrorString("Notify", string(event), err.Error())
			return
		}
		if resp.StatusCode() >= 300 {
			logger.ErrorString("Notify", string(event),
				fmt.Sprintf("webhook 返回非 2xx: %d", resp.StatusCode()))
		}
	}()
}
