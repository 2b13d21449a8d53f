// Package payout 提现自动打款（支付宝转账）
package payout

import (
	"context"
	"fmt"
	"sync"

	"github.com/smartwalle/alipay/v3"

	"backoffice/pkg/config"
	"backoffice/pkg/logger"
)

// Service 支付宝转账服务
type Service struct {
	client *alipay.Client
}

var (
	service *Service
	once    sync.Once
)

// Enabled 是否启用自动打款
func Enabled() bool {
	return config.GetBool("payout.enabled", false)
}

// GetService 获取打款服务单例，未启用或初始化失败返回 nil
func GetService() *Service {
	once.Do(func() {
		if !Enabled() {
			return
		}

		client, err := alipay.New(
			config.GetString("payout.alipay.app_id"),
			config.GetString("payout.alipay.private_key"),
			config.GetBool("payout.alipay.is_production", false),
		)
		if err != nil {
			logger.ErrorString("Payout", "Init", "创建支付宝客户端失败: "+err.Error())
			return
		}

		if err := client.LoadAliPayPublicKey(config.GetString("payout.alipay.public_key")); err != nil {
			logger.ErrorString("Payout", "Init", "加载支付宝公钥失败: "+err.Error())
			return
		}

		service = &Service{client: client}
	})
	return service
}

// Request 一笔打款请求
type Request struct {
	SerialNo     string  // 业务流水号，作为转账幂等键
	PayeeAccount string  // 收款支付宝账号
	PayeeName    string  // 收款人姓名
	Amount       float64 // 打款金额（人民币元）
	Remark       string
}

// Transfer 发起一笔转账
func (s *Service) Transfer(ctx context.Context, req Request) error {
	if req.PayeeAccount == "" {
		return fmt.Errorf("收款账号为空")
	}
	if req.Amount <= 0 {
		return fmt.Errorf("打款金额必须大于 0")
	}

	param := alipay.FundTransUniTransfer{}
	param.OutBizNo = req.SerialNo
	param.TransAmount = fmt.Sprintf("%.2f", req.Amount)
	param.BizScene = "DIRECT_TRANSFER"
	param.ProductCode = "TRANS_ACCOUNT_NO_PWD"
	param.OrderTitle = "技师提现"
	param.Remark = req.Remark
	param.PayeeInfo = &alipay.PayeeInfo{
		Identity:     req.PayeeAccount,
		IdentityType: "ALIPAY_LOGON_ID",
		Name:         req.PayeeName,
	}

	rsp, err := s.client.FundTransUniTransfer(ctx, param)
	if err != nil {
		return fmt.Errorf("alipay transfer error: %w", err)
	}
	if rsp.IsFailure() {
		return fmt.Errorf("alipay transfer rejected: %s %s", rsp.SubCode, rsp.SubMsg)
	}

	logger.InfoString("Payout", "Transfer",
		fmt.Sprintf("打款成功 [流水 %s, 金额 %s]", req.SerialNo, param.TransAmount))
	return nil
}
