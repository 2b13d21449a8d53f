package requests

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// newJSONContext 构造一个带 JSON 请求体的 gin 测试上下文
func newJSONContext(t *testing.T, body string) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("PATCH", "/v1/settlements/1/payment", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestValidateSettlementPaymentFields(t *testing.T) {
	// 每个可更新字段单独提交都应通过"至少一个字段"校验
	cases := []struct {
		name string
		body string
	}{
		{"实收金额", `{"actual_paid_amount": 888.0}`},
		{"客户支付金额", `{"customer_paid_amount": 900.0}`},
		{"平台应得金额", `{"platform_should_get": 450.0}`},
		{"收款方式", `{"payment_method": "cash"}`},
		{"收款备注", `{"payment_notes": "现金已点收"}`},
		{"备注", `{"notes": "补充说明"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ValidateSettlementPayment(newJSONContext(t, tc.body)); err != nil {
				t.Fatalf("只提交%s应通过校验: %v", tc.name, err)
			}
		})
	}

	req, err := ValidateSettlementPayment(newJSONContext(t, `{"platform_should_get": 450.0}`))
	if err != nil {
		t.Fatalf("校验失败: %v", err)
	}
	if req.PlatformShouldGet == nil || *req.PlatformShouldGet != 450.0 {
		t.Fatalf("platform_should_get 未绑定: %+v", req)
	}
}

func TestValidateSettlementPaymentGuards(t *testing.T) {
	if _, err := ValidateSettlementPayment(newJSONContext(t, `{}`)); err == nil {
		t.Fatal("空请求应返回校验错误")
	}
	if _, err := ValidateSettlementPayment(newJSONContext(t, `{"actual_paid_amount": -1}`)); err == nil {
		t.Fatal("负数实收金额应返回校验错误")
	}
	if _, err := ValidateSettlementPayment(newJSONContext(t, `{"platform_should_get": -1}`)); err == nil {
		t.Fatal("负数平台应得金额应返回校验错误")
	}
}
