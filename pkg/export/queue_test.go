package export

import (
	"context"
	"errors"
	"fmt"
	"testing"

	goredis "github.com/redis/go-redis/v9"
)

func TestIsQueueIdle(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"键不存在", goredis.Nil, true},
		{"阻塞超时", context.DeadlineExceeded, true},
		{"包装后的阻塞超时", fmt.Errorf("redis: %w", context.DeadlineExceeded), true},
		{"上下文取消", context.Canceled, false},
		{"其他错误", errors.New("connection refused"), false},
		{"无错误", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := isQueueIdle(tc.err); got != tc.want {
				t.Fatalf("isQueueIdle(%v) = %v，期望 %v", tc.err, got, tc.want)
			}
		})
	}
}
