// Package services 后台业务编排层
package services

import "errors"

// 业务错误码定义
const (
	ErrCodeValidation   = 4001 // 入参校验失败，未触达存储
	ErrCodeInvalidState = 4002 // 记录不在要求的源状态
	ErrCodeNotFound     = 4003 // 记录不存在
	ErrCodeStore        = 5001 // 存储层调用失败
)

// ServiceError 业务处理错误
type ServiceError struct {
	Code    int
	Message string
	cause   error
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Unwrap 暴露底层错误，支持 errors.Is / errors.As
func (e *ServiceError) Unwrap() error {
	return e.cause
}

// 错误定义
var (
	ErrOperatorRequired = &ServiceError{Code: ErrCodeValidation, Message: "缺少操作人"}
	ErrReasonRequired   = &ServiceError{Code: ErrCodeValidation, Message: "原因不能为空"}
	ErrNoFields         = &ServiceError{Code: ErrCodeValidation, Message: "没有需要更新的字段"}
	ErrAmountNegative   = &ServiceError{Code: ErrCodeValidation, Message: "金额不能为负数"}
	ErrInvalidState     = &ServiceError{Code: ErrCodeInvalidState, Message: "当前状态不允许该操作"}
	ErrNotFound         = &ServiceError{Code: ErrCodeNotFound, Message: "记录不存在"}
)

// NewStoreError 包装存储层错误，对外只暴露统一话术
func NewStoreError(cause error) *ServiceError {
	return &ServiceError{Code: ErrCodeStore, Message: "数据操作失败，请稍后重试", cause: cause}
}

// ErrorCode 提取业务错误码，非业务错误一律归为存储类
func ErrorCode(err error) int {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Code
	}
	return ErrCodeStore
}

// IsValidation 检查是否校验类错误
func IsValidation(err error) bool {
	return ErrorCode(err) == ErrCodeValidation
}

// IsInvalidState 检查是否状态冲突类错误
func IsInvalidState(err error) bool {
	return ErrorCode(err) == ErrCodeInvalidState
}

// IsNotFound 检查是否不存在类错误
func IsNotFound(err error) bool {
	return ErrorCode(err) == ErrCodeNotFound
}
