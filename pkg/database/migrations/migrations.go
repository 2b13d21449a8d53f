// Package migrations 注册需要自动迁移的数据表
package migrations

import (
	"backoffice/app/models/account"
	"backoffice/app/models/admin"
	"backoffice/app/models/girl"
	"backoffice/app/models/order"
	"backoffice/app/models/report"
	"backoffice/app/models/settlement"
	"backoffice/app/models/transaction"
	"backoffice/app/models/user"
)

// RegisterTables 返回所有参与自动迁移的模型
func RegisterTables() []interface{} {
	return []interface{}{
		&girl.Girl{},
		&account.Account{},
		&user.User{},
		&order.Order{},
		&settlement.Settlement{},
		&transaction.Transaction{},
		&report.Report{},
		&admin.Admin{},
	}
}
