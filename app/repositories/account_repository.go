package repositories

import (
	"context"

	"gorm.io/gorm"

	"backoffice/app/models/account"
)

// AccountRepository 技师结算账户仓库
// 余额字段由数据库触发器维护，这里只提供读取和押金额度调整
type AccountRepository struct {
	db *gorm.DB
}

// NewAccountRepository 创建仓库实例
func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// GetByGirlID 获取技师的结算账户
func (r *AccountRepository) GetByGirlID(ctx context.Context, girlID uint64) (*account.Account, error) {
	var acc account.Account
	err := r.db.WithContext(ctx).Where("girl_id = ?", girlID).First(&acc).Error
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// GetByGirlIDs 批量获取结算账户，用于列表页合并展示
func (r *AccountRepository) GetByGirlIDs(ctx context.Context, girlIDs []uint64) (map[uint64]account.Account, error) {
	var accounts []account.Account
	if len(girlIDs) == 0 {
		return map[uint64]account.Account{}, nil
	}

	err := r.db.WithContext(ctx).Where("girl_id IN ?", girlIDs).Find(&accounts).Error
	if err != nil {
		return nil, err
	}

	result := make(map[uint64]account.Account, len(accounts))
	for _, acc := range accounts {
		result[acc.GirlID] = acc
	}
	return result, nil
}

// UpdateDepositCeiling 调整押金额度（余额字段绝不在这里写入）
func (r *AccountRepository) UpdateDepositCeiling(ctx context.Context, girlID uint64, ceiling float64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&account.Account{}).
		Where("girl_id = ?", girlID).
		Update("deposit_ceiling", ceiling)
	return result.RowsAffected, result.Error
}
