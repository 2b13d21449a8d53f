package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"backoffice/app/models/account"
	"backoffice/app/models/girl"
	"backoffice/app/repositories"
)

// GirlService 技师档案与账户管理
type GirlService struct {
	girlRepo    *repositories.GirlRepository
	accountRepo *repositories.AccountRepository
}

// NewGirlService 创建技师服务
func NewGirlService(db *gorm.DB) *GirlService {
	return &GirlService{
		girlRepo:    repositories.NewGirlRepository(db),
		accountRepo: repositories.NewAccountRepository(db),
	}
}

// GirlView 技师列表行：档案 + 账户 + 欠款档位
type GirlView struct {
	girl.Girl
	DepositCeiling float64          `json:"deposit_ceiling"`
	Balance        float64          `json:"balance"`
	DebtBand       account.DebtBand `json:"debt_band"`
	DebtRatio      float64          `json:"debt_ratio"`
}

// List 分页查询技师，合并账户余额并标注欠款档位
func (s *GirlService) List(ctx context.Context, filter repositories.GirlFilter) ([]GirlView, int64, error) {
	girls, total, err := s.girlRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, NewStoreError(err)
	}

	girlIDs := make([]uint64, 0, len(girls))
	for _, g := range girls {
		girlIDs = append(girlIDs, g.ID)
	}

	accounts, err := s.accountRepo.GetByGirlIDs(ctx, girlIDs)
	if err != nil {
		return nil, 0, NewStoreError(err)
	}

	views := make([]GirlView, 0, len(girls))
	for _, g := range girls {
		view := GirlView{Girl: g}
		// 账户缺失视为零余额零额度，列表展示不因此失败
		if acc, ok := accounts[g.ID]; ok {
			view.DepositCeiling = acc.DepositCeiling
			view.Balance = acc.Balance
		}
		view.DebtBand, view.DebtRatio = account.ClassifyDebt(view.Balance, view.DepositCeiling)
		views = append(views, view)
	}
	return views, total, nil
}

// UpdateStatus 切换技师接单状态
func (s *GirlService) UpdateStatus(ctx context.Context, operatorID string, id uint64, status girl.Status) error {
	if strings.TrimSpace(operatorID) == "" {
		return ErrOperatorRequired
	}
	if status != girl.StatusActive && status != girl.StatusSuspended {
		return &ServiceError{Code: ErrCodeValidation, Message: "无效的技师状态"}
	}

	rows, err := s.girlRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return NewStoreError(err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateDepositCeiling 调整押金额度
func (s *GirlService) UpdateDepositCeiling(ctx context.Context, operatorID string, girlID uint64, ceiling float64) error {
	if strings.TrimSpace(operatorID) == "" {
		return ErrOperatorRequired
	}
	if ceiling < 0 {
		return ErrAmountNegative
	}

	if _, err := s.girlRepo.GetByID(ctx, girlID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return NewStoreError(err)
	}

	rows, err := s.accountRepo.UpdateDepositCeiling(ctx, girlID, ceiling)
	if err != nil {
		return NewStoreError(err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
