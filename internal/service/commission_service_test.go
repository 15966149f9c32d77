package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/aakhmedov/freightpay/internal/mocks/repository_mocks"
	"github.com/aakhmedov/freightpay/internal/mocks/service_mocks"
	"github.com/aakhmedov/freightpay/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enabledSettings(globalPercent int64) *models.PlatformSettings {
	return &models.PlatformSettings{
		GlobalCommissionPercent: decimal.NewFromInt(globalPercent),
		CommissionEnabled:       true,
	}
}

func TestCommissionService_Calculate(t *testing.T) {
	const userID = int64(2)
	orderAmount := dec(300000)

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewCommissionService(repository_mocks.NewMockCommissionRepository(ctrl), repository_mocks.NewMockTransactionRepository(ctrl), nil)
		_, err := svc.Calculate(context.Background(), userID, dec(0))
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})

	t.Run("commission disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockCommissionRepository(ctrl)
		repo.EXPECT().GetSettings(gomock.Any()).
			Return(&models.PlatformSettings{GlobalCommissionPercent: decimal.NewFromInt(5), CommissionEnabled: false}, nil)

		svc := NewCommissionService(repo, repository_mocks.NewMockTransactionRepository(ctrl), nil)
		result, err := svc.Calculate(context.Background(), userID, orderAmount)
		require.NoError(t, err)
		assert.Equal(t, models.SourceDisabled, result.Source)
		assert.True(t, result.CommissionAmount.IsZero())
		assert.True(t, result.NetAmount.Equal(orderAmount))
	})

	t.Run("custom override beats subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockCommissionRepository(ctrl)
		repo.EXPECT().GetSettings(gomock.Any()).Return(enabledSettings(5), nil)
		// The subscription is never looked up once an override matches.
		repo.EXPECT().GetOverride(gomock.Any(), userID).
			Return(&models.CommissionOverride{UserID: userID, Percent: decimal.NewFromInt(3)}, nil)

		svc := NewCommissionService(repo, repository_mocks.NewMockTransactionRepository(ctrl), nil)
		result, err := svc.Calculate(context.Background(), userID, orderAmount)
		require.NoError(t, err)
		assert.Equal(t, models.SourceCustom, result.Source)
		assert.Equal(t, "user_override", result.AppliedRule)
		assert.True(t, result.CommissionAmount.Equal(dec(9000)))
		assert.True(t, result.NetAmount.Equal(dec(291000)))
	})

	t.Run("active subscription", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockCommissionRepository(ctrl)
		repo.EXPECT().GetSettings(gomock.Any()).Return(enabledSettings(5), nil)
		repo.EXPECT().GetOverride(gomock.Any(), userID).Return(nil, apperrors.ErrNotFound)
		repo.EXPECT().GetActiveSubscription(gomock.Any(), userID).
			Return(&models.Subscription{UserID: userID, PlanName: "pro", Percent: decimal.NewFromInt(2)}, nil)

		svc := NewCommissionService(repo, repository_mocks.NewMockTransactionRepository(ctrl), nil)
		result, err := svc.Calculate(context.Background(), userID, orderAmount)
		require.NoError(t, err)
		assert.Equal(t, models.SourceSubscription, result.Source)
		assert.Equal(t, "pro", result.AppliedRule)
		assert.True(t, result.CommissionAmount.Equal(dec(6000)))
	})

	t.Run("turnover level", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockCommissionRepository(ctrl)
		txRepo := repository_mocks.NewMockTransactionRepository(ctrl)

		repo.EXPECT().GetSettings(gomock.Any()).Return(enabledSettings(5), nil)
		repo.EXPECT().GetOverride(gomock.Any(), userID).Return(nil, apperrors.ErrNotFound)
		repo.EXPECT().GetActiveSubscription(gomock.Any(), userID).Return(nil, apperrors.ErrNotFound)
		txRepo.EXPECT().GetUserTurnover(gomock.Any(), userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, since time.Time) (decimal.Decimal, error) {
				assert.WithinDuration(t, time.Now().Add(-30*24*time.Hour), since, time.Minute)
				return dec(5000000), nil
			})
		repo.EXPECT().GetLevelForTurnover(gomock.Any(), gomock.Any()).
			Return(&models.CommissionLevel{Name: "gold", Percent: decimal.NewFromInt(4)}, nil)

		svc := NewCommissionService(repo, txRepo, nil)
		result, err := svc.Calculate(context.Background(), userID, orderAmount)
		require.NoError(t, err)
		assert.Equal(t, models.SourceLevel, result.Source)
		assert.Equal(t, "gold", result.AppliedRule)
		assert.True(t, result.CommissionAmount.Equal(dec(12000)))
	})

	t.Run("global default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockCommissionRepository(ctrl)
		txRepo := repository_mocks.NewMockTransactionRepository(ctrl)

		repo.EXPECT().GetSettings(gomock.Any()).Return(enabledSettings(5), nil)
		repo.EXPECT().GetOverride(gomock.Any(), userID).Return(nil, apperrors.ErrNotFound)
		repo.EXPECT().GetActiveSubscription(gomock.Any(), userID).Return(nil, apperrors.ErrNotFound)
		txRepo.EXPECT().GetUserTurnover(gomock.Any(), userID, gomock.Any()).Return(dec(0), nil)
		repo.EXPECT().GetLevelForTurnover(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrNotFound)

		svc := NewCommissionService(repo, txRepo, nil)
		result, err := svc.Calculate(context.Background(), userID, orderAmount)
		require.NoError(t, err)
		assert.Equal(t, models.SourceGlobal, result.Source)
		assert.True(t, result.CommissionAmount.Equal(dec(15000)))
		assert.True(t, result.NetAmount.Equal(dec(285000)))
	})

	t.Run("lookup failures fall through to global", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockCommissionRepository(ctrl)
		txRepo := repository_mocks.NewMockTransactionRepository(ctrl)

		boom := errors.New("connection refused")
		repo.EXPECT().GetSettings(gomock.Any()).Return(enabledSettings(7), nil)
		repo.EXPECT().GetOverride(gomock.Any(), userID).Return(nil, boom)
		repo.EXPECT().GetActiveSubscription(gomock.Any(), userID).Return(nil, boom)
		txRepo.EXPECT().GetUserTurnover(gomock.Any(), userID, gomock.Any()).Return(decimal.Zero, boom)

		svc := NewCommissionService(repo, txRepo, nil)
		result, err := svc.Calculate(context.Background(), userID, orderAmount)
		require.NoError(t, err)
		assert.Equal(t, models.SourceGlobal, result.Source)
		assert.True(t, result.Percent.Equal(dec(7)))
	})

	t.Run("settings failure uses built-in default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockCommissionRepository(ctrl)
		txRepo := repository_mocks.NewMockTransactionRepository(ctrl)

		repo.EXPECT().GetSettings(gomock.Any()).Return(nil, errors.New("relation does not exist"))
		repo.EXPECT().GetOverride(gomock.Any(), userID).Return(nil, apperrors.ErrNotFound)
		repo.EXPECT().GetActiveSubscription(gomock.Any(), userID).Return(nil, apperrors.ErrNotFound)
		txRepo.EXPECT().GetUserTurnover(gomock.Any(), userID, gomock.Any()).Return(dec(0), nil)
		repo.EXPECT().GetLevelForTurnover(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrNotFound)

		svc := NewCommissionService(repo, txRepo, nil)
		result, err := svc.Calculate(context.Background(), userID, orderAmount)
		require.NoError(t, err)
		assert.True(t, result.Percent.Equal(dec(5)))
	})

	t.Run("commission is rounded to cents", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockCommissionRepository(ctrl)
		repo.EXPECT().GetSettings(gomock.Any()).Return(enabledSettings(5), nil)
		repo.EXPECT().GetOverride(gomock.Any(), userID).
			Return(&models.CommissionOverride{UserID: userID, Percent: decimal.RequireFromString("3.33")}, nil)

		svc := NewCommissionService(repo, repository_mocks.NewMockTransactionRepository(ctrl), nil)
		result, err := svc.Calculate(context.Background(), userID, dec(100))
		require.NoError(t, err)
		// 100 * 3.33% = 3.33
		assert.True(t, result.CommissionAmount.Equal(decimal.RequireFromString("3.33")))
		assert.True(t, result.NetAmount.Equal(decimal.RequireFromString("96.67")))
	})
}

func TestCommissionService_Overrides(t *testing.T) {
	const userID = int64(9)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockCommissionRepository(ctrl)
	svc := NewCommissionService(repo, repository_mocks.NewMockTransactionRepository(ctrl), nil)

	err := svc.SetOverride(context.Background(), userID, decimal.NewFromInt(101))
	assert.ErrorIs(t, err, apperrors.ErrInvalidPercent)

	err = svc.SetOverride(context.Background(), userID, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, apperrors.ErrInvalidPercent)

	repo.EXPECT().SetOverride(gomock.Any(), userID, decimal.NewFromInt(3)).Return(nil)
	assert.NoError(t, svc.SetOverride(context.Background(), userID, decimal.NewFromInt(3)))

	repo.EXPECT().DeleteOverride(gomock.Any(), userID).Return(nil)
	assert.NoError(t, svc.ClearOverride(context.Background(), userID))
}

func TestCommissionService_Levels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockCommissionRepository(ctrl)
	svc := NewCommissionService(repo, repository_mocks.NewMockTransactionRepository(ctrl), nil)

	max := decimal.NewFromInt(1000)
	tests := []struct {
		name    string
		level   *models.CommissionLevel
		wantErr error
	}{
		{
			name:    "percent out of range",
			level:   &models.CommissionLevel{Name: "bad", Percent: decimal.NewFromInt(150), MinTurnover: decimal.Zero},
			wantErr: apperrors.ErrInvalidPercent,
		},
		{
			name:    "negative min turnover",
			level:   &models.CommissionLevel{Name: "bad", Percent: decimal.NewFromInt(5), MinTurnover: decimal.NewFromInt(-1)},
			wantErr: apperrors.ErrInvalidAmount,
		},
		{
			name:    "max not above min",
			level:   &models.CommissionLevel{Name: "bad", Percent: decimal.NewFromInt(5), MinTurnover: decimal.NewFromInt(1000), MaxTurnover: &max},
			wantErr: apperrors.ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.CreateLevel(context.Background(), tt.level), tt.wantErr)
			assert.ErrorIs(t, svc.UpdateLevel(context.Background(), tt.level), tt.wantErr)
		})
	}

	valid := &models.CommissionLevel{Name: "silver", Percent: decimal.NewFromInt(4), MinTurnover: decimal.Zero, MaxTurnover: &max}
	repo.EXPECT().CreateLevel(gomock.Any(), valid).Return(nil)
	assert.NoError(t, svc.CreateLevel(context.Background(), valid))

	repo.EXPECT().DeleteLevel(gomock.Any(), int64(3)).Return(nil)
	assert.NoError(t, svc.DeleteLevel(context.Background(), 3))
}

func TestCommissionService_UpdateSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockCommissionRepository(ctrl)
	svc := NewCommissionService(repo, repository_mocks.NewMockTransactionRepository(ctrl), nil)

	err := svc.UpdateSettings(context.Background(), &models.PlatformSettings{
		GlobalCommissionPercent: decimal.NewFromInt(200),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPercent)

	err = svc.UpdateSettings(context.Background(), &models.PlatformSettings{
		GlobalCommissionPercent: decimal.NewFromInt(5),
		FastWithdrawFeePercent:  decimal.NewFromInt(2),
		MinWithdrawAmount:       decimal.NewFromInt(-100),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	good := &models.PlatformSettings{
		GlobalCommissionPercent: decimal.NewFromInt(5),
		FastWithdrawFeePercent:  decimal.NewFromInt(2),
		MinWithdrawAmount:       decimal.NewFromInt(100),
		CommissionEnabled:       true,
	}
	repo.EXPECT().UpdateSettings(gomock.Any(), good).Return(nil)
	assert.NoError(t, svc.UpdateSettings(context.Background(), good))
}

func TestCommissionService_GrantSubscription(t *testing.T) {
	const userID = int64(4)

	t.Run("charges the plan price before activating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockCommissionRepository(ctrl)
		ledger := service_mocks.NewMockLedgerService(ctrl)

		price := dec(20000)
		ledger.EXPECT().CreateTransaction(gomock.Any(), userID, models.TypeSubscriptionPayment, price, gomock.Any()).
			DoAndReturn(func(_ context.Context, uid int64, tt models.TransactionType, a decimal.Decimal, opts models.TransactionOptions) (*models.Transaction, error) {
				assert.Equal(t, "sub-key-1", opts.IdempotencyKey)
				assert.Equal(t, "pro", opts.Metadata["plan_name"])
				return pendingTx(uid, tt, a, opts), nil
			})
		ledger.EXPECT().ConfirmTransaction(gomock.Any(), gomock.Any(), userID).Return(nil)
		repo.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sub *models.Subscription) error {
				assert.Equal(t, "pro", sub.PlanName)
				assert.True(t, sub.IsActive)
				assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), sub.ExpiresAt, time.Minute)
				return nil
			})

		svc := NewCommissionService(repo, repository_mocks.NewMockTransactionRepository(ctrl), ledger)
		sub, err := svc.GrantSubscription(context.Background(), userID, "pro", dec(2), price, 30, "sub-key-1")
		require.NoError(t, err)
		assert.Equal(t, userID, sub.UserID)
	})

	t.Run("trial plan skips the charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repository_mocks.NewMockCommissionRepository(ctrl)
		repo.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).Return(nil)

		svc := NewCommissionService(repo, repository_mocks.NewMockTransactionRepository(ctrl), service_mocks.NewMockLedgerService(ctrl))
		_, err := svc.GrantSubscription(context.Background(), userID, "trial", dec(2), decimal.Zero, 14, "")
		require.NoError(t, err)
	})

	t.Run("insufficient funds blocks activation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ledger := service_mocks.NewMockLedgerService(ctrl)
		ledger.EXPECT().CreateTransaction(gomock.Any(), userID, models.TypeSubscriptionPayment, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, uid int64, tt models.TransactionType, a decimal.Decimal, opts models.TransactionOptions) (*models.Transaction, error) {
				return pendingTx(uid, tt, a, opts), nil
			})
		ledger.EXPECT().ConfirmTransaction(gomock.Any(), gomock.Any(), userID).Return(apperrors.ErrInsufficientFunds)

		svc := NewCommissionService(repository_mocks.NewMockCommissionRepository(ctrl), repository_mocks.NewMockTransactionRepository(ctrl), ledger)
		_, err := svc.GrantSubscription(context.Background(), userID, "pro", dec(2), dec(20000), 30, "")
		assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewCommissionService(repository_mocks.NewMockCommissionRepository(ctrl), repository_mocks.NewMockTransactionRepository(ctrl), service_mocks.NewMockLedgerService(ctrl))

		_, err := svc.GrantSubscription(context.Background(), userID, "pro", dec(200), dec(100), 30, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidPercent)

		_, err = svc.GrantSubscription(context.Background(), userID, "pro", dec(2), dec(100), 0, "")
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})
}
