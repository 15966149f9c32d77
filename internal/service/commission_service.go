package service

import (
	"context"
	"errors"
	"time"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/aakhmedov/freightpay/internal/logger"
	"github.com/aakhmedov/freightpay/internal/models"
	"github.com/aakhmedov/freightpay/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const turnoverWindow = 30 * 24 * time.Hour

// defaultGlobalPercent covers the case where even platform_settings cannot
// be read; pricing must never block a payout.
var defaultGlobalPercent = decimal.NewFromInt(5)

type CommissionService interface {
	Calculate(ctx context.Context, userID int64, orderAmount decimal.Decimal) (*models.CommissionResult, error)

	SetOverride(ctx context.Context, userID int64, percent decimal.Decimal) error
	ClearOverride(ctx context.Context, userID int64) error

	GetLevels(ctx context.Context) ([]models.CommissionLevel, error)
	CreateLevel(ctx context.Context, level *models.CommissionLevel) error
	UpdateLevel(ctx context.Context, level *models.CommissionLevel) error
	DeleteLevel(ctx context.Context, id int64) error

	GetSettings(ctx context.Context) (*models.PlatformSettings, error)
	UpdateSettings(ctx context.Context, settings *models.PlatformSettings) error

	GrantSubscription(ctx context.Context, userID int64, planName string, percent, price decimal.Decimal, days int, idempotencyKey string) (*models.Subscription, error)
}

type commissionService struct {
	repo   repository.CommissionRepository
	txRepo repository.TransactionRepository
	ledger LedgerService
}

func NewCommissionService(repo repository.CommissionRepository, txRepo repository.TransactionRepository, ledger LedgerService) CommissionService {
	return &commissionService{repo: repo, txRepo: txRepo, ledger: ledger}
}

// Calculate resolves the commission percent for a payout. Priority:
// custom override > active subscription > turnover level > global default.
// Lookup failures fall through to the next source rather than failing the
// payout; only the math on the resolved percent is returned.
func (s *commissionService) Calculate(ctx context.Context, userID int64, orderAmount decimal.Decimal) (*models.CommissionResult, error) {
	if orderAmount.Sign() <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	settings, err := s.repo.GetSettings(ctx)
	if err != nil {
		logger.Log.Error("failed to load platform settings, using default commission",
			zap.Int64("user_id", userID), zap.Error(err))
		settings = &models.PlatformSettings{
			GlobalCommissionPercent: defaultGlobalPercent,
			CommissionEnabled:       true,
		}
	}

	if !settings.CommissionEnabled {
		return buildResult(orderAmount, decimal.Zero, models.SourceDisabled, "commission_disabled"), nil
	}

	if override, err := s.repo.GetOverride(ctx, userID); err == nil {
		return buildResult(orderAmount, override.Percent, models.SourceCustom, "user_override"), nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Log.Warn("commission override lookup failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	if sub, err := s.repo.GetActiveSubscription(ctx, userID); err == nil {
		return buildResult(orderAmount, sub.Percent, models.SourceSubscription, sub.PlanName), nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		logger.Log.Warn("subscription lookup failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	if level, ok := s.levelForUser(ctx, userID); ok {
		return buildResult(orderAmount, level.Percent, models.SourceLevel, level.Name), nil
	}

	return buildResult(orderAmount, settings.GlobalCommissionPercent, models.SourceGlobal, "global_commission_percent"), nil
}

func (s *commissionService) levelForUser(ctx context.Context, userID int64) (*models.CommissionLevel, bool) {
	turnover, err := s.txRepo.GetUserTurnover(ctx, userID, time.Now().Add(-turnoverWindow))
	if err != nil {
		logger.Log.Warn("turnover lookup failed", zap.Int64("user_id", userID), zap.Error(err))
		return nil, false
	}
	level, err := s.repo.GetLevelForTurnover(ctx, turnover)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Log.Warn("commission level lookup failed", zap.Int64("user_id", userID), zap.Error(err))
		}
		return nil, false
	}
	return level, true
}

func buildResult(orderAmount, percent decimal.Decimal, source models.CommissionSource, rule string) *models.CommissionResult {
	commission := orderAmount.Mul(percent).Div(decimal.NewFromInt(100)).Round(2)
	return &models.CommissionResult{
		Percent:          percent,
		CommissionAmount: commission,
		NetAmount:        orderAmount.Sub(commission),
		Source:           source,
		AppliedRule:      rule,
	}
}

func (s *commissionService) SetOverride(ctx context.Context, userID int64, percent decimal.Decimal) error {
	if !models.ValidPercent(percent) {
		return apperrors.ErrInvalidPercent
	}
	return s.repo.SetOverride(ctx, userID, percent)
}

func (s *commissionService) ClearOverride(ctx context.Context, userID int64) error {
	return s.repo.DeleteOverride(ctx, userID)
}

func (s *commissionService) GetLevels(ctx context.Context) ([]models.CommissionLevel, error) {
	return s.repo.GetLevels(ctx)
}

func (s *commissionService) CreateLevel(ctx context.Context, level *models.CommissionLevel) error {
	if err := validateLevel(level); err != nil {
		return err
	}
	return s.repo.CreateLevel(ctx, level)
}

func (s *commissionService) UpdateLevel(ctx context.Context, level *models.CommissionLevel) error {
	if err := validateLevel(level); err != nil {
		return err
	}
	return s.repo.UpdateLevel(ctx, level)
}

func (s *commissionService) DeleteLevel(ctx context.Context, id int64) error {
	return s.repo.DeleteLevel(ctx, id)
}

func validateLevel(level *models.CommissionLevel) error {
	if !models.ValidPercent(level.Percent) {
		return apperrors.ErrInvalidPercent
	}
	if level.MinTurnover.Sign() < 0 {
		return apperrors.ErrInvalidAmount
	}
	if level.MaxTurnover != nil && level.MaxTurnover.LessThanOrEqual(level.MinTurnover) {
		return apperrors.ErrInvalidAmount
	}
	return nil
}

func (s *commissionService) GetSettings(ctx context.Context) (*models.PlatformSettings, error) {
	return s.repo.GetSettings(ctx)
}

func (s *commissionService) UpdateSettings(ctx context.Context, settings *models.PlatformSettings) error {
	if !models.ValidPercent(settings.GlobalCommissionPercent) || !models.ValidPercent(settings.FastWithdrawFeePercent) {
		return apperrors.ErrInvalidPercent
	}
	if settings.MinWithdrawAmount.Sign() < 0 {
		return apperrors.ErrInvalidAmount
	}
	return s.repo.UpdateSettings(ctx, settings)
}

// GrantSubscription charges the plan price off the user's balance, then
// activates the subscription. A zero price (trial) skips the charge.
func (s *commissionService) GrantSubscription(ctx context.Context, userID int64, planName string, percent, price decimal.Decimal, days int, idempotencyKey string) (*models.Subscription, error) {
	if !models.ValidPercent(percent) {
		return nil, apperrors.ErrInvalidPercent
	}
	if price.Sign() < 0 || days <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	if price.Sign() > 0 {
		opts := models.TransactionOptions{
			Description:    "subscription " + planName,
			Metadata:       map[string]string{"plan_name": planName},
			IdempotencyKey: idempotencyKey,
		}
		tx, err := s.ledger.CreateTransaction(ctx, userID, models.TypeSubscriptionPayment, price, opts)
		if err != nil {
			return nil, err
		}
		if tx.Status != models.StatusConfirmed {
			if err := s.ledger.ConfirmTransaction(ctx, tx.ID, userID); err != nil && !errors.Is(err, apperrors.ErrAlreadyConfirmed) {
				return nil, err
			}
		}
	}

	sub := &models.Subscription{
		ID:        uuid.NewString(),
		UserID:    userID,
		PlanName:  planName,
		Percent:   percent,
		Price:     price,
		ExpiresAt: time.Now().AddDate(0, 0, days),
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}
