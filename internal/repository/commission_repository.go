package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/aakhmedov/freightpay/internal/logger"
	"github.com/aakhmedov/freightpay/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CommissionRepository interface {
	GetOverride(ctx context.Context, userID int64) (*models.CommissionOverride, error)
	SetOverride(ctx context.Context, userID int64, percent decimal.Decimal) error
	DeleteOverride(ctx context.Context, userID int64) error

	GetActiveSubscription(ctx context.Context, userID int64) (*models.Subscription, error)
	CreateSubscription(ctx context.Context, sub *models.Subscription) error

	GetLevels(ctx context.Context) ([]models.CommissionLevel, error)
	GetLevelForTurnover(ctx context.Context, turnover decimal.Decimal) (*models.CommissionLevel, error)
	CreateLevel(ctx context.Context, level *models.CommissionLevel) error
	UpdateLevel(ctx context.Context, level *models.CommissionLevel) error
	DeleteLevel(ctx context.Context, id int64) error

	GetSettings(ctx context.Context) (*models.PlatformSettings, error)
	UpdateSettings(ctx context.Context, settings *models.PlatformSettings) error
}

type commissionRepo struct {
	db *sql.DB
}

func NewCommissionRepository(db *sql.DB) CommissionRepository {
	return &commissionRepo{db: db}
}

func (r *commissionRepo) GetOverride(ctx context.Context, userID int64) (*models.CommissionOverride, error) {
	var o models.CommissionOverride
	err := r.db.QueryRowContext(ctx, `
		SELECT user_id, percent, created_at FROM commission_overrides WHERE user_id = $1
	`, userID).Scan(&o.UserID, &o.Percent, &o.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return &o, nil
}

func (r *commissionRepo) SetOverride(ctx context.Context, userID int64, percent decimal.Decimal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO commission_overrides (user_id, percent) VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET percent = EXCLUDED.percent
	`, userID, percent)
	return translateErr(err)
}

func (r *commissionRepo) DeleteOverride(ctx context.Context, userID int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM commission_overrides WHERE user_id = $1`, userID)
	if err != nil {
		return translateErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *commissionRepo) GetActiveSubscription(ctx context.Context, userID int64) (*models.Subscription, error) {
	var s models.Subscription
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, plan_name, percent, price, expires_at, is_active, created_at
		FROM subscriptions
		WHERE user_id = $1 AND is_active = TRUE AND expires_at > now()
		ORDER BY expires_at DESC
		LIMIT 1
	`, userID).Scan(&s.ID, &s.UserID, &s.PlanName, &s.Percent, &s.Price,
		&s.ExpiresAt, &s.IsActive, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return &s, nil
}

func (r *commissionRepo) CreateSubscription(ctx context.Context, sub *models.Subscription) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO subscriptions (id, user_id, plan_name, percent, price, expires_at, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, sub.ID, sub.UserID, sub.PlanName, sub.Percent, sub.Price,
		sub.ExpiresAt, sub.IsActive, sub.CreatedAt)
	return translateErr(err)
}

func (r *commissionRepo) GetLevels(ctx context.Context) ([]models.CommissionLevel, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, min_turnover, max_turnover, percent, is_active
		FROM commission_levels ORDER BY min_turnover ASC
	`)
	if err != nil {
		logger.Log.Error("failed to query commission levels", zap.Error(err))
		return nil, translateErr(err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var levels []models.CommissionLevel
	for rows.Next() {
		var l models.CommissionLevel
		if err := rows.Scan(&l.ID, &l.Name, &l.MinTurnover, &l.MaxTurnover, &l.Percent, &l.IsActive); err != nil {
			logger.Log.Error("failed to scan commission level", zap.Error(err))
			return nil, err
		}
		levels = append(levels, l)
	}
	return levels, rows.Err()
}

func (r *commissionRepo) GetLevelForTurnover(ctx context.Context, turnover decimal.Decimal) (*models.CommissionLevel, error) {
	var l models.CommissionLevel
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, min_turnover, max_turnover, percent, is_active
		FROM commission_levels
		WHERE is_active = TRUE AND min_turnover <= $1
		  AND (max_turnover IS NULL OR max_turnover > $1)
		ORDER BY min_turnover DESC
		LIMIT 1
	`, turnover).Scan(&l.ID, &l.Name, &l.MinTurnover, &l.MaxTurnover, &l.Percent, &l.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return &l, nil
}

func (r *commissionRepo) CreateLevel(ctx context.Context, level *models.CommissionLevel) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO commission_levels (name, min_turnover, max_turnover, percent, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, level.Name, level.MinTurnover, level.MaxTurnover, level.Percent, level.IsActive).Scan(&level.ID)
	return translateErr(err)
}

func (r *commissionRepo) UpdateLevel(ctx context.Context, level *models.CommissionLevel) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE commission_levels
		SET name = $1, min_turnover = $2, max_turnover = $3, percent = $4, is_active = $5
		WHERE id = $6
	`, level.Name, level.MinTurnover, level.MaxTurnover, level.Percent, level.IsActive, level.ID)
	if err != nil {
		return translateErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *commissionRepo) DeleteLevel(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM commission_levels WHERE id = $1`, id)
	if err != nil {
		return translateErr(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *commissionRepo) GetSettings(ctx context.Context) (*models.PlatformSettings, error) {
	var s models.PlatformSettings
	err := r.db.QueryRowContext(ctx, `
		SELECT global_commission_percent, commission_enabled, trial_days,
		       min_withdraw_amount, fast_withdraw_fee_percent, updated_at
		FROM platform_settings WHERE id = 1
	`).Scan(&s.GlobalCommissionPercent, &s.CommissionEnabled, &s.TrialDays,
		&s.MinWithdrawAmount, &s.FastWithdrawFeePercent, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return &s, nil
}

func (r *commissionRepo) UpdateSettings(ctx context.Context, settings *models.PlatformSettings) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE platform_settings
		SET global_commission_percent = $1, commission_enabled = $2, trial_days = $3,
		    min_withdraw_amount = $4, fast_withdraw_fee_percent = $5, updated_at = now()
		WHERE id = 1
	`, settings.GlobalCommissionPercent, settings.CommissionEnabled, settings.TrialDays,
		settings.MinWithdrawAmount, settings.FastWithdrawFeePercent)
	return translateErr(err)
}
