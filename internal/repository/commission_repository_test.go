package repository

import (
	"context"
	"testing"
	"time"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/aakhmedov/freightpay/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommissionRepo_Overrides(t *testing.T) {
	r := NewCommissionRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	_, err := r.GetOverride(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	require.NoError(t, r.SetOverride(ctx, 1, decimal.NewFromInt(3)))

	got, err := r.GetOverride(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Percent.Equal(decimal.NewFromInt(3)))

	// Upsert replaces the percent.
	require.NoError(t, r.SetOverride(ctx, 1, decimal.NewFromInt(7)))
	got, err = r.GetOverride(ctx, 1)
	require.NoError(t, err)
	assert.True(t, got.Percent.Equal(decimal.NewFromInt(7)))

	require.NoError(t, r.DeleteOverride(ctx, 1))
	_, err = r.GetOverride(ctx, 1)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	assert.ErrorIs(t, r.DeleteOverride(ctx, 1), apperrors.ErrNotFound)
}

func TestCommissionRepo_Subscriptions(t *testing.T) {
	r := NewCommissionRepository(testDB)
	ctx := context.Background()

	newSub := func(userID int64, expiresIn time.Duration, active bool) *models.Subscription {
		return &models.Subscription{
			ID:        uuid.NewString(),
			UserID:    userID,
			PlanName:  "pro",
			Percent:   decimal.NewFromInt(2),
			Price:     decimal.NewFromInt(20000),
			ExpiresAt: time.Now().Add(expiresIn),
			IsActive:  active,
			CreatedAt: time.Now(),
		}
	}

	t.Run("active subscription is found", func(t *testing.T) {
		setupTestData(t, testDB)

		require.NoError(t, r.CreateSubscription(ctx, newSub(1, 30*24*time.Hour, true)))

		sub, err := r.GetActiveSubscription(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "pro", sub.PlanName)
	})

	t.Run("expired subscription does not count", func(t *testing.T) {
		setupTestData(t, testDB)

		require.NoError(t, r.CreateSubscription(ctx, newSub(1, -time.Hour, true)))

		_, err := r.GetActiveSubscription(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("deactivated subscription does not count", func(t *testing.T) {
		setupTestData(t, testDB)

		require.NoError(t, r.CreateSubscription(ctx, newSub(1, 30*24*time.Hour, false)))

		_, err := r.GetActiveSubscription(ctx, 1)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("latest expiry wins", func(t *testing.T) {
		setupTestData(t, testDB)

		short := newSub(1, 24*time.Hour, true)
		long := newSub(1, 60*24*time.Hour, true)
		long.PlanName = "enterprise"
		require.NoError(t, r.CreateSubscription(ctx, short))
		require.NoError(t, r.CreateSubscription(ctx, long))

		sub, err := r.GetActiveSubscription(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "enterprise", sub.PlanName)
	})
}

func TestCommissionRepo_Levels(t *testing.T) {
	r := NewCommissionRepository(testDB)
	ctx := context.Background()

	seedLevels := func(t *testing.T) {
		t.Helper()
		setupTestData(t, testDB)

		million := decimal.NewFromInt(1000000)
		fiveMillion := decimal.NewFromInt(5000000)
		for _, l := range []*models.CommissionLevel{
			{Name: "bronze", MinTurnover: decimal.Zero, MaxTurnover: &million, Percent: decimal.NewFromInt(5), IsActive: true},
			{Name: "silver", MinTurnover: million, MaxTurnover: &fiveMillion, Percent: decimal.NewFromInt(4), IsActive: true},
			{Name: "gold", MinTurnover: fiveMillion, Percent: decimal.NewFromInt(3), IsActive: true},
		} {
			require.NoError(t, r.CreateLevel(ctx, l))
			require.NotZero(t, l.ID)
		}
	}

	t.Run("level lookup by turnover", func(t *testing.T) {
		seedLevels(t)

		tests := []struct {
			name     string
			turnover int64
			want     string
		}{
			{name: "zero turnover", turnover: 0, want: "bronze"},
			{name: "just below boundary", turnover: 999999, want: "bronze"},
			{name: "boundary belongs to the next level", turnover: 1000000, want: "silver"},
			{name: "open-ended top level", turnover: 80000000, want: "gold"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				level, err := r.GetLevelForTurnover(ctx, decimal.NewFromInt(tt.turnover))
				require.NoError(t, err)
				assert.Equal(t, tt.want, level.Name)
			})
		}
	})

	t.Run("inactive levels are skipped", func(t *testing.T) {
		seedLevels(t)

		levels, err := r.GetLevels(ctx)
		require.NoError(t, err)
		require.Len(t, levels, 3)

		gold := levels[2]
		gold.IsActive = false
		require.NoError(t, r.UpdateLevel(ctx, &gold))

		level, err := r.GetLevelForTurnover(ctx, decimal.NewFromInt(80000000))
		require.NoError(t, err)
		assert.Equal(t, "silver", level.Name)
	})

	t.Run("no matching level", func(t *testing.T) {
		setupTestData(t, testDB)

		_, err := r.GetLevelForTurnover(ctx, decimal.NewFromInt(100))
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		seedLevels(t)

		levels, err := r.GetLevels(ctx)
		require.NoError(t, err)
		require.NoError(t, r.DeleteLevel(ctx, levels[0].ID))
		assert.ErrorIs(t, r.DeleteLevel(ctx, levels[0].ID), apperrors.ErrNotFound)
	})

	t.Run("update unknown level", func(t *testing.T) {
		setupTestData(t, testDB)

		err := r.UpdateLevel(ctx, &models.CommissionLevel{ID: 9999, Name: "ghost", Percent: decimal.NewFromInt(1)})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestCommissionRepo_Settings(t *testing.T) {
	r := NewCommissionRepository(testDB)
	ctx := context.Background()

	setupTestData(t, testDB)

	settings, err := r.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.GlobalCommissionPercent.Equal(decimal.NewFromInt(5)))
	assert.True(t, settings.CommissionEnabled)

	settings.GlobalCommissionPercent = decimal.NewFromInt(6)
	settings.CommissionEnabled = false
	settings.MinWithdrawAmount = decimal.NewFromInt(5000)
	require.NoError(t, r.UpdateSettings(ctx, settings))

	got, err := r.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, got.GlobalCommissionPercent.Equal(decimal.NewFromInt(6)))
	assert.False(t, got.CommissionEnabled)
	assert.True(t, got.MinWithdrawAmount.Equal(decimal.NewFromInt(5000)))
}
