package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CommissionSource string

const (
	SourceCustom       CommissionSource = "custom"
	SourceSubscription CommissionSource = "subscription"
	SourceLevel        CommissionSource = "level"
	SourceGlobal       CommissionSource = "global"
	SourceDisabled     CommissionSource = "disabled"
)

type CommissionLevel struct {
	ID          int64            `json:"id" db:"id"`
	Name        string           `json:"name" db:"name"`
	MinTurnover decimal.Decimal  `json:"min_turnover" db:"min_turnover"`
	MaxTurnover *decimal.Decimal `json:"max_turnover,omitempty" db:"max_turnover"`
	Percent     decimal.Decimal  `json:"percent" db:"percent"`
	IsActive    bool             `json:"is_active" db:"is_active"`
}

type CommissionOverride struct {
	UserID    int64           `json:"user_id" db:"user_id"`
	Percent   decimal.Decimal `json:"percent" db:"percent"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

type Subscription struct {
	ID        string          `json:"id" db:"id"`
	UserID    int64           `json:"user_id" db:"user_id"`
	PlanName  string          `json:"plan_name" db:"plan_name"`
	Percent   decimal.Decimal `json:"percent" db:"percent"`
	Price     decimal.Decimal `json:"price" db:"price"`
	ExpiresAt time.Time       `json:"expires_at" db:"expires_at"`
	IsActive  bool            `json:"is_active" db:"is_active"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// CommissionResult is what the resolver returns for one pricing request.
// AppliedRule names the concrete row that matched (level name, plan name).
type CommissionResult struct {
	Percent          decimal.Decimal  `json:"percent"`
	CommissionAmount decimal.Decimal  `json:"commission_amount"`
	NetAmount        decimal.Decimal  `json:"net_amount"`
	Source           CommissionSource `json:"source"`
	AppliedRule      string           `json:"applied_rule,omitempty"`
}

type PlatformSettings struct {
	GlobalCommissionPercent decimal.Decimal `json:"global_commission_percent" db:"global_commission_percent"`
	CommissionEnabled       bool            `json:"commission_enabled" db:"commission_enabled"`
	TrialDays               int             `json:"trial_days" db:"trial_days"`
	MinWithdrawAmount       decimal.Decimal `json:"min_withdraw_amount" db:"min_withdraw_amount"`
	FastWithdrawFeePercent  decimal.Decimal `json:"fast_withdraw_fee_percent" db:"fast_withdraw_fee_percent"`
	UpdatedAt               time.Time       `json:"updated_at" db:"updated_at"`
}

func ValidPercent(p decimal.Decimal) bool {
	return p.Sign() >= 0 && !p.GreaterThan(decimal.NewFromInt(100))
}
