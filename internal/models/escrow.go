package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EscrowStatus string

const (
	EscrowFrozen   EscrowStatus = "frozen"
	EscrowReleased EscrowStatus = "released"
	EscrowRefunded EscrowStatus = "refunded"
)

func (s EscrowStatus) Terminal() bool {
	return s == EscrowReleased || s == EscrowRefunded
}

// EscrowOperation tracks a single freeze -> release|refund lifecycle for
// one order. At most one operation exists per order.
type EscrowOperation struct {
	ID         string            `json:"id" db:"id"`
	OrderID    string            `json:"order_id" db:"order_id"`
	ClientID   int64             `json:"client_id" db:"client_id"`
	CarrierID  *int64            `json:"carrier_id,omitempty" db:"carrier_id"`
	Amount     decimal.Decimal   `json:"amount" db:"amount"`
	Status     EscrowStatus      `json:"status" db:"status"`
	Metadata   map[string]string `json:"metadata,omitempty" db:"metadata"`
	FrozenAt   time.Time         `json:"frozen_at" db:"frozen_at"`
	ReleasedAt *time.Time        `json:"released_at,omitempty" db:"released_at"`
	RefundedAt *time.Time        `json:"refunded_at,omitempty" db:"refunded_at"`
}
