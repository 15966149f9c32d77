package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeDeposit             TransactionType = "deposit"
	TypeWithdraw            TransactionType = "withdraw"
	TypeFreeze              TransactionType = "freeze"
	TypeRelease             TransactionType = "release"
	TypeCommission          TransactionType = "commission"
	TypeSubscriptionPayment TransactionType = "subscription_payment"
	TypePromotion           TransactionType = "promotion"
	TypeFastWithdraw        TransactionType = "fast_withdraw"
	TypeRefund              TransactionType = "refund"
	TypeBonus               TransactionType = "bonus"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusConfirmed TransactionStatus = "confirmed"
	StatusRejected  TransactionStatus = "rejected"
	StatusFailed    TransactionStatus = "failed"
)

type Transaction struct {
	ID             string            `json:"id" db:"id"`
	UserID         int64             `json:"user_id" db:"user_id"`
	Type           TransactionType   `json:"type" db:"type"`
	Amount         decimal.Decimal   `json:"amount" db:"amount"`
	Status         TransactionStatus `json:"status" db:"status"`
	OrderID        *string           `json:"order_id,omitempty" db:"order_id"`
	Description    string            `json:"description,omitempty" db:"description"`
	Metadata       map[string]string `json:"metadata,omitempty" db:"metadata"`
	IdempotencyKey *string           `json:"-" db:"idempotency_key"`
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
	ConfirmedAt    *time.Time        `json:"confirmed_at,omitempty" db:"confirmed_at"`
}

// TransactionOptions carries the optional fields of CreateTransaction.
type TransactionOptions struct {
	OrderID        string
	Description    string
	Metadata       map[string]string
	IdempotencyKey string
}

var validTypes = map[TransactionType]struct{}{
	TypeDeposit: {}, TypeWithdraw: {}, TypeFreeze: {}, TypeRelease: {},
	TypeCommission: {}, TypeSubscriptionPayment: {}, TypePromotion: {},
	TypeFastWithdraw: {}, TypeRefund: {}, TypeBonus: {},
}

func (t TransactionType) Valid() bool {
	_, ok := validTypes[t]
	return ok
}

// allowedMetadataKeys is the per-type allow-list. Metadata with a key
// outside the list for its type is rejected at creation.
var allowedMetadataKeys = map[TransactionType]map[string]struct{}{
	TypeDeposit:             {"provider": {}, "external_id": {}},
	TypeWithdraw:            {"card_number": {}, "requested_by": {}},
	TypeFastWithdraw:        {"card_number": {}, "fee_percent": {}, "net_amount": {}},
	TypeFreeze:              {"deal_id": {}},
	TypeRelease:             {"deal_id": {}, "carrier_id": {}},
	TypeCommission:          {"deal_id": {}, "percent": {}, "source": {}},
	TypeRefund:              {"deal_id": {}, "reason": {}},
	TypeSubscriptionPayment: {"plan_name": {}},
	TypePromotion:           {"listing_id": {}},
	TypeBonus:               {"reason": {}, "granted_by": {}},
}

func (t TransactionType) AllowsMetadataKey(key string) bool {
	keys, ok := allowedMetadataKeys[t]
	if !ok {
		return false
	}
	_, ok = keys[key]
	return ok
}
