package models

import (
	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/shopspring/decimal"
)

type Balance struct {
	Balance decimal.Decimal `json:"balance" db:"balance"`
	Frozen  decimal.Decimal `json:"frozen_balance" db:"frozen_balance"`
}

func (b Balance) Available() decimal.Decimal {
	return b.Balance.Sub(b.Frozen)
}

// Apply projects a confirmed transaction onto the balance and returns the
// new state. It is the single place the per-type delta table lives and it
// runs inside the account-row lock of ConfirmTransaction.
//
//	deposit, bonus, refund                                  balance += amount
//	withdraw, commission, subscription_payment,
//	promotion, fast_withdraw                                balance -= amount
//	freeze                                                  frozen  += amount
//	release                                                 balance -= amount, frozen -= amount
//
// Debits and freezes require available >= amount; release requires
// frozen >= amount. Violations return ErrInsufficientFunds and leave the
// balance untouched.
func (b Balance) Apply(txType TransactionType, amount decimal.Decimal) (Balance, error) {
	if amount.Sign() <= 0 {
		return b, apperrors.ErrInvalidAmount
	}

	switch txType {
	case TypeDeposit, TypeBonus, TypeRefund:
		b.Balance = b.Balance.Add(amount)
	case TypeWithdraw, TypeCommission, TypeSubscriptionPayment, TypePromotion, TypeFastWithdraw:
		if b.Available().LessThan(amount) {
			return b, apperrors.ErrInsufficientFunds
		}
		b.Balance = b.Balance.Sub(amount)
	case TypeFreeze:
		if b.Available().LessThan(amount) {
			return b, apperrors.ErrInsufficientFunds
		}
		b.Frozen = b.Frozen.Add(amount)
	case TypeRelease:
		if b.Frozen.LessThan(amount) {
			return b, apperrors.ErrInsufficientFunds
		}
		b.Balance = b.Balance.Sub(amount)
		b.Frozen = b.Frozen.Sub(amount)
	default:
		return b, apperrors.ErrInvalidTransactionType
	}

	return b, nil
}
