package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/aakhmedov/freightpay/internal/logger"
	"github.com/aakhmedov/freightpay/internal/models"
	"github.com/aakhmedov/freightpay/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type EscrowService interface {
	Freeze(ctx context.Context, orderID string, clientID int64, amount decimal.Decimal, idempotencyKey string) (*models.EscrowOperation, error)
	Release(ctx context.Context, orderID string, carrierID int64, amount decimal.Decimal, commissionAmount *decimal.Decimal) (*models.EscrowOperation, error)
	Refund(ctx context.Context, orderID string, reason string) (*models.EscrowOperation, error)
	IsAlreadyReleased(ctx context.Context, orderID string) (bool, error)
	GetFrozenAmount(ctx context.Context, orderID string) (decimal.Decimal, error)
	GetOperation(ctx context.Context, orderID string) (*models.EscrowOperation, error)
}

type escrowService struct {
	repo       repository.EscrowRepository
	ledger     LedgerService
	commission CommissionService
}

func NewEscrowService(repo repository.EscrowRepository, ledger LedgerService, commission CommissionService) EscrowService {
	return &escrowService{repo: repo, ledger: ledger, commission: commission}
}

// Freeze earmarks the client's funds for an order. Nothing is written when
// the client cannot afford the amount or when the order already has an
// escrow operation.
func (s *escrowService) Freeze(ctx context.Context, orderID string, clientID int64, amount decimal.Decimal, idempotencyKey string) (*models.EscrowOperation, error) {
	if amount.Sign() <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	existing, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyFrozen
	}

	// Fail fast with a domain error before any transaction exists.
	balance, err := s.ledger.GetBalance(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if balance.Available().LessThan(amount) {
		return nil, apperrors.ErrInsufficientFunds
	}

	if idempotencyKey == "" {
		idempotencyKey = stepKey(orderID, "freeze")
	}
	tx, err := s.runStep(ctx, clientID, models.TypeFreeze, amount, idempotencyKey, models.TransactionOptions{
		OrderID:     orderID,
		Description: "escrow freeze for order " + orderID,
	})
	if err != nil {
		return nil, err
	}

	op := &models.EscrowOperation{
		ID:       uuid.NewString(),
		OrderID:  orderID,
		ClientID: clientID,
		Amount:   amount,
		Status:   models.EscrowFrozen,
		Metadata: map[string]string{"freeze_tx": tx.ID},
		FrozenAt: time.Now(),
	}
	if err := s.repo.CreateEscrow(ctx, op); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyFrozen) {
			// A concurrent freeze for the same order won the insert; the
			// freeze transaction above deduped on its key, so nothing was
			// double-applied.
			return s.repo.GetByOrderID(ctx, orderID)
		}
		return nil, err
	}

	logger.Log.Info("escrow frozen",
		zap.String("order_id", orderID),
		zap.Int64("client_id", clientID),
		zap.String("amount", amount.String()))
	return op, nil
}

// Release pays the carrier out of the client's frozen funds. Each step has
// a fixed idempotency key derived from the order, so retrying the whole
// call after any mid-sequence failure is safe: settled steps dedupe and
// only the unfinished ones run.
//
// commissionAmount nil means "price via the resolver now": commission is
// computed once, at release time, from the resolver's current state.
func (s *escrowService) Release(ctx context.Context, orderID string, carrierID int64, amount decimal.Decimal, commissionAmount *decimal.Decimal) (*models.EscrowOperation, error) {
	op, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if op.Status != models.EscrowFrozen {
		return nil, apperrors.ErrInvalidState
	}
	if !amount.Equal(op.Amount) {
		return nil, apperrors.ErrInvalidAmount
	}

	var (
		commission decimal.Decimal
		source     = "caller"
		percent    string
	)
	if commissionAmount != nil {
		commission = *commissionAmount
		if commission.Sign() < 0 || commission.GreaterThan(amount) {
			return nil, apperrors.ErrInvalidAmount
		}
	} else {
		result, err := s.commission.Calculate(ctx, carrierID, amount)
		if err != nil {
			return nil, err
		}
		commission = result.CommissionAmount
		source = string(result.Source)
		percent = result.Percent.String()
	}

	// Step 1: unfreeze and debit the client.
	releaseTx, err := s.runStep(ctx, op.ClientID, models.TypeRelease, op.Amount, stepKey(orderID, "release"), models.TransactionOptions{
		OrderID:     orderID,
		Description: "escrow release for order " + orderID,
		Metadata: map[string]string{
			"deal_id":    orderID,
			"carrier_id": strconv.FormatInt(carrierID, 10),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("release step for order %s: %w", orderID, err)
	}

	// Step 2: credit the carrier with the full amount.
	payoutTx, err := s.runStep(ctx, carrierID, models.TypeDeposit, op.Amount, stepKey(orderID, "payout"), models.TransactionOptions{
		OrderID:     orderID,
		Description: "carrier payout for order " + orderID,
	})
	if err != nil {
		return nil, fmt.Errorf("payout step for order %s: %w", orderID, err)
	}

	// Step 3: charge commission off the payout.
	meta := map[string]string{
		"release_tx":        releaseTx.ID,
		"payout_tx":         payoutTx.ID,
		"commission_amount": commission.String(),
	}
	if commission.Sign() > 0 {
		commissionMeta := map[string]string{
			"deal_id": orderID,
			"source":  source,
		}
		if percent != "" {
			commissionMeta["percent"] = percent
		}
		commissionTx, err := s.runStep(ctx, carrierID, models.TypeCommission, commission, stepKey(orderID, "commission"), models.TransactionOptions{
			OrderID:     orderID,
			Description: "platform commission for order " + orderID,
			Metadata:    commissionMeta,
		})
		if err != nil {
			return nil, fmt.Errorf("commission step for order %s: %w", orderID, err)
		}
		meta["commission_tx"] = commissionTx.ID
	}

	released, err := s.repo.MarkReleased(ctx, orderID, carrierID, meta)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("escrow released",
		zap.String("order_id", orderID),
		zap.Int64("carrier_id", carrierID),
		zap.String("amount", op.Amount.String()),
		zap.String("commission", commission.String()),
		zap.String("commission_source", source))
	return released, nil
}

// Refund returns the full frozen amount to the client on cancellation.
func (s *escrowService) Refund(ctx context.Context, orderID string, reason string) (*models.EscrowOperation, error) {
	op, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if op.Status != models.EscrowFrozen {
		return nil, apperrors.ErrInvalidState
	}

	releaseTx, err := s.runStep(ctx, op.ClientID, models.TypeRelease, op.Amount, stepKey(orderID, "refund-release"), models.TransactionOptions{
		OrderID:     orderID,
		Description: "escrow unfreeze on refund for order " + orderID,
		Metadata:    map[string]string{"deal_id": orderID},
	})
	if err != nil {
		return nil, fmt.Errorf("refund release step for order %s: %w", orderID, err)
	}

	refundTx, err := s.runStep(ctx, op.ClientID, models.TypeRefund, op.Amount, stepKey(orderID, "refund-credit"), models.TransactionOptions{
		OrderID:     orderID,
		Description: "escrow refund for order " + orderID,
		Metadata: map[string]string{
			"deal_id": orderID,
			"reason":  reason,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("refund credit step for order %s: %w", orderID, err)
	}

	refunded, err := s.repo.MarkRefunded(ctx, orderID, map[string]string{
		"release_tx": releaseTx.ID,
		"refund_tx":  refundTx.ID,
		"reason":     reason,
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Info("escrow refunded",
		zap.String("order_id", orderID),
		zap.Int64("client_id", op.ClientID),
		zap.String("amount", op.Amount.String()),
		zap.String("reason", reason))
	return refunded, nil
}

func (s *escrowService) IsAlreadyReleased(ctx context.Context, orderID string) (bool, error) {
	op, err := s.repo.GetByOrderID(ctx, orderID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return op.Status == models.EscrowReleased, nil
}

func (s *escrowService) GetFrozenAmount(ctx context.Context, orderID string) (decimal.Decimal, error) {
	op, err := s.repo.GetByOrderID(ctx, orderID)
	if err != nil {
		return decimal.Zero, err
	}
	if op.Status != models.EscrowFrozen {
		return decimal.Zero, nil
	}
	return op.Amount, nil
}

func (s *escrowService) GetOperation(ctx context.Context, orderID string) (*models.EscrowOperation, error) {
	return s.repo.GetByOrderID(ctx, orderID)
}

// runStep creates and confirms one keyed sub-transaction. A replayed step
// finds its already-settled transaction by key and is a no-op. A key that
// resolves to a rejected transaction belongs to a failed earlier attempt,
// so the step runs again under an attempt-suffixed key instead of wedging
// on the dead row. The loop always terminates: each pass either consumes
// one previously rejected key or creates a fresh row and returns.
func (s *escrowService) runStep(ctx context.Context, userID int64, txType models.TransactionType, amount decimal.Decimal, key string, opts models.TransactionOptions) (*models.Transaction, error) {
	for attempt := 1; ; attempt++ {
		opts.IdempotencyKey = key
		if attempt > 1 {
			opts.IdempotencyKey = fmt.Sprintf("%s:r%d", key, attempt)
		}

		tx, err := s.ledger.CreateTransaction(ctx, userID, txType, amount, opts)
		if err != nil {
			return nil, err
		}
		switch tx.Status {
		case models.StatusConfirmed:
			return tx, nil
		case models.StatusRejected, models.StatusFailed:
			continue
		}

		if err := s.ledger.ConfirmTransaction(ctx, tx.ID, userID); err != nil && !errors.Is(err, apperrors.ErrAlreadyConfirmed) {
			return nil, err
		}
		return tx, nil
	}
}

func stepKey(orderID, step string) string {
	return "escrow:" + orderID + ":" + step
}
