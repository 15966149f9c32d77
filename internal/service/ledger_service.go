package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/aakhmedov/freightpay/internal/logger"
	"github.com/aakhmedov/freightpay/internal/models"
	"github.com/aakhmedov/freightpay/internal/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type LedgerService interface {
	CreateTransaction(ctx context.Context, userID int64, txType models.TransactionType, amount decimal.Decimal, opts models.TransactionOptions) (*models.Transaction, error)
	ConfirmTransaction(ctx context.Context, txID string, userID int64) error
	Deposit(ctx context.Context, userID int64, amount decimal.Decimal, opts models.TransactionOptions) (*models.Transaction, error)
	Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, fast bool, opts models.TransactionOptions) (*models.Transaction, error)
	GetBalance(ctx context.Context, userID int64) (models.Balance, error)
	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)
	GetUserTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	GetPlatformIncome(ctx context.Context) (decimal.Decimal, error)
}

type ledgerService struct {
	txRepo         repository.TransactionRepository
	commissionRepo repository.CommissionRepository
}

func NewLedgerService(txRepo repository.TransactionRepository, commissionRepo repository.CommissionRepository) LedgerService {
	return &ledgerService{txRepo: txRepo, commissionRepo: commissionRepo}
}

// CreateTransaction validates the request and inserts a pending
// transaction. With an idempotency key set, a repeated call returns the
// originally stored transaction and writes nothing.
func (s *ledgerService) CreateTransaction(ctx context.Context, userID int64, txType models.TransactionType, amount decimal.Decimal, opts models.TransactionOptions) (*models.Transaction, error) {
	if !txType.Valid() {
		return nil, apperrors.ErrInvalidTransactionType
	}
	if amount.Sign() <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}
	for key := range opts.Metadata {
		if !txType.AllowsMetadataKey(key) {
			return nil, fmt.Errorf("%w: %q for type %q", apperrors.ErrInvalidMetadata, key, txType)
		}
	}

	tx := &models.Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Type:        txType,
		Amount:      amount,
		Status:      models.StatusPending,
		Description: opts.Description,
		Metadata:    opts.Metadata,
		CreatedAt:   time.Now(),
	}
	if opts.OrderID != "" {
		tx.OrderID = &opts.OrderID
	}
	if opts.IdempotencyKey != "" {
		tx.IdempotencyKey = &opts.IdempotencyKey
	}

	return s.txRepo.CreateTransaction(ctx, tx)
}

func (s *ledgerService) ConfirmTransaction(ctx context.Context, txID string, userID int64) error {
	return s.txRepo.ConfirmTransaction(ctx, txID, userID)
}

// Deposit is the webhook path: create plus confirm in one call. The
// gateway's external payment id doubles as the idempotency key.
func (s *ledgerService) Deposit(ctx context.Context, userID int64, amount decimal.Decimal, opts models.TransactionOptions) (*models.Transaction, error) {
	return s.createAndConfirm(ctx, userID, models.TypeDeposit, amount, opts)
}

// Withdraw debits the requested amount. Fast withdrawals carry the
// configured fee; the net payout is recorded in metadata for the external
// payout processor.
func (s *ledgerService) Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, fast bool, opts models.TransactionOptions) (*models.Transaction, error) {
	if amount.Sign() <= 0 {
		return nil, apperrors.ErrInvalidAmount
	}

	settings, err := s.commissionRepo.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if amount.LessThan(settings.MinWithdrawAmount) {
		return nil, apperrors.ErrBelowMinWithdraw
	}

	txType := models.TypeWithdraw
	if fast {
		txType = models.TypeFastWithdraw
		fee := amount.Mul(settings.FastWithdrawFeePercent).Div(decimal.NewFromInt(100))
		if opts.Metadata == nil {
			opts.Metadata = map[string]string{}
		}
		opts.Metadata["fee_percent"] = settings.FastWithdrawFeePercent.String()
		opts.Metadata["net_amount"] = amount.Sub(fee).String()
	}

	return s.createAndConfirm(ctx, userID, txType, amount, opts)
}

func (s *ledgerService) createAndConfirm(ctx context.Context, userID int64, txType models.TransactionType, amount decimal.Decimal, opts models.TransactionOptions) (*models.Transaction, error) {
	tx, err := s.CreateTransaction(ctx, userID, txType, amount, opts)
	if err != nil {
		return nil, err
	}
	if tx.Status == models.StatusConfirmed {
		// Idempotent replay of an already settled request.
		return tx, nil
	}

	err = s.txRepo.ConfirmTransaction(ctx, tx.ID, userID)
	if err != nil && !errors.Is(err, apperrors.ErrAlreadyConfirmed) {
		logger.Log.Warn("transaction confirmation failed",
			zap.String("transaction_id", tx.ID),
			zap.Int64("user_id", userID),
			zap.String("type", string(txType)),
			zap.Error(err))
		return nil, err
	}

	return s.txRepo.GetTransaction(ctx, tx.ID)
}

func (s *ledgerService) GetBalance(ctx context.Context, userID int64) (models.Balance, error) {
	return s.txRepo.GetBalance(ctx, userID)
}

func (s *ledgerService) GetTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	return s.txRepo.GetTransaction(ctx, txID)
}

func (s *ledgerService) GetUserTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	return s.txRepo.GetUserTransactions(ctx, userID)
}

func (s *ledgerService) GetPlatformIncome(ctx context.Context) (decimal.Decimal, error) {
	return s.txRepo.GetPlatformIncome(ctx)
}
