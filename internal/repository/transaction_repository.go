package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/aakhmedov/freightpay/internal/logger"
	"github.com/aakhmedov/freightpay/internal/models"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type TransactionRepository interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	ConfirmTransaction(ctx context.Context, txID string, userID int64) error
	RejectTransaction(ctx context.Context, txID string, userID int64, reason string) error
	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)
	GetTransactionByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error)
	GetUserTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	GetBalance(ctx context.Context, userID int64) (models.Balance, error)
	GetPlatformIncome(ctx context.Context) (decimal.Decimal, error)
	GetUserTurnover(ctx context.Context, userID int64, since time.Time) (decimal.Decimal, error)
}

type transactionRepo struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &transactionRepo{db: db}
}

const transactionColumns = `id, user_id, type, amount, status, order_id, description, metadata, idempotency_key, created_at, confirmed_at`

// CreateTransaction inserts a pending transaction. When an idempotency key
// is set and a transaction with that key already exists, the existing row
// is returned unchanged and no new row is written.
func (r *transactionRepo) CreateTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if tx.IdempotencyKey != nil {
		existing, err := r.GetTransactionByIdempotencyKey(ctx, *tx.IdempotencyKey)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}

	if err := r.ensureAccount(ctx, r.db, tx.UserID); err != nil {
		return nil, translateErr(err)
	}

	metadata, err := marshalMetadata(tx.Metadata)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO transactions (` + transactionColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.db.ExecContext(ctx, query,
		tx.ID, tx.UserID, tx.Type, tx.Amount, tx.Status, tx.OrderID,
		tx.Description, metadata, tx.IdempotencyKey, tx.CreatedAt, tx.ConfirmedAt)
	if err != nil {
		// Lost the race against a concurrent retry with the same key:
		// the winner's row is the answer.
		if isUniqueViolation(err) && tx.IdempotencyKey != nil {
			return r.GetTransactionByIdempotencyKey(ctx, *tx.IdempotencyKey)
		}
		logger.Log.Error("failed to insert transaction", zap.Error(err))
		return nil, translateErr(err)
	}
	return tx, nil
}

// ConfirmTransaction applies the balance delta and flips the transaction to
// confirmed as one database transaction. The account row is locked before
// any validation, so concurrent confirms for the same user serialize here.
func (r *transactionRepo) ConfirmTransaction(ctx context.Context, txID string, userID int64) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return translateErr(err)
	}
	defer func() {
		if err != nil {
			if rbErr := dbTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	if err = r.ensureAccount(ctx, dbTx, userID); err != nil {
		return translateErr(err)
	}

	var balance models.Balance
	err = dbTx.QueryRowContext(ctx, `
		SELECT balance, frozen_balance FROM accounts WHERE user_id = $1 FOR UPDATE
	`, userID).Scan(&balance.Balance, &balance.Frozen)
	if err != nil {
		return translateErr(err)
	}

	var (
		txType   models.TransactionType
		amount   decimal.Decimal
		txStatus models.TransactionStatus
	)
	err = dbTx.QueryRowContext(ctx, `
		SELECT type, amount, status FROM transactions WHERE id = $1 AND user_id = $2 FOR UPDATE
	`, txID, userID).Scan(&txType, &amount, &txStatus)
	if errors.Is(err, sql.ErrNoRows) {
		err = apperrors.ErrNotFound
		return err
	}
	if err != nil {
		return translateErr(err)
	}

	switch txStatus {
	case models.StatusConfirmed:
		err = apperrors.ErrAlreadyConfirmed
		return err
	case models.StatusRejected, models.StatusFailed:
		err = apperrors.ErrInvalidState
		return err
	}

	newBalance, applyErr := balance.Apply(txType, amount)
	if applyErr != nil {
		if errors.Is(applyErr, apperrors.ErrInsufficientFunds) {
			// Record the rejection so the pending row cannot be confirmed
			// later against a different balance.
			if _, execErr := dbTx.ExecContext(ctx, `
				UPDATE transactions SET status = $1 WHERE id = $2
			`, models.StatusRejected, txID); execErr != nil {
				err = translateErr(execErr)
				return err
			}
			if commitErr := dbTx.Commit(); commitErr != nil {
				err = translateErr(commitErr)
				return err
			}
			return apperrors.ErrInsufficientFunds
		}
		err = applyErr
		return err
	}

	_, err = dbTx.ExecContext(ctx, `
		UPDATE accounts SET balance = $1, frozen_balance = $2, updated_at = now() WHERE user_id = $3
	`, newBalance.Balance, newBalance.Frozen, userID)
	if err != nil {
		return translateErr(err)
	}

	_, err = dbTx.ExecContext(ctx, `
		UPDATE transactions SET status = $1, confirmed_at = now() WHERE id = $2
	`, models.StatusConfirmed, txID)
	if err != nil {
		return translateErr(err)
	}

	if err = dbTx.Commit(); err != nil {
		return translateErr(err)
	}
	return nil
}

func (r *transactionRepo) RejectTransaction(ctx context.Context, txID string, userID int64, reason string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE transactions
		SET status = $1, metadata = metadata || jsonb_build_object('reject_reason', $2::text)
		WHERE id = $3 AND user_id = $4 AND status = $5
	`, models.StatusRejected, reason, txID, userID, models.StatusPending)
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

func (r *transactionRepo) GetTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	return r.scanTransaction(r.db.QueryRowContext(ctx, query, txID))
}

func (r *transactionRepo) GetTransactionByIdempotencyKey(ctx context.Context, key string) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE idempotency_key = $1`
	return r.scanTransaction(r.db.QueryRowContext(ctx, query, key))
}

func (r *transactionRepo) GetUserTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions
			  WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.Log.Error("failed to query transactions", zap.Error(err))
		return nil, translateErr(err)
	}
	defer func(rows *sql.Rows) {
		err := rows.Close()
		if err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var transactions []models.Transaction
	for rows.Next() {
		tx, err := scanTransactionRow(rows)
		if err != nil {
			logger.Log.Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

func (r *transactionRepo) GetBalance(ctx context.Context, userID int64) (models.Balance, error) {
	var balance models.Balance
	err := r.db.QueryRowContext(ctx, `
		SELECT balance, frozen_balance FROM accounts WHERE user_id = $1
	`, userID).Scan(&balance.Balance, &balance.Frozen)

	if errors.Is(err, sql.ErrNoRows) {
		return models.Balance{Balance: decimal.Zero, Frozen: decimal.Zero}, nil
	}
	if err != nil {
		logger.Log.Error("failed to get balance", zap.Error(err))
		return models.Balance{}, translateErr(err)
	}
	return balance, nil
}

func (r *transactionRepo) GetPlatformIncome(ctx context.Context) (decimal.Decimal, error) {
	var income decimal.Decimal
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE type = $1 AND status = $2
	`, models.TypeCommission, models.StatusConfirmed).Scan(&income)
	if err != nil {
		return decimal.Zero, translateErr(err)
	}
	return income, nil
}

// GetUserTurnover sums the user's confirmed order-linked deposits and
// releases since the given moment. The commission resolver uses a trailing
// 30-day window.
func (r *transactionRepo) GetUserTurnover(ctx context.Context, userID int64, since time.Time) (decimal.Decimal, error) {
	var turnover decimal.Decimal
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM transactions
		WHERE user_id = $1 AND status = $2 AND order_id IS NOT NULL
		  AND type IN ($3, $4) AND confirmed_at >= $5
	`, userID, models.StatusConfirmed, models.TypeDeposit, models.TypeRelease, since).Scan(&turnover)
	if err != nil {
		return decimal.Zero, translateErr(err)
	}
	return turnover, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *transactionRepo) ensureAccount(ctx context.Context, db execer, userID int64) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO accounts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING
	`, userID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *transactionRepo) scanTransaction(row rowScanner) (*models.Transaction, error) {
	tx, err := scanTransactionRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateErr(err)
	}
	return tx, nil
}

func scanTransactionRow(row rowScanner) (*models.Transaction, error) {
	var (
		tx       models.Transaction
		metadata []byte
	)
	err := row.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Status,
		&tx.OrderID, &tx.Description, &metadata, &tx.IdempotencyKey,
		&tx.CreatedAt, &tx.ConfirmedAt)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &tx.Metadata); err != nil {
			return nil, err
		}
	}
	return &tx, nil
}

func marshalMetadata(m map[string]string) ([]byte, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}
