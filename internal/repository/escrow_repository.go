package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/aakhmedov/freightpay/internal/logger"
	"github.com/aakhmedov/freightpay/internal/models"
	"go.uber.org/zap"
)

type EscrowRepository interface {
	CreateEscrow(ctx context.Context, op *models.EscrowOperation) error
	GetByOrderID(ctx context.Context, orderID string) (*models.EscrowOperation, error)
	MarkReleased(ctx context.Context, orderID string, carrierID int64, metadata map[string]string) (*models.EscrowOperation, error)
	MarkRefunded(ctx context.Context, orderID string, metadata map[string]string) (*models.EscrowOperation, error)
}

type escrowRepo struct {
	db *sql.DB
}

func NewEscrowRepository(db *sql.DB) EscrowRepository {
	return &escrowRepo{db: db}
}

const escrowColumns = `id, order_id, client_id, carrier_id, amount, status, metadata, frozen_at, released_at, refunded_at`

func (r *escrowRepo) CreateEscrow(ctx context.Context, op *models.EscrowOperation) error {
	metadata, err := marshalMetadata(op.Metadata)
	if err != nil {
		return err
	}

	query := `INSERT INTO escrow_operations (` + escrowColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.db.ExecContext(ctx, query,
		op.ID, op.OrderID, op.ClientID, op.CarrierID, op.Amount, op.Status,
		metadata, op.FrozenAt, op.ReleasedAt, op.RefundedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrAlreadyFrozen
		}
		logger.Log.Error("failed to insert escrow operation", zap.Error(err))
		return translateErr(err)
	}
	return nil
}

func (r *escrowRepo) GetByOrderID(ctx context.Context, orderID string) (*models.EscrowOperation, error) {
	query := `SELECT ` + escrowColumns + ` FROM escrow_operations WHERE order_id = $1`
	return r.scanEscrow(r.db.QueryRowContext(ctx, query, orderID))
}

// MarkReleased flips frozen -> released. The WHERE status clause is the
// double-release guard: a terminal row matches nothing.
func (r *escrowRepo) MarkReleased(ctx context.Context, orderID string, carrierID int64, metadata map[string]string) (*models.EscrowOperation, error) {
	meta, err := marshalMetadata(metadata)
	if err != nil {
		return nil, err
	}

	query := `UPDATE escrow_operations
			  SET status = $1, carrier_id = $2, metadata = metadata || $3::jsonb, released_at = now()
			  WHERE order_id = $4 AND status = $5
			  RETURNING ` + escrowColumns
	return r.scanTransition(ctx, r.db.QueryRowContext(ctx, query,
		models.EscrowReleased, carrierID, meta, orderID, models.EscrowFrozen), orderID)
}

func (r *escrowRepo) MarkRefunded(ctx context.Context, orderID string, metadata map[string]string) (*models.EscrowOperation, error) {
	meta, err := marshalMetadata(metadata)
	if err != nil {
		return nil, err
	}

	query := `UPDATE escrow_operations
			  SET status = $1, metadata = metadata || $2::jsonb, refunded_at = now()
			  WHERE order_id = $3 AND status = $4
			  RETURNING ` + escrowColumns
	return r.scanTransition(ctx, r.db.QueryRowContext(ctx, query,
		models.EscrowRefunded, meta, orderID, models.EscrowFrozen), orderID)
}

func (r *escrowRepo) scanTransition(ctx context.Context, row rowScanner, orderID string) (*models.EscrowOperation, error) {
	op, err := r.scanEscrow(row)
	if errors.Is(err, apperrors.ErrNotFound) {
		// Either the order has no escrow at all or it is already terminal.
		existing, getErr := r.GetByOrderID(ctx, orderID)
		if getErr != nil {
			return nil, getErr
		}
		if existing.Status.Terminal() {
			return nil, apperrors.ErrInvalidState
		}
		return nil, apperrors.ErrNotFound
	}
	return op, err
}

func (r *escrowRepo) scanEscrow(row rowScanner) (*models.EscrowOperation, error) {
	var (
		op       models.EscrowOperation
		metadata []byte
	)
	err := row.Scan(&op.ID, &op.OrderID, &op.ClientID, &op.CarrierID,
		&op.Amount, &op.Status, &metadata, &op.FrozenAt, &op.ReleasedAt, &op.RefundedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, translateErr(err)
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &op.Metadata); err != nil {
			return nil, err
		}
	}
	return &op, nil
}
