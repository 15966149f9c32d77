package repository

import (
	"errors"
	"fmt"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation  = "23505"
	pgSerialization    = "40001"
	pgDeadlockDetected = "40P01"
	pgConnectionClass  = "08"
	pgAdminShutdown    = "57P01"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// translateErr maps retryable driver failures to ErrTransientStore so
// callers can retry with the same idempotency key.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgSerialization,
			pgErr.Code == pgDeadlockDetected,
			pgErr.Code == pgAdminShutdown,
			len(pgErr.Code) >= 2 && pgErr.Code[:2] == pgConnectionClass:
			return fmt.Errorf("%w: %v", apperrors.ErrTransientStore, err)
		}
	}
	return err
}
