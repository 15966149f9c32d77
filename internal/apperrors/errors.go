package apperrors

import "errors"

var (
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidPercent         = errors.New("percent must be between 0 and 100")
	ErrInvalidTransactionType = errors.New("unknown transaction type")
	ErrInvalidMetadata        = errors.New("metadata key not allowed for transaction type")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrAlreadyFrozen          = errors.New("escrow operation already exists for order")
	ErrInvalidState           = errors.New("invalid escrow state for requested transition")
	ErrAlreadyConfirmed       = errors.New("transaction already confirmed")
	ErrNotFound               = errors.New("not found")
	ErrTransientStore         = errors.New("transient store failure")
	ErrBelowMinWithdraw       = errors.New("amount below minimum withdrawal")
)
