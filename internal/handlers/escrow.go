package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/aakhmedov/freightpay/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type freezeRequest struct {
	OrderID        string          `json:"order_id"`
	ClientID       int64           `json:"client_id"`
	Amount         decimal.Decimal `json:"amount"`
	IdempotencyKey string          `json:"idempotency_key"`
}

func (h *Handler) Freeze(w http.ResponseWriter, r *http.Request) {
	var req freezeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.OrderID == "" || req.ClientID == 0 {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	op, err := h.escrowService.Freeze(r.Context(), req.OrderID, req.ClientID, req.Amount, req.IdempotencyKey)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, op)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
	case errors.Is(err, apperrors.ErrAlreadyFrozen):
		http.Error(w, "order already has an escrow operation", http.StatusConflict)
	case errors.Is(err, apperrors.ErrInvalidState):
		http.Error(w, "freeze transaction is not pending", http.StatusConflict)
	case errors.Is(err, apperrors.ErrTransientStore):
		http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("escrow freeze error", zap.Error(err))
	}
}

type releaseRequest struct {
	OrderID          string           `json:"order_id"`
	CarrierID        int64            `json:"carrier_id"`
	Amount           decimal.Decimal  `json:"amount"`
	CommissionAmount *decimal.Decimal `json:"commission_amount,omitempty"`
}

func (h *Handler) Release(w http.ResponseWriter, r *http.Request) {
	var req releaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.OrderID == "" || req.CarrierID == 0 {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	op, err := h.escrowService.Release(r.Context(), req.OrderID, req.CarrierID, req.Amount, req.CommissionAmount)
	h.writeEscrowTransition(w, op, err, "escrow release error")
}

type refundRequest struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"`
}

func (h *Handler) Refund(w http.ResponseWriter, r *http.Request) {
	var req refundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.OrderID == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	op, err := h.escrowService.Refund(r.Context(), req.OrderID, req.Reason)
	h.writeEscrowTransition(w, op, err, "escrow refund error")
}

func (h *Handler) GetEscrow(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderID")
	if orderID == "" {
		http.Error(w, "invalid order id", http.StatusBadRequest)
		return
	}

	op, err := h.escrowService.GetOperation(r.Context(), orderID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, op)
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, "escrow operation not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("escrow get error", zap.Error(err))
	}
}

func (h *Handler) writeEscrowTransition(w http.ResponseWriter, op any, err error, logMsg string) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, op)
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, "escrow operation not found", http.StatusNotFound)
	case errors.Is(err, apperrors.ErrInvalidState):
		http.Error(w, "escrow operation is not frozen", http.StatusConflict)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
	case errors.Is(err, apperrors.ErrTransientStore):
		http.Error(w, "temporarily unavailable, retry", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error(logMsg, zap.Error(err))
	}
}
