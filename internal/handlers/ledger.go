package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/aakhmedov/freightpay/internal/hash"
	"github.com/aakhmedov/freightpay/internal/logger"
	"github.com/aakhmedov/freightpay/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type paymentWebhookRequest struct {
	Provider   string          `json:"provider"`
	ExternalID string          `json:"external_id"`
	UserID     int64           `json:"user_id"`
	Amount     decimal.Decimal `json:"amount"`
}

// PaymentWebhook terminates the gateway callback: a confirmed external
// payment becomes a confirmed deposit. The gateway's payment id is the
// idempotency key, so redelivered callbacks settle exactly once.
func (h *Handler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := hash.VerifyHash(string(body), h.webhookSecret, r.Header.Get("HashSHA256")); err != nil {
		http.Error(w, "invalid signature", http.StatusForbidden)
		return
	}

	var req paymentWebhookRequest
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.Provider == "" || req.ExternalID == "" || req.UserID == 0 {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	tx, err := h.ledgerService.Deposit(r.Context(), req.UserID, req.Amount, models.TransactionOptions{
		Description: "payment via " + req.Provider,
		Metadata: map[string]string{
			"provider":    req.Provider,
			"external_id": req.ExternalID,
		},
		IdempotencyKey: "payment:" + req.Provider + ":" + req.ExternalID,
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, tx)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrTransientStore):
		http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("payment webhook error", zap.Error(err))
	}
}

func (h *Handler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	balance, err := h.ledgerService.GetBalance(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get user balance", zap.Error(err))
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	transactions, err := h.ledgerService.GetUserTransactions(r.Context(), userID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get transactions", zap.Error(err))
		return
	}

	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}

type withdrawRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Fast       bool            `json:"fast"`
	CardNumber string          `json:"card_number"`
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	var req withdrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	metadata := map[string]string{}
	if req.CardNumber != "" {
		metadata["card_number"] = req.CardNumber
	}

	tx, err := h.ledgerService.Withdraw(r.Context(), userID, req.Amount, req.Fast, models.TransactionOptions{
		Metadata:       metadata,
		IdempotencyKey: r.Header.Get("Idempotency-Key"),
	})
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, tx)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrBelowMinWithdraw):
		http.Error(w, "amount below minimum withdrawal", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
	case errors.Is(err, apperrors.ErrTransientStore):
		http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("withdraw error", zap.Error(err))
	}
}

func userIDFromPath(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || userID <= 0 {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}
