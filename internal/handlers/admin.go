package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/aakhmedov/freightpay/internal/apperrors"
	"github.com/aakhmedov/freightpay/internal/logger"
	"github.com/aakhmedov/freightpay/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.commissionService.GetSettings(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get settings", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.PlatformSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := h.commissionService.UpdateSettings(r.Context(), &settings)
	h.writeAdminResult(w, &settings, err, "failed to update settings")
}

func (h *Handler) GetLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.commissionService.GetLevels(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get commission levels", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, levels)
}

func (h *Handler) CreateLevel(w http.ResponseWriter, r *http.Request) {
	var level models.CommissionLevel
	if err := json.NewDecoder(r.Body).Decode(&level); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := h.commissionService.CreateLevel(r.Context(), &level)
	h.writeAdminResult(w, &level, err, "failed to create commission level")
}

func (h *Handler) UpdateLevel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "levelID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid level id", http.StatusBadRequest)
		return
	}

	var level models.CommissionLevel
	if err := json.NewDecoder(r.Body).Decode(&level); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	level.ID = id

	err = h.commissionService.UpdateLevel(r.Context(), &level)
	h.writeAdminResult(w, &level, err, "failed to update commission level")
}

func (h *Handler) DeleteLevel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "levelID"), 10, 64)
	if err != nil {
		http.Error(w, "invalid level id", http.StatusBadRequest)
		return
	}

	err = h.commissionService.DeleteLevel(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, "commission level not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to delete commission level", zap.Error(err))
	}
}

type overrideRequest struct {
	Percent decimal.Decimal `json:"percent"`
}

func (h *Handler) SetOverride(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	var req overrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	err := h.commissionService.SetOverride(r.Context(), userID, req.Percent)
	h.writeAdminResult(w, map[string]any{"user_id": userID, "percent": req.Percent}, err, "failed to set commission override")
}

func (h *Handler) ClearOverride(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	err := h.commissionService.ClearOverride(r.Context(), userID)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, "commission override not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to clear commission override", zap.Error(err))
	}
}

type grantSubscriptionRequest struct {
	UserID         int64           `json:"user_id"`
	PlanName       string          `json:"plan_name"`
	Percent        decimal.Decimal `json:"percent"`
	Price          decimal.Decimal `json:"price"`
	Days           int             `json:"days"`
	IdempotencyKey string          `json:"idempotency_key"`
}

func (h *Handler) GrantSubscription(w http.ResponseWriter, r *http.Request) {
	var req grantSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.UserID == 0 || req.PlanName == "" {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	sub, err := h.commissionService.GrantSubscription(r.Context(), req.UserID, req.PlanName, req.Percent, req.Price, req.Days, req.IdempotencyKey)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, sub)
	case errors.Is(err, apperrors.ErrInvalidPercent):
		http.Error(w, "invalid percent", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		http.Error(w, "insufficient funds", http.StatusPaymentRequired)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to grant subscription", zap.Error(err))
	}
}

type bonusRequest struct {
	Amount         decimal.Decimal `json:"amount"`
	Reason         string          `json:"reason"`
	IdempotencyKey string          `json:"idempotency_key"`
}

func (h *Handler) GrantBonus(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromPath(w, r)
	if !ok {
		return
	}

	var req bonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	tx, err := h.ledgerService.CreateTransaction(r.Context(), userID, models.TypeBonus, req.Amount, models.TransactionOptions{
		Description:    "admin bonus",
		Metadata:       map[string]string{"reason": req.Reason},
		IdempotencyKey: req.IdempotencyKey,
	})
	if err == nil && tx.Status != models.StatusConfirmed {
		err = h.ledgerService.ConfirmTransaction(r.Context(), tx.ID, userID)
		if errors.Is(err, apperrors.ErrAlreadyConfirmed) {
			err = nil
		}
	}
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, tx)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid amount", http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to grant bonus", zap.Error(err))
	}
}

func (h *Handler) GetPlatformIncome(w http.ResponseWriter, r *http.Request) {
	income, err := h.ledgerService.GetPlatformIncome(r.Context())
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error("failed to get platform income", zap.Error(err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]decimal.Decimal{"income": income})
}

func (h *Handler) writeAdminResult(w http.ResponseWriter, body any, err error, logMsg string) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, body)
	case errors.Is(err, apperrors.ErrInvalidPercent):
		http.Error(w, "invalid percent", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrInvalidAmount):
		http.Error(w, "invalid amount", http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
		logger.Log.Error(logMsg, zap.Error(err))
	}
}
