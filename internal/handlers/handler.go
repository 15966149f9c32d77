package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aakhmedov/freightpay/internal/logger"
	"github.com/aakhmedov/freightpay/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	ledgerService     service.LedgerService
	escrowService     service.EscrowService
	commissionService service.CommissionService
	webhookSecret     string
}

func NewHandler(ledgerService service.LedgerService, escrowService service.EscrowService, commissionService service.CommissionService, webhookSecret string) *Handler {
	return &Handler{
		ledgerService:     ledgerService,
		escrowService:     escrowService,
		commissionService: commissionService,
		webhookSecret:     webhookSecret,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", zap.Error(err))
	}
}
