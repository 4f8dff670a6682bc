package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/service"
)

type BillingHandler struct {
	billingService *service.BillingService
	logger         *zap.Logger
}

func NewBillingHandler(billingService *service.BillingService, logger *zap.Logger) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		logger:         logger,
	}
}

// @Summary List reconciled bills
// @Tags Billing
// @Produce json
// @Success 200 {object} domain.BillingListResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /billing [get]
func (h *BillingHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.billingService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list bills", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list bills")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// @Summary Force a billing snapshot refresh
// @Tags Billing
// @Produce json
// @Success 200 {object} domain.BillingListResponse
// @Failure 503 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /billing/refresh [post]
func (h *BillingHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.billingService.Refresh(r.Context()); err != nil {
		if errors.Is(err, service.ErrLedgerUnavailable) {
			respondWithError(w, http.StatusServiceUnavailable, "Billing ledger is not configured")
			return
		}
		h.logger.Error("failed to refresh billing snapshot", zap.Error(err))
		respondWithError(w, http.StatusBadGateway, "Failed to reach the billing ledger")
		return
	}

	resp, err := h.billingService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list bills", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list bills")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}
