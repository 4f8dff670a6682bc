package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/service"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// @Summary Get dashboard KPIs
// @Tags Dashboard
// @Produce json
// @Success 200 {object} domain.KPIsDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /dashboard/kpis [get]
func (h *DashboardHandler) GetKPIs(w http.ResponseWriter, r *http.Request) {
	kpis, err := h.dashboardService.GetKPIs(r.Context())
	if err != nil {
		h.logger.Error("failed to get dashboard KPIs", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get KPIs")
		return
	}

	respondJSON(w, http.StatusOK, kpis)
}
