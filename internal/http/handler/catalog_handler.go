package handler

import (
	"net/http"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// @Summary Get the order form catalogs
// @Tags Catalog
// @Produce json
// @Success 200 {object} domain.CatalogDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /catalog [get]
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.CatalogDTO{
		Showrooms:   domain.Showrooms,
		StitchTypes: domain.StitchTypes,
		LiningTypes: domain.LiningTypes,
		Tailors:     domain.Tailors,
		Fitters:     domain.Fitters,
	})
}
