package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
	"github.com/quiltanddrapes/fabrication-api/internal/mapper"
	"github.com/quiltanddrapes/fabrication-api/internal/service"
)

// OrderHandler serves the order lifecycle endpoints. Order payloads
// are decoded as raw maps because the measurement app and the old
// dashboard send differently shaped bodies; normalization sorts the
// shapes out downstream.
type OrderHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

func NewOrderHandler(orderService *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// @Summary Create an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body object true "Order payload, canonical or legacy shape"
// @Success 201 {object} domain.OrderDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Create(r.Context(), raw)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("failed to create order", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

// @Summary Update an order
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param order body object true "Order payload, canonical or legacy shape"
// @Success 200 {object} domain.OrderDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID: must be a valid UUID")
		return
	}

	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := h.orderService.Update(r.Context(), id, raw)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondWithError(w, http.StatusNotFound, "Order not found")
		case errors.Is(err, service.ErrInvalidInput):
			respondWithError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("failed to update order", zap.Error(err), zap.String("order_id", id.String()))
			respondWithError(w, http.StatusInternalServerError, "Failed to update order")
		}
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// @Summary Get an order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Param format query string false "Response shape" Enums(canonical, legacy)
// @Success 200 {object} domain.OrderDTO
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders/{id} [get]
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID: must be a valid UUID")
		return
	}

	if r.URL.Query().Get("format") == "legacy" {
		legacy, err := h.orderService.GetLegacy(r.Context(), id)
		if err != nil {
			h.respondOrderError(w, err, id)
			return
		}
		respondJSON(w, http.StatusOK, legacy)
		return
	}

	order, err := h.orderService.Get(r.Context(), id)
	if err != nil {
		h.respondOrderError(w, err, id)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// @Summary List orders
// @Tags Orders
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 50, max 100)"
// @Param search query string false "Free-text search on customer, phone and showroom"
// @Param status query string false "Filter by order status"
// @Success 200 {object} domain.OrderListResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	var status domain.OrderStatus
	if s := q.Get("status"); s != "" {
		status = mapper.NormalizeStatus(s)
	}

	resp, err := h.orderService.List(r.Context(), page, pageSize, q.Get("search"), status)
	if err != nil {
		h.logger.Error("failed to list orders", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list orders")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// @Summary Delete an order
// @Tags Orders
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid order ID: must be a valid UUID")
		return
	}

	if err := h.orderService.Delete(r.Context(), id); err != nil {
		h.respondOrderError(w, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// @Summary Estimate fabric for a single window
// @Tags Orders
// @Accept json
// @Produce json
// @Param window body domain.EstimateRequest true "Window measurements"
// @Success 200 {object} estimate.Metrics
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /estimate [post]
func (h *OrderHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req domain.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, h.orderService.Estimate(&req))
}

func (h *OrderHandler) respondOrderError(w http.ResponseWriter, err error, id uuid.UUID) {
	if errors.Is(err, service.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "Order not found")
		return
	}
	h.logger.Error("order request failed", zap.Error(err), zap.String("order_id", id.String()))
	respondWithError(w, http.StatusInternalServerError, "Internal server error")
}
