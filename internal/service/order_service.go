package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
	"github.com/quiltanddrapes/fabrication-api/internal/estimate"
	"github.com/quiltanddrapes/fabrication-api/internal/mapper"
	"github.com/quiltanddrapes/fabrication-api/internal/repository"
)

// OrderService owns the order lifecycle. Payloads are accepted in
// either the canonical or legacy shape, normalized, and every derived
// entry quantity is recomputed before anything is persisted, so a
// stored order can never mix stale metrics with new measurements.
type OrderService struct {
	orderRepo     *repository.OrderRepository
	retrievalBase string
	logger        *zap.Logger
}

func NewOrderService(orderRepo *repository.OrderRepository, retrievalBase string, logger *zap.Logger) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		retrievalBase: retrievalBase,
		logger:        logger,
	}
}

// Create normalizes and persists a new order.
func (s *OrderService) Create(ctx context.Context, raw map[string]any) (*domain.OrderDTO, error) {
	order := mapper.NormalizeOrder(raw, s.retrievalBase)
	order.ID = uuid.Nil // ids are never taken from the payload on create

	if err := s.prepare(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("customer", order.CustomerName),
		zap.Int("entries", len(order.Entries)),
	)

	dto := mapper.ToOrderDTO(order)
	return &dto, nil
}

// Update normalizes the payload and replaces the stored order
// wholesale, entries included.
func (s *OrderService) Update(ctx context.Context, id uuid.UUID, raw map[string]any) (*domain.OrderDTO, error) {
	existing, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	order := mapper.NormalizeOrder(raw, s.retrievalBase)
	order.ID = existing.ID
	order.CreatedAt = existing.CreatedAt

	if err := s.prepare(order); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.logger.Info("order updated",
		zap.String("order_id", order.ID.String()),
		zap.String("status", string(order.Status)),
		zap.Int("entries", len(order.Entries)),
	)

	dto := mapper.ToOrderDTO(order)
	return &dto, nil
}

// prepare validates the normalized order and runs its entries through
// a fresh estimation sheet, so every derived field is recomputed from
// the measurements. Whatever quantities the caller sent are discarded.
func (s *OrderService) prepare(order *domain.Order) error {
	if order.Phone == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}
	if order.CustomerName == "" || order.CustomerName == mapper.DefaultCustomerName {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	sheet := estimate.NewSheet()
	for i := range order.Entries {
		e := &order.Entries[i]
		committed := sheet.Add(estimate.Entry{
			WindowID:   e.WindowID,
			Name:       e.Name,
			StitchType: e.StitchType,
			LiningType: e.LiningType,
			Width:      e.Width,
			Height:     e.Height,
		})
		e.WindowID = committed.WindowID
		e.Panels = committed.Panels
		e.Quantity = committed.Quantity
		e.Track = committed.Track
		e.SQFT = committed.SQFT
		e.Position = i
	}
	return nil
}

// Get returns one order in canonical shape.
func (s *OrderService) Get(ctx context.Context, id uuid.UUID) (*domain.OrderDTO, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	dto := mapper.ToOrderDTO(order)
	return &dto, nil
}

// GetLegacy returns one order in the old backend shape.
func (s *OrderService) GetLegacy(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return mapper.ToLegacyPayload(order), nil
}

// List returns a page of orders with optional free-text search and
// status filter.
func (s *OrderService) List(ctx context.Context, page, pageSize int, search string, status domain.OrderStatus) (*domain.OrderListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	orders, total, err := s.orderRepo.List(ctx, page, pageSize, search, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	resp := &domain.OrderListResponse{
		Orders: make([]domain.OrderDTO, 0, len(orders)),
		Total:  total,
	}
	for i := range orders {
		resp.Orders = append(resp.Orders, mapper.ToOrderDTO(&orders[i]))
	}
	return resp, nil
}

// Delete removes an order and its entries.
func (s *OrderService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.orderRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load order: %w", err)
	}

	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Info("order deleted", zap.String("order_id", id.String()))
	return nil
}

// Estimate computes fabric metrics for a single window without
// touching any order.
func (s *OrderService) Estimate(req *domain.EstimateRequest) estimate.Metrics {
	return estimate.Compute(req.StitchType, req.Width, req.Height)
}
