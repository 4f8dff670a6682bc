package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
	"github.com/quiltanddrapes/fabrication-api/internal/repository"
)

type DashboardService struct {
	orderRepo *repository.OrderRepository
	logger    *zap.Logger
}

func NewDashboardService(orderRepo *repository.OrderRepository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		orderRepo: orderRepo,
		logger:    logger,
	}
}

// GetKPIs returns the stage counters the dashboard polls.
func (s *DashboardService) GetKPIs(ctx context.Context) (*domain.KPIsDTO, error) {
	counts, err := s.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	kpis := &domain.KPIsDTO{
		FabricPending: counts[domain.StatusFabricPending],
		InTransit:     counts[domain.StatusInTransit],
		Stitching:     counts[domain.StatusStitching],
		Installation:  counts[domain.StatusInstallation],
		Completed:     counts[domain.StatusCompleted],
	}
	for _, c := range counts {
		kpis.Orders += c
	}
	return kpis, nil
}
