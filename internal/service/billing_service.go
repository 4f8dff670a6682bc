package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/billing"
	"github.com/quiltanddrapes/fabrication-api/internal/domain"
	"github.com/quiltanddrapes/fabrication-api/internal/ledger"
)

// snapshotMaxAge is how stale a cached ledger snapshot may be before
// a read triggers a refresh.
const snapshotMaxAge = 15 * time.Minute

// BillingService serves reconciled bills from the external ledger.
// Ledger reads are expensive, so results are cached as a snapshot
// refreshed by the background job (and lazily on stale reads).
type BillingService struct {
	client     *ledger.Client
	reconciler *billing.Reconciler
	logger     *zap.Logger

	mu        sync.RWMutex
	bills     []domain.OrderBillingDTO
	fetchedAt time.Time
}

func NewBillingService(client *ledger.Client, reconciler *billing.Reconciler, logger *zap.Logger) *BillingService {
	return &BillingService{
		client:     client,
		reconciler: reconciler,
		logger:     logger,
	}
}

// Refresh fetches the ledger and rebuilds the reconciled snapshot.
func (s *BillingService) Refresh(ctx context.Context) error {
	if !s.client.IsEnabled() {
		return ErrLedgerUnavailable
	}

	records, err := s.client.FetchBillingRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch billing records: %w", err)
	}

	bills := s.reconciler.ReconcileAll(records)

	s.mu.Lock()
	s.bills = bills
	s.fetchedAt = time.Now().UTC()
	s.mu.Unlock()

	s.logger.Info("billing snapshot refreshed", zap.Int("bills", len(bills)))
	return nil
}

// List returns the reconciled bills and summary. A stale or empty
// snapshot is refreshed first; when the ledger is disabled the list
// is empty rather than an error, so the billing page still renders.
func (s *BillingService) List(ctx context.Context) (*domain.BillingListResponse, error) {
	s.mu.RLock()
	stale := s.fetchedAt.IsZero() || time.Since(s.fetchedAt) > snapshotMaxAge
	s.mu.RUnlock()

	if stale && s.client.IsEnabled() {
		if err := s.Refresh(ctx); err != nil {
			s.logger.Warn("billing refresh failed, serving last snapshot", zap.Error(err))
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	bills := make([]domain.OrderBillingDTO, len(s.bills))
	copy(bills, s.bills)

	resp := &domain.BillingListResponse{
		Bills:   bills,
		Summary: billing.Summarize(bills),
	}
	if !s.fetchedAt.IsZero() {
		resp.FetchedAt = s.fetchedAt.Format(time.RFC3339)
	}
	return resp, nil
}
