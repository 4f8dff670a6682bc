package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
	"github.com/quiltanddrapes/fabrication-api/internal/repository"
)

const testRetrievalBase = "https://api.test/api/v1/images/gridfs"

func setupServices(t *testing.T) (*OrderService, *DashboardService, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Order{}, &domain.WindowEntry{}, &domain.User{}))

	orderRepo := repository.NewOrderRepository(db)
	log := zap.NewNop()
	return NewOrderService(orderRepo, testRetrievalBase, log), NewDashboardService(orderRepo, log), db
}

func orderPayload(name string, status string) map[string]any {
	return map[string]any{
		"customer_name": name,
		"phone":         "9840012345",
		"showroom":      "Anna Nagar",
		"status":        status,
		"entries": []any{
			map[string]any{
				"window_name": "Hall",
				"stitch_type": "Pleated",
				"width":       54.0,
				"height":      84.0,
				// stale values the client sent, must be recomputed
				"panels":   99.0,
				"quantity": 1.0,
			},
		},
	}
}

func TestOrderService_CreateRecomputesMetrics(t *testing.T) {
	svc, _, _ := setupServices(t)
	ctx := context.Background()

	dto, err := svc.Create(ctx, orderPayload("Meena", "pending fabric"))
	require.NoError(t, err)
	require.Len(t, dto.Entries, 1)

	e := dto.Entries[0]
	assert.Equal(t, 3, e.Panels, "client-sent panels are discarded")
	assert.InDelta(t, 7.54, e.Quantity, 1e-9)
	assert.InDelta(t, 4.5, e.Track, 1e-9)
	assert.NotEmpty(t, e.WindowID)
	assert.Equal(t, domain.StatusFabricPending, dto.Status)
}

func TestOrderService_CreateValidation(t *testing.T) {
	svc, _, _ := setupServices(t)
	ctx := context.Background()

	payload := orderPayload("Meena", "pending")
	payload["phone"] = ""
	_, err := svc.Create(ctx, payload)
	assert.ErrorIs(t, err, ErrInvalidInput)

	payload = orderPayload("", "pending")
	_, err = svc.Create(ctx, payload)
	assert.ErrorIs(t, err, ErrInvalidInput, "default placeholder name does not satisfy the name requirement")
}

func TestOrderService_UpdateReplacesEntries(t *testing.T) {
	svc, _, db := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, orderPayload("Meena", "pending"))
	require.NoError(t, err)

	payload := orderPayload("Meena", "stitching in progress")
	payload["entries"] = []any{
		map[string]any{
			"window_name": "Balcony",
			"stitch_type": "Ripple",
			"width":       100.0,
			"height":      90.0,
		},
	}
	updated, err := svc.Update(ctx, uuid.MustParse(created.ID), payload)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStitching, updated.Status)
	require.Len(t, updated.Entries, 1)
	assert.Equal(t, "Balcony", updated.Entries[0].WindowName)
	assert.Equal(t, 5, updated.Entries[0].Panels)

	var count int64
	require.NoError(t, db.Model(&domain.WindowEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestOrderService_GetNotFound(t *testing.T) {
	svc, _, _ := setupServices(t)

	_, err := svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderService_GetLegacyShape(t *testing.T) {
	svc, _, _ := setupServices(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, orderPayload("Meena", "pending"))
	require.NoError(t, err)

	legacy, err := svc.GetLegacy(ctx, uuid.MustParse(created.ID))
	require.NoError(t, err)

	customer, ok := legacy["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Meena", customer["name"])

	entries, ok := legacy["entries"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "Hall", entries[0]["Window"])
	assert.Equal(t, "Pleated", entries[0]["Stitch"])
}

func TestDashboardService_KPIs(t *testing.T) {
	svc, dash, _ := setupServices(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, orderPayload("A", "pending"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, orderPayload("B", "pending"))
	require.NoError(t, err)
	_, err = svc.Create(ctx, orderPayload("C", "order completed"))
	require.NoError(t, err)

	kpis, err := dash.GetKPIs(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, kpis.Orders)
	assert.EqualValues(t, 2, kpis.FabricPending)
	assert.EqualValues(t, 1, kpis.Completed)
	assert.Zero(t, kpis.Stitching)
}
