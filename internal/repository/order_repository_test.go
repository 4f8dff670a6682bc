package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Order{}, &domain.WindowEntry{}, &domain.User{}))
	return db
}

func testOrder(name string, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		CustomerName: name,
		Phone:        "9840012345",
		Showroom:     "Anna Nagar",
		Status:       status,
		Entries: []domain.WindowEntry{
			{WindowID: "w1", Position: 0, Name: "Hall", StitchType: "Pleated", LiningType: "No Lining", Width: 54, Height: 84, Panels: 3, Quantity: 7.54, Track: 4.5},
			{WindowID: "w2", Position: 1, Name: "Bedroom", StitchType: "Eyelet", LiningType: "No Lining", Width: 30, Height: 84, Panels: 1, Quantity: 2.51, Track: 2.5},
		},
	}
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := testOrder("Meena", domain.StatusFabricPending)
	require.NoError(t, repo.Create(ctx, order))
	require.NotEmpty(t, order.ID)

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Meena", got.CustomerName)
	require.Len(t, got.Entries, 2)
	assert.Equal(t, "Hall", got.Entries[0].Name, "entries come back in sheet order")
	assert.Equal(t, "Bedroom", got.Entries[1].Name)
}

func TestOrderRepository_UpdateReplacesEntries(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := testOrder("Meena", domain.StatusFabricPending)
	require.NoError(t, repo.Create(ctx, order))

	order.Status = domain.StatusStitching
	order.Entries = []domain.WindowEntry{
		{WindowID: "w3", Position: 0, Name: "Balcony", StitchType: "Ripple", LiningType: "Normal Lining", Width: 100, Height: 90, Panels: 5, Quantity: 13.33, Track: 8.5},
	}
	require.NoError(t, repo.Update(ctx, order))

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStitching, got.Status)
	require.Len(t, got.Entries, 1, "old entries are replaced, not merged")
	assert.Equal(t, "Balcony", got.Entries[0].Name)

	var orphans int64
	require.NoError(t, db.Model(&domain.WindowEntry{}).Count(&orphans).Error)
	assert.EqualValues(t, 1, orphans)
}

func TestOrderRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	order := testOrder("Meena", domain.StatusFabricPending)
	require.NoError(t, repo.Create(ctx, order))
	require.NoError(t, repo.Delete(ctx, order.ID))

	_, err := repo.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var remaining int64
	require.NoError(t, db.Model(&domain.WindowEntry{}).Count(&remaining).Error)
	assert.Zero(t, remaining, "window entries do not outlive their order")
}

func TestOrderRepository_ListSearch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testOrder("Meena", domain.StatusFabricPending)))
	require.NoError(t, repo.Create(ctx, testOrder("Ravi", domain.StatusCompleted)))

	orders, total, err := repo.List(ctx, 1, 20, "meena", "")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, orders, 1)
	assert.Equal(t, "Meena", orders[0].CustomerName)

	orders, total, err = repo.List(ctx, 1, 20, "", domain.StatusCompleted)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "Ravi", orders[0].CustomerName)

	_, total, err = repo.List(ctx, 1, 20, "", "")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
}

func TestOrderRepository_CountByStatus(t *testing.T) {
	db := setupTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testOrder("A", domain.StatusFabricPending)))
	require.NoError(t, repo.Create(ctx, testOrder("B", domain.StatusFabricPending)))
	require.NoError(t, repo.Create(ctx, testOrder("C", domain.StatusStitching)))

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[domain.StatusFabricPending])
	assert.EqualValues(t, 1, counts[domain.StatusStitching])
	assert.Zero(t, counts[domain.StatusCompleted])
}

func TestUserRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{Username: "admin", PasswordHash: "h1", Role: "admin", IsActive: true}
	require.NoError(t, repo.Upsert(ctx, user))
	firstID := user.ID

	again := &domain.User{Username: "admin", PasswordHash: "h2", Role: "admin", IsActive: true}
	require.NoError(t, repo.Upsert(ctx, again))
	assert.Equal(t, firstID, again.ID, "upsert keeps the original id")

	got, err := repo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, "h2", got.PasswordHash)
}
