package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
	"github.com/quiltanddrapes/fabrication-api/internal/repository"
	"github.com/quiltanddrapes/fabrication-api/internal/service"
)

func setupOrderHandler(t *testing.T) (*OrderHandler, *chi.Mux) {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Order{}, &domain.WindowEntry{}, &domain.User{}))

	log := zap.NewNop()
	svc := service.NewOrderService(repository.NewOrderRepository(db), "https://api.test/api/v1/images/gridfs", log)
	h := NewOrderHandler(svc, log)

	r := chi.NewRouter()
	r.Post("/orders", h.Create)
	r.Get("/orders", h.List)
	r.Get("/orders/{id}", h.GetByID)
	r.Put("/orders/{id}", h.Update)
	r.Delete("/orders/{id}", h.Delete)
	r.Post("/estimate", h.Estimate)
	return h, r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func validOrderBody() map[string]any {
	return map[string]any{
		"customer_name": "Meena",
		"phone":         "9840012345",
		"showroom":      "Anna Nagar",
		"status":        "pending",
		"entries": []any{
			map[string]any{
				"window_name": "Hall",
				"stitch_type": "Pleated",
				"width":       54,
				"height":      84,
			},
		},
	}
}

func TestOrderHandler_CreateAndGet(t *testing.T) {
	_, r := setupOrderHandler(t)

	rec := postJSON(t, r, "/orders", validOrderBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.OrderDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Meena", created.CustomerName)
	require.Len(t, created.Entries, 1)
	assert.Equal(t, 3, created.Entries[0].Panels)

	req := httptest.NewRequest(http.MethodGet, "/orders/"+created.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var got domain.OrderDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
}

func TestOrderHandler_GetLegacyFormat(t *testing.T) {
	_, r := setupOrderHandler(t)

	rec := postJSON(t, r, "/orders", validOrderBody())
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.OrderDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodGet, "/orders/"+created.ID+"?format=legacy", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var legacy map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &legacy))
	customer, ok := legacy["customer"].(map[string]any)
	require.True(t, ok, "legacy shape nests the customer")
	assert.Equal(t, "Meena", customer["name"])
}

func TestOrderHandler_CreateValidation(t *testing.T) {
	_, r := setupOrderHandler(t)

	body := validOrderBody()
	body["phone"] = ""
	rec := postJSON(t, r, "/orders", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrorTypeBadRequest, apiErr.Type)
}

func TestOrderHandler_GetInvalidAndMissingID(t *testing.T) {
	_, r := setupOrderHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/orders/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/orders/7b5dfd45-93d0-4b7e-8f3e-1a2b3c4d5e6f", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_DeleteRemovesOrder(t *testing.T) {
	_, r := setupOrderHandler(t)

	rec := postJSON(t, r, "/orders", validOrderBody())
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.OrderDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req := httptest.NewRequest(http.MethodDelete, "/orders/"+created.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/orders/"+created.ID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestOrderHandler_ListWithSearch(t *testing.T) {
	_, r := setupOrderHandler(t)

	require.Equal(t, http.StatusCreated, postJSON(t, r, "/orders", validOrderBody()).Code)

	other := validOrderBody()
	other["customer_name"] = "Ravi"
	require.Equal(t, http.StatusCreated, postJSON(t, r, "/orders", other).Code)

	req := httptest.NewRequest(http.MethodGet, "/orders?search=meena", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list domain.OrderListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.EqualValues(t, 1, list.Total)
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "Meena", list.Orders[0].CustomerName)
}

func TestOrderHandler_Estimate(t *testing.T) {
	_, r := setupOrderHandler(t)

	rec := postJSON(t, r, "/estimate", map[string]any{
		"stitch_type": "Pleated",
		"width":       54,
		"height":      84,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var m struct {
		Panels   int     `json:"panels"`
		Quantity float64 `json:"quantity"`
		Track    float64 `json:"track"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	assert.Equal(t, 3, m.Panels)
	assert.InDelta(t, 7.54, m.Quantity, 1e-9)
	assert.InDelta(t, 4.5, m.Track, 1e-9)
}

func TestOrderHandler_EstimateRequiresStitchType(t *testing.T) {
	_, r := setupOrderHandler(t)

	rec := postJSON(t, r, "/estimate", map[string]any{"width": 54, "height": 84})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, domain.ErrorTypeValidation, apiErr.Type)
}
