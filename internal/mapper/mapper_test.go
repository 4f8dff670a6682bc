package mapper

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
)

const testRetrievalBase = "https://api.test/api/v1/images/gridfs"

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		raw      string
		expected domain.OrderStatus
	}{
		{"Fabric Order Pending", domain.StatusFabricPending},
		{"PENDING approval", domain.StatusFabricPending},
		{"Fabric In Transit", domain.StatusInTransit},
		{"Fabric cutting in progress", domain.StatusInTransit},
		{"Stitching", domain.StatusStitching},
		{"Hardware/Material Installation", domain.StatusInstallation},
		{"fitting scheduled", domain.StatusInstallation},
		{"Completed", domain.StatusCompleted},
		{"handed over to client", domain.StatusCompleted},
		{"all done", domain.StatusCompleted},
		{"", domain.StatusFabricPending},
		{"???", domain.StatusFabricPending},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeStatus(tt.raw))
		})
	}
}

func TestNormalizeStatus_FirstRuleWins(t *testing.T) {
	// "Stitching + Fitting done" matches stitching, fit and done;
	// the stitching rule is checked first.
	assert.Equal(t, domain.StatusStitching, NormalizeStatus("Stitching + Fitting done"))
	// "pending" outranks everything that follows it.
	assert.Equal(t, domain.StatusFabricPending, NormalizeStatus("pending stitching"))
}

func TestNormalizeImageRef(t *testing.T) {
	longBlob := strings.Repeat("iVBORw0KGgo", 6) // 66 chars, no slash

	tests := []struct {
		name     string
		ref      any
		expected string
		ok       bool
	}{
		{"gridfs pseudo-url", "gridfs:66f1a2b3c4d5e6f7a8b9c0d1", testRetrievalBase + "/66f1a2b3c4d5e6f7a8b9c0d1", true},
		{"gridfs prefix case-insensitive", "GridFS:66f1a2b3c4d5e6f7a8b9c0d1", testRetrievalBase + "/66f1a2b3c4d5e6f7a8b9c0d1", true},
		{"data uri passes through", "data:image/png;base64,AAAA", "data:image/png;base64,AAAA", true},
		{"quoted reference", `"gridfs:abc123"`, testRetrievalBase + "/abc123", true},
		{"bare base64 wrapped", longBlob, "data:image/jpeg;base64," + longBlob, true},
		{"object id", "66f1a2b3c4d5e6f7a8b9c0d1", testRetrievalBase + "/66f1a2b3c4d5e6f7a8b9c0d1", true},
		{"empty dropped", "   ", "", false},
		{"short junk dropped", "not-an-image", "", false},
		{"long path dropped", strings.Repeat("a", 30) + "/" + strings.Repeat("b", 30), "", false},
		{"non-string dropped", 42, "", false},
		{"nil dropped", nil, "", false},
		{"uppercase object id", "66F1A2B3C4D5E6F7A8B9C0D1", testRetrievalBase + "/66F1A2B3C4D5E6F7A8B9C0D1", true},
		{"mixed non-hex dropped", "66f1a2b3c4d5e6f7a8b9c0dZ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeImageRef(tt.ref, testRetrievalBase)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeImages_FiltersAndNeverNil(t *testing.T) {
	out := SanitizeImages([]any{"gridfs:abc", "junk", nil, "data:image/png;base64,AA"}, testRetrievalBase)
	require.Len(t, out, 2)

	assert.NotNil(t, SanitizeImages(nil, testRetrievalBase))
	assert.Empty(t, SanitizeImages("not-a-list", testRetrievalBase))
}

func TestNormalizeOrder_LegacyShape(t *testing.T) {
	raw := map[string]any{
		"_id":    "7b4237d4-3a1f-4a2b-9c6d-0e5f1a2b3c4d",
		"status": "fabric in TRANSIT",
		"customer": map[string]any{
			"name":     "Meena",
			"phone":    "9840012345",
			"showroom": "Anna Nagar",
		},
		"due_date": "2026-09-15",
		"entries": []any{
			map[string]any{
				"Window": "Master Bedroom",
				"Stitch": "Pleated",
				"Lining": "B/O Lining",
				"Width":  "54",
				"Height": 84,
				"Images": []any{"gridfs:abc123"},
			},
		},
	}

	o := NormalizeOrder(raw, testRetrievalBase)

	assert.Equal(t, "7b4237d4-3a1f-4a2b-9c6d-0e5f1a2b3c4d", o.ID.String())
	assert.Equal(t, "Meena", o.CustomerName)
	assert.Equal(t, "9840012345", o.Phone)
	assert.Equal(t, "Anna Nagar", o.Showroom)
	assert.Equal(t, domain.StatusInTransit, o.Status)
	require.NotNil(t, o.DueDate)
	assert.Equal(t, "2026-09-15", o.DueDate.Format("2006-01-02"))

	require.Len(t, o.Entries, 1)
	e := o.Entries[0]
	assert.Equal(t, "Master Bedroom", e.Name)
	assert.Equal(t, "B/O Lining", e.LiningType)
	assert.Equal(t, 54.0, e.Width)
	assert.Equal(t, 84.0, e.Height)
	assert.Equal(t, []string{testRetrievalBase + "/abc123"}, []string(e.Images))
}

func TestNormalizeOrder_Defaults(t *testing.T) {
	o := NormalizeOrder(map[string]any{}, testRetrievalBase)

	assert.Equal(t, DefaultCustomerName, o.CustomerName)
	assert.Equal(t, DefaultShowroom, o.Showroom)
	assert.Equal(t, domain.StatusFabricPending, o.Status)
	assert.NotNil(t, o.Entries)
	assert.Empty(t, o.Entries)

	o = NormalizeOrder(map[string]any{
		"windows": []any{map[string]any{"Width": "garbage"}},
	}, testRetrievalBase)
	require.Len(t, o.Entries, 1)
	assert.Equal(t, DefaultWindowName, o.Entries[0].Name)
	assert.Equal(t, DefaultStitchType, o.Entries[0].StitchType)
	assert.Equal(t, DefaultLiningType, o.Entries[0].LiningType)
	assert.Zero(t, o.Entries[0].Width)
}

func TestNormalizeOrder_FlatKeysWinOverNested(t *testing.T) {
	o := NormalizeOrder(map[string]any{
		"name":     "Flat Name",
		"customer": map[string]any{"name": "Nested Name"},
	}, testRetrievalBase)
	assert.Equal(t, "Flat Name", o.CustomerName)
}

func TestToLegacyPayload(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	o := &domain.Order{
		CustomerName: "Meena",
		Phone:        "9840012345",
		Showroom:     "Anna Nagar",
		Status:       domain.StatusStitching,
		DueDate:      &due,
		Tailor:       "Dinesh",
		Entries: []domain.WindowEntry{
			{
				WindowID:   "a1b2c3d4e",
				Name:       "Hall",
				StitchType: "Pleated",
				LiningType: "No Lining",
				Width:      54,
				Height:     84,
				Panels:     3,
				Quantity:   7.54,
				Track:      4.5,
			},
		},
	}

	p := ToLegacyPayload(o)

	assert.Equal(t, "Stitching", p["status"])
	assert.Equal(t, "2026-09-15", p["due_date"])

	customer, ok := p["customer"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Meena", customer["name"])
	assert.Equal(t, "Anna Nagar", customer["showroom"])

	entries, ok := p["entries"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, entries, 1)
	assert.Equal(t, "Hall", entries[0]["Window"])
	assert.Equal(t, "Pleated", entries[0]["Stitch"])
	// Stored quantities ride along untouched.
	assert.Equal(t, 7.54, entries[0]["Quantity"])
	assert.Equal(t, []string{}, entries[0]["Images"])
}

func TestToOrderDTO_Totals(t *testing.T) {
	o := &domain.Order{
		CustomerName: "Meena",
		Entries: []domain.WindowEntry{
			{Quantity: 7.54, SQFT: 0},
			{Quantity: 1.9, SQFT: 20},
		},
	}
	dto := ToOrderDTO(o)
	assert.InDelta(t, 9.44, dto.TotalQuantity, 0.001)
	assert.InDelta(t, 20.0, dto.TotalSQFT, 0.001)
	require.Len(t, dto.Entries, 2)
	assert.NotNil(t, dto.Entries[0].Images)
}
