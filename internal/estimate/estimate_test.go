package estimate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_PanelStyles(t *testing.T) {
	tests := []struct {
		name       string
		stitchType string
		width      float64
		height     float64
		panels     int
		quantity   float64
		track      float64
	}{
		{"pleated standard window", "Pleated", 54, 84, 3, 7.54, 4.5},
		{"ripple wide window", "Ripple", 100, 90, 5, 13.33, 8.5},
		{"eyelet narrow window", "Eyelet", 30, 84, 1, 2.51, 2.5},
		{"pleated rounds half up", "Pleated", 45, 84, 3, 7.54, 4},
		{"pleated just under half", "Pleated", 44, 84, 2, 5.03, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compute(tt.stitchType, tt.width, tt.height)
			assert.Equal(t, tt.panels, m.Panels)
			assert.InDelta(t, tt.quantity, m.Quantity, 0.001)
			assert.InDelta(t, tt.track, m.Track, 0.001)
			assert.Zero(t, m.SQFT, "panel styles carry no square footage")
		})
	}
}

func TestCompute_SqftStyles(t *testing.T) {
	m := Compute(`Roman Blinds 48"`, 48, 60)
	assert.Equal(t, 1, m.Panels)
	assert.InDelta(t, 20.0, m.SQFT, 0.001)
	assert.Zero(t, m.Track, "blinds styles carry no track")
	assert.InDelta(t, 1.9, m.Quantity, 0.001)

	// Feet round up to the next half foot before multiplying:
	// 50/12 = 4.1666 -> 4.5, 61/12 = 5.0833 -> 5.5.
	m = Compute("Blinds (Regular)", 50, 61)
	assert.InDelta(t, 24.75, m.SQFT, 0.001)

	// Style match is case-sensitive.
	m = Compute("roman shade", 48, 60)
	assert.Zero(t, m.SQFT)
	assert.Greater(t, m.Track, 0.0)
}

func TestCompute_ZeroWidthAsymmetry(t *testing.T) {
	// A panel style with zero width rounds to zero panels, so the
	// whole estimate collapses to zero fabric.
	m := Compute("Pleated", 0, 84)
	assert.Equal(t, 0, m.Panels)
	assert.Zero(t, m.Quantity)

	// Styles without a width divisor always count one panel, so the
	// height factor alone still yields a quantity.
	m = Compute(`Roman Blinds 54"`, 0, 84)
	assert.Equal(t, 1, m.Panels)
	assert.InDelta(t, 2.51, m.Quantity, 0.001)
}

func TestCompute_UnusableInput(t *testing.T) {
	m := Compute("Pleated", -54, -84)
	assert.Equal(t, 0, m.Panels)
	assert.Zero(t, m.Quantity)
	assert.Zero(t, m.Track)

	m = Compute("Pleated", math.NaN(), math.NaN())
	assert.Equal(t, 0, m.Panels)
	assert.Zero(t, m.Quantity)
	assert.False(t, math.IsNaN(m.Quantity))
}

func TestCompute_Idempotent(t *testing.T) {
	first := Compute("Ripple", 73, 91)
	second := Compute("Ripple", 73, 91)
	assert.Equal(t, first, second)
}

func TestSheet_AddAssignsIDAndMetrics(t *testing.T) {
	s := NewSheet()
	e := s.Add(Entry{Name: "Living Room", StitchType: "Pleated", Width: 54, Height: 84})

	require.Len(t, e.WindowID, 9)
	assert.Equal(t, 3, e.Panels)
	assert.InDelta(t, 7.54, e.Quantity, 0.001)
	assert.Equal(t, 1, s.Len())

	other := s.Add(Entry{Name: "Bedroom", StitchType: "Eyelet", Width: 30, Height: 84})
	assert.NotEqual(t, e.WindowID, other.WindowID)
}

func TestSheet_AddKeepsExistingID(t *testing.T) {
	s := NewSheet()
	e := s.Add(Entry{WindowID: "a1b2c3d4e", StitchType: "Pleated", Width: 54, Height: 84})
	assert.Equal(t, "a1b2c3d4e", e.WindowID)
	assert.Equal(t, 3, e.Panels)
}

func TestSheet_UpdateRecomputesBeforeCommit(t *testing.T) {
	s := NewSheet()
	added := s.Add(Entry{Name: "Hall", StitchType: "Pleated", Width: 54, Height: 84})

	updated, err := s.UpdateAt(0, Entry{Name: "Hall", StitchType: `Roman Blinds 48"`, Width: 48, Height: 60})
	require.NoError(t, err)

	assert.Equal(t, added.WindowID, updated.WindowID, "window id survives edits")
	assert.InDelta(t, 20.0, updated.SQFT, 0.001)
	assert.Zero(t, updated.Track, "no stale track from the previous style")
	assert.InDelta(t, 20.0, s.TotalSQFT(), 0.001)
}

func TestSheet_UpdateOutOfRange(t *testing.T) {
	s := NewSheet()
	_, err := s.UpdateAt(0, Entry{StitchType: "Pleated"})
	assert.Error(t, err)
	_, err = s.UpdateAt(-1, Entry{StitchType: "Pleated"})
	assert.Error(t, err)
}

func TestSheet_Totals(t *testing.T) {
	s := NewSheet()
	s.Add(Entry{StitchType: "Pleated", Width: 54, Height: 84})     // 7.54 qty
	s.Add(Entry{StitchType: `Roman Blinds 48"`, Width: 48, Height: 60}) // 20 sqft, 1.9 qty
	s.Add(Entry{StitchType: "Ripple", Width: 100, Height: 90})     // 13.33 qty

	assert.InDelta(t, 22.77, s.TotalQuantity(), 0.001)
	assert.InDelta(t, 20.0, s.TotalSQFT(), 0.001)

	require.NoError(t, s.RemoveAt(1))
	assert.Zero(t, s.TotalSQFT())
	assert.Equal(t, 2, s.Len())
}
