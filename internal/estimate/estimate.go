// Package estimate computes fabric quantities for measured windows.
//
// The formulas are the shop's costing rules: panel counts from width
// divisors per stitch style, running quantity from a height factor,
// and square footage or track length depending on whether the style
// is a blinds-type product. All functions are total; unusable input
// degrades to zero rather than erroring, because estimates feed a
// live entry form.
package estimate

import (
	"math"
	"strings"

	"github.com/google/uuid"
)

// Width divisors per panel-based stitch style, in inches of fabric
// consumed per panel.
const (
	pleatedDivisor = 18
	rippleDivisor  = 20
	eyeletDivisor  = 24

	heightAllowance = 14 // inches added for hems and folds
	boltWidthFactor = 39 // inches of usable bolt width
)

// Metrics are the derived quantities for one window.
type Metrics struct {
	Panels   int     `json:"panels"`
	Quantity float64 `json:"quantity"`
	Track    float64 `json:"track"`
	SQFT     float64 `json:"sqft"`
}

// Compute derives fabric metrics from a stitch style and measurements
// in inches. Negative or NaN measurements are treated as zero.
//
// Styles whose name contains "Roman" or "Blinds" are priced by square
// footage and get no track; every other style gets a track length and
// no square footage. The match is case-sensitive because the catalog
// names are fixed strings.
func Compute(stitchType string, width, height float64) Metrics {
	w := sanitize(width)
	h := sanitize(height)

	panels := 1
	switch stitchType {
	case "Pleated":
		panels = roundHalfUp(w / pleatedDivisor)
	case "Ripple":
		panels = roundHalfUp(w / rippleDivisor)
	case "Eyelet":
		panels = roundHalfUp(w / eyeletDivisor)
	}

	heightFactor := (h + heightAllowance) / boltWidthFactor
	m := Metrics{
		Panels:   panels,
		Quantity: round2(float64(panels) * heightFactor),
	}

	if strings.Contains(stitchType, "Roman") || strings.Contains(stitchType, "Blinds") {
		m.SQFT = round2(ceilHalf(w/12) * ceilHalf(h/12))
	} else {
		m.Track = ceilHalf(w / 12)
	}
	return m
}

// sanitize clamps unusable measurements to zero.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// roundHalfUp rounds to the nearest integer with halves going up,
// so 2.5 panels becomes 3, never 2.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// round2 rounds to two decimals, halves up.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// ceilHalf rounds feet up to the next half foot.
func ceilHalf(v float64) float64 {
	return math.Ceil(v*2) / 2
}

// NewWindowID returns a short random identifier for a window entry.
func NewWindowID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
