// Package mapper translates between the canonical order model and
// the loosely shaped payloads of the legacy fabric-calc backends.
// Inbound maps are normalized with prioritized key fallbacks and
// defensive coercion; outbound payloads reproduce the capitalized
// key convention the old backends expect.
package mapper

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
)

// Defaults applied when upstream payloads omit identifying fields.
const (
	DefaultCustomerName = "Client Name Unavailable"
	DefaultShowroom     = "Main Showroom"
	DefaultWindowName   = "Window"
	DefaultStitchType   = "Pleated"
	DefaultLiningType   = "No Lining"
)

// NormalizeOrder converts a raw order payload into the canonical
// model. Keys are resolved in priority order: flat snake_case, then
// a nested customer object, then legacy capitalized keys. Derived
// entry quantities are NOT computed here; persistence recomputes them
// from the measurements.
//
// retrievalBase is passed through to image normalization.
func NormalizeOrder(raw map[string]any, retrievalBase string) *domain.Order {
	customer := subMap(raw, "customer")
	if customer == nil {
		customer = map[string]any{}
	}

	order := &domain.Order{
		CustomerName: firstChain(DefaultCustomerName,
			firstString(raw, "", "name", "customer_name"),
			firstString(customer, "", "name")),
		Phone: firstChain("",
			firstString(raw, "", "phone", "customer_phone"),
			firstString(customer, "", "phone")),
		Address: firstChain("",
			firstString(raw, "", "address"),
			firstString(customer, "", "address")),
		Showroom: firstChain(DefaultShowroom,
			firstString(raw, "", "showroom"),
			firstString(customer, "", "showroom")),
		Status: NormalizeStatus(firstString(raw, "", "status", "order_status")),
		Tailor: firstString(raw, "", "tailor", "Tailor"),
		Fitter: firstString(raw, "", "fitter", "Fitter"),
	}

	if id, err := uuid.Parse(firstString(raw, "", "order_id", "_id", "id")); err == nil {
		order.ID = id
	}

	if due := firstString(raw, "", "due_date", "dueDate"); due != "" {
		if t, ok := parseDate(due); ok {
			order.DueDate = &t
		}
	}

	entries := anySlice(firstValue(raw, "entries", "windows", "Entries"))
	order.Entries = make([]domain.WindowEntry, 0, len(entries))
	for i, v := range entries {
		rawEntry, ok := v.(map[string]any)
		if !ok {
			continue
		}
		order.Entries = append(order.Entries, normalizeEntry(rawEntry, i, retrievalBase))
	}

	return order
}

// normalizeEntry maps one raw window row. Position records the
// original ordering so the sheet renders in entry order.
func normalizeEntry(raw map[string]any, position int, retrievalBase string) domain.WindowEntry {
	return domain.WindowEntry{
		WindowID:   firstString(raw, "", "window_id", "WindowID"),
		Position:   position,
		Name:       firstString(raw, DefaultWindowName, "Window", "window_name", "name"),
		StitchType: firstString(raw, DefaultStitchType, "Stitch", "stitch_type"),
		LiningType: firstString(raw, DefaultLiningType, "Lining", "lining_type"),
		Width:      toFloat(firstValue(raw, "Width", "width")),
		Height:     toFloat(firstValue(raw, "Height", "height")),
		Panels:     toInt(firstValue(raw, "Panels", "panels")),
		Quantity:   toFloat(firstValue(raw, "Quantity", "quantity")),
		Track:      toFloat(firstValue(raw, "Track", "track")),
		SQFT:       toFloat(firstValue(raw, "SQFT", "sqft")),
		Notes:      firstString(raw, "", "Notes", "notes"),
		Images:     pq.StringArray(SanitizeImages(firstValue(raw, "Images", "images"), retrievalBase)),
	}
}

// ToOrderDTO converts Order to OrderDTO
func ToOrderDTO(o *domain.Order) domain.OrderDTO {
	dto := domain.OrderDTO{
		ID:           o.ID.String(),
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Address:      o.Address,
		Showroom:     o.Showroom,
		Status:       o.Status,
		Tailor:       o.Tailor,
		Fitter:       o.Fitter,
		Entries:      make([]domain.WindowEntryDTO, 0, len(o.Entries)),
		CreatedAt:    o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    o.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if o.DueDate != nil {
		dto.DueDate = o.DueDate.Format("2006-01-02")
	}
	for _, e := range o.Entries {
		dto.Entries = append(dto.Entries, ToWindowEntryDTO(e))
		dto.TotalQuantity += e.Quantity
		dto.TotalSQFT += e.SQFT
	}
	dto.TotalQuantity = round2(dto.TotalQuantity)
	dto.TotalSQFT = round2(dto.TotalSQFT)
	return dto
}

// ToWindowEntryDTO converts WindowEntry to WindowEntryDTO
func ToWindowEntryDTO(e domain.WindowEntry) domain.WindowEntryDTO {
	images := []string(e.Images)
	if images == nil {
		images = []string{}
	}
	return domain.WindowEntryDTO{
		WindowID:   e.WindowID,
		WindowName: e.Name,
		StitchType: e.StitchType,
		LiningType: e.LiningType,
		Width:      e.Width,
		Height:     e.Height,
		Panels:     e.Panels,
		Quantity:   e.Quantity,
		Track:      e.Track,
		SQFT:       e.SQFT,
		Notes:      e.Notes,
		Images:     images,
	}
}

// ToLegacyPayload maps a stored order to the shape the old backends
// persist: nested customer object and capitalized entry keys. The
// stored derived quantities are carried verbatim, never recomputed
// on the way out.
func ToLegacyPayload(o *domain.Order) map[string]any {
	entries := make([]map[string]any, 0, len(o.Entries))
	for _, e := range o.Entries {
		images := []string(e.Images)
		if images == nil {
			images = []string{}
		}
		entries = append(entries, map[string]any{
			"window_id": e.WindowID,
			"Window":    e.Name,
			"Stitch":    e.StitchType,
			"Lining":    e.LiningType,
			"Width":     e.Width,
			"Height":    e.Height,
			"Panels":    e.Panels,
			"Quantity":  e.Quantity,
			"Track":     e.Track,
			"SQFT":      e.SQFT,
			"Notes":     e.Notes,
			"Images":    images,
		})
	}

	payload := map[string]any{
		"order_id": o.ID.String(),
		"status":   string(o.Status),
		"tailor":   o.Tailor,
		"fitter":   o.Fitter,
		"customer": map[string]any{
			"name":     o.CustomerName,
			"phone":    o.Phone,
			"address":  o.Address,
			"showroom": o.Showroom,
		},
		"entries": entries,
	}
	if o.DueDate != nil {
		payload["due_date"] = o.DueDate.Format("2006-01-02")
	}
	return payload
}

// ToUserDTO converts User to UserDTO
func ToUserDTO(u *domain.User) domain.UserDTO {
	return domain.UserDTO{
		ID:          u.ID.String(),
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	}
}

// firstChain returns the first non-empty candidate, or fallback.
func firstChain(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return fallback
}

// parseDate accepts the date shapes upstream systems emit.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// round2 rounds display totals to two decimals.
func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
