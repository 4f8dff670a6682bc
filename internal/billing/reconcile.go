// Package billing reconciles ledger records into internally
// consistent bills. The ledger is maintained by hand in a separate
// system, so declared totals drift from their own line items; the
// rule here is that line item amounts are authoritative and every
// total is re-derived when the declared value cannot be trusted.
package billing

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/quiltanddrapes/fabrication-api/internal/domain"
)

// tolerance is the rounding slack allowed between a declared grand
// total and the sum of its parts before the declared value is
// discarded.
const tolerance = 0.01

// Reconciler turns raw ledger records into consistent bills.
type Reconciler struct {
	logger *zap.Logger
}

// NewReconciler creates a Reconciler.
func NewReconciler(logger *zap.Logger) *Reconciler {
	return &Reconciler{logger: logger}
}

// Reconcile builds a bill from one raw ledger record. It never
// fails: missing fields get defaults, inconsistent totals are
// recomputed from the line items and the discrepancy is logged.
func (r *Reconciler) Reconcile(raw map[string]any) domain.OrderBillingDTO {
	bill := domain.OrderBillingDTO{
		OrderID:      pickString(raw, "N/A", "order_id", "_id", "id"),
		CustomerName: pickString(raw, "Unknown Client", "customer", "customer_name", "name"),
		Tailor:       pickString(raw, "Not Assigned", "tailor"),
		Fitter:       pickString(raw, "Not Assigned", "fitter"),
	}

	bill.StitchingItems = lineItems(raw, "stitching_breakup", "stitchingBreakup")
	bill.FittingItems = lineItems(raw, "fitting_breakup", "fittingBreakup")
	for i := range bill.StitchingItems {
		bill.StitchingItems[i].Unit = stitchingUnit(bill.StitchingItems[i])
	}
	for i := range bill.FittingItems {
		bill.FittingItems[i].Unit = "units"
	}

	stitchingDeclared, stitchingOK := pickNumber(raw, "stitching_total", "stitchingTotal")
	fittingDeclared, fittingOK := pickNumber(raw, "fitting_total", "fittingTotal")
	bill.StitchingTotal = subtotal(stitchingDeclared, stitchingOK, bill.StitchingItems)
	bill.FittingTotal = subtotal(fittingDeclared, fittingOK, bill.FittingItems)

	derived := round2(bill.StitchingTotal + bill.FittingTotal)
	declared, ok := pickNumber(raw, "grand_total", "grandTotal")

	// A record with no breakup rows and no declared subtotals carries
	// no evidence against its own grand total.
	hasParts := stitchingOK || fittingOK ||
		len(bill.StitchingItems) > 0 || len(bill.FittingItems) > 0

	switch {
	case !ok:
		bill.GrandTotal = derived
	case !hasParts:
		bill.GrandTotal = round2(declared)
	case math.Abs(declared-derived) > tolerance:
		r.logger.Warn("ledger grand total disagrees with line items",
			zap.String("order_id", bill.OrderID),
			zap.Float64("declared", declared),
			zap.Float64("derived", derived),
		)
		bill.GrandTotal = derived
	default:
		bill.GrandTotal = round2(declared)
	}

	bill.AmountPaid, _ = pickNumber(raw, "amount_paid", "advance", "paid")
	bill.PaymentStatus = paymentStatus(raw, bill.AmountPaid, bill.GrandTotal)
	return bill
}

// ReconcileAll reconciles a batch of ledger records, preserving order.
func (r *Reconciler) ReconcileAll(rows []map[string]any) []domain.OrderBillingDTO {
	bills := make([]domain.OrderBillingDTO, 0, len(rows))
	for _, row := range rows {
		bills = append(bills, r.Reconcile(row))
	}
	return bills
}

// Summarize aggregates reconciled bills for the ledger header. Each
// bill's grand total is bucketed by payment status; anything not
// fully paid counts as outstanding.
func Summarize(bills []domain.OrderBillingDTO) domain.BillingSummaryDTO {
	s := domain.BillingSummaryDTO{Orders: len(bills)}
	for _, b := range bills {
		s.Revenue += b.GrandTotal
		if b.PaymentStatus == "Paid" {
			s.Paid += b.GrandTotal
		} else {
			s.Pending += b.GrandTotal
		}
	}
	s.Revenue = round2(s.Revenue)
	s.Paid = round2(s.Paid)
	s.Pending = round2(s.Pending)
	return s
}

// subtotal prefers the declared subtotal and falls back to summing
// the breakup amounts when it is missing or non-numeric.
func subtotal(declared float64, ok bool, items []domain.BillingLineItemDTO) float64 {
	if ok {
		return round2(declared)
	}
	var sum float64
	for _, it := range items {
		sum += it.Amount
	}
	return round2(sum)
}

// lineItems extracts a breakup list. A missing or malformed list
// yields an empty slice, never nil.
func lineItems(raw map[string]any, keys ...string) []domain.BillingLineItemDTO {
	items := []domain.BillingLineItemDTO{}
	var list []any
	for _, k := range keys {
		if l, ok := raw[k].([]any); ok {
			list = l
			break
		}
	}
	for _, v := range list {
		row, ok := v.(map[string]any)
		if !ok {
			continue
		}
		item := domain.BillingLineItemDTO{
			Type:    pickString(row, "", "type"),
			Subtype: pickString(row, "", "subtype", "sub_type"),
			Qty:     number(row["qty"]),
			Rate:    number(row["rate"]),
			Amount:  number(row["amount"]),
		}
		// The amount column is authoritative; qty*rate is display
		// detail and may not multiply out.
		items = append(items, item)
	}
	return items
}

// stitchingUnit labels a stitching line item by what it charges for.
func stitchingUnit(item domain.BillingLineItemDTO) string {
	probe := strings.ToLower(item.Type + " " + item.Subtype)
	if strings.Contains(probe, "blind") || strings.Contains(probe, "roman") {
		return "sqft"
	}
	return "panels"
}

// paymentStatus prefers the ledger's own status and derives one from
// the amounts when it is absent. The derived value is a two-state
// enum the billing cards filter on, so a partly paid bill is still
// Pending.
func paymentStatus(raw map[string]any, paid, grand float64) string {
	if s := pickString(raw, "", "payment_status", "paymentStatus"); s != "" {
		return s
	}
	if grand > 0 && paid >= grand {
		return "Paid"
	}
	return "Pending"
}

// number converts a ledger scalar to a float64, defaulting to 0.
func number(v any) float64 {
	f, _ := asNumber(v)
	return f
}

// asNumber reports whether the value is a usable number.
func asNumber(v any) (float64, bool) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// pickNumber returns the first usable number among the keys.
func pickNumber(raw map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if f, numeric := asNumber(v); numeric {
				return f, true
			}
		}
	}
	return 0, false
}

// pickString returns the first non-empty string among the keys, or
// fallback.
func pickString(raw map[string]any, fallback string, keys ...string) string {
	for _, k := range keys {
		if s, ok := raw[k].(string); ok {
			if trimmed := strings.TrimSpace(s); trimmed != "" {
				return trimmed
			}
		}
	}
	return fallback
}

// round2 rounds money to two decimals, halves up.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
