package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestReconciler() *Reconciler {
	return NewReconciler(zap.NewNop())
}

func TestReconcile_InconsistentGrandTotalRederived(t *testing.T) {
	r := newTestReconciler()
	bill := r.Reconcile(map[string]any{
		"order_id": "ORD-1",
		"stitching_breakup": []any{
			map[string]any{"type": "Pleated", "qty": 10.0, "rate": 50.0, "amount": 500.0},
			map[string]any{"type": "Eyelet", "qty": 6.0, "rate": 50.0, "amount": 300.0},
		},
		"fitting_breakup": []any{
			map[string]any{"type": "Track Fitting", "qty": 4.0, "rate": 50.0, "amount": 200.0},
		},
		"grand_total": 999.0,
	})

	assert.InDelta(t, 800.0, bill.StitchingTotal, 0.001)
	assert.InDelta(t, 200.0, bill.FittingTotal, 0.001)
	// 999 disagrees with 800+200 beyond rounding slack, so the line
	// items win.
	assert.InDelta(t, 1000.0, bill.GrandTotal, 0.001)
}

func TestReconcile_DeclaredTotalsPreferred(t *testing.T) {
	r := newTestReconciler()
	bill := r.Reconcile(map[string]any{
		"stitching_breakup": []any{
			map[string]any{"type": "Pleated", "amount": 500.0},
		},
		"stitching_total": 550.0, // declared subtotal wins over the sum
		"fitting_total":   200.0,
		"grand_total":     750.0,
	})

	assert.InDelta(t, 550.0, bill.StitchingTotal, 0.001)
	assert.InDelta(t, 200.0, bill.FittingTotal, 0.001)
	assert.InDelta(t, 750.0, bill.GrandTotal, 0.001)
}

func TestReconcile_GrandTotalOnlyRecord(t *testing.T) {
	// Hand-kept ledger rows often carry nothing but the grand total.
	// With no breakups and no declared subtotals there is nothing to
	// contradict it, so it is served as declared.
	r := newTestReconciler()
	bill := r.Reconcile(map[string]any{
		"order_id":    "ORD-2",
		"grand_total": 1250.0,
	})

	assert.Zero(t, bill.StitchingTotal)
	assert.Zero(t, bill.FittingTotal)
	assert.InDelta(t, 1250.0, bill.GrandTotal, 0.001)
}

func TestReconcile_GrandTotalWithinTolerance(t *testing.T) {
	r := newTestReconciler()
	bill := r.Reconcile(map[string]any{
		"stitching_total": 100.005,
		"fitting_total":   0.0,
		"grand_total":     100.01,
	})
	// Declared 100.01 vs derived 100.01 (rounded) is within slack.
	assert.InDelta(t, 100.01, bill.GrandTotal, 0.001)
}

func TestReconcile_NonNumericDeclaredSubtotal(t *testing.T) {
	r := newTestReconciler()
	bill := r.Reconcile(map[string]any{
		"stitching_breakup": []any{
			map[string]any{"type": "Ripple", "amount": "450"},
		},
		"stitching_total": "not a number",
	})
	assert.InDelta(t, 450.0, bill.StitchingTotal, 0.001)
}

func TestReconcile_DefaultsAndEmptyBreakups(t *testing.T) {
	r := newTestReconciler()
	bill := r.Reconcile(map[string]any{})

	assert.Equal(t, "N/A", bill.OrderID)
	assert.Equal(t, "Unknown Client", bill.CustomerName)
	assert.Equal(t, "Not Assigned", bill.Tailor)
	assert.Equal(t, "Not Assigned", bill.Fitter)
	require.NotNil(t, bill.StitchingItems)
	require.NotNil(t, bill.FittingItems)
	assert.Empty(t, bill.StitchingItems)
	assert.Zero(t, bill.GrandTotal)
	assert.Equal(t, "Pending", bill.PaymentStatus)
}

func TestReconcile_UnitLabels(t *testing.T) {
	r := newTestReconciler()
	bill := r.Reconcile(map[string]any{
		"stitching_breakup": []any{
			map[string]any{"type": "Roman Blinds 48\"", "amount": 100.0},
			map[string]any{"type": "Stitching", "subtype": "blinds regular", "amount": 100.0},
			map[string]any{"type": "Pleated", "amount": 100.0},
		},
		"fitting_breakup": []any{
			map[string]any{"type": "Track Fitting", "amount": 50.0},
		},
	})

	require.Len(t, bill.StitchingItems, 3)
	assert.Equal(t, "sqft", bill.StitchingItems[0].Unit)
	assert.Equal(t, "sqft", bill.StitchingItems[1].Unit)
	assert.Equal(t, "panels", bill.StitchingItems[2].Unit)
	require.Len(t, bill.FittingItems, 1)
	assert.Equal(t, "units", bill.FittingItems[0].Unit)
}

func TestReconcile_PaymentStatus(t *testing.T) {
	r := newTestReconciler()

	bill := r.Reconcile(map[string]any{
		"grand_total": 1000.0, "amount_paid": 1000.0,
	})
	assert.Equal(t, "Paid", bill.PaymentStatus)

	// A part payment is still outstanding; the derived status never
	// leaves the Paid/Pending pair.
	bill = r.Reconcile(map[string]any{
		"grand_total": 1000.0, "amount_paid": 400.0,
	})
	assert.Equal(t, "Pending", bill.PaymentStatus)

	bill = r.Reconcile(map[string]any{
		"grand_total": 1000.0, "payment_status": "Written Off",
	})
	assert.Equal(t, "Written Off", bill.PaymentStatus)
}

func TestSummarize(t *testing.T) {
	r := newTestReconciler()
	bills := r.ReconcileAll([]map[string]any{
		{"grand_total": 1000.0, "amount_paid": 1000.0},
		{"grand_total": 500.0, "amount_paid": 200.0},
	})

	s := Summarize(bills)
	assert.Equal(t, 2, s.Orders)
	assert.InDelta(t, 1500.0, s.Revenue, 0.001)
	// Paid and pending bucket whole grand totals by payment status.
	assert.InDelta(t, 1000.0, s.Paid, 0.001)
	assert.InDelta(t, 500.0, s.Pending, 0.001)
}
