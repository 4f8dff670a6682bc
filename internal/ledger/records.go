package ledger

import (
	"context"
	"fmt"
	"strings"
)

// The accounts team keeps one header row per order and one line row
// per charge. Section distinguishes stitching charges from fitting
// charges.
const (
	billingHeadersQuery = `
		SELECT order_id, customer_name, tailor, fitter,
		       stitching_total, fitting_total, grand_total,
		       amount_paid, payment_status
		FROM dbo.billing_orders`

	billingLinesQuery = `
		SELECT order_id, section, charge_type, charge_subtype,
		       qty, rate, amount
		FROM dbo.billing_lines
		ORDER BY order_id, line_no`
)

// FetchBillingRecords reads the whole ledger and assembles one raw
// record per order: the header fields plus the stitching and fitting
// breakups from the line rows. The maps use the key names billing
// reconciliation understands; values keep whatever scalar types the
// driver produced.
func (c *Client) FetchBillingRecords(ctx context.Context) ([]map[string]any, error) {
	headers, err := c.queryMaps(ctx, billingHeadersQuery)
	if err != nil {
		return nil, fmt.Errorf("fetching billing headers: %w", err)
	}

	lines, err := c.queryMaps(ctx, billingLinesQuery)
	if err != nil {
		return nil, fmt.Errorf("fetching billing lines: %w", err)
	}

	stitching := make(map[string][]any)
	fitting := make(map[string][]any)
	for _, line := range lines {
		orderID, _ := line["order_id"].(string)
		if orderID == "" {
			continue
		}
		item := map[string]any{
			"type":    line["charge_type"],
			"subtype": line["charge_subtype"],
			"qty":     line["qty"],
			"rate":    line["rate"],
			"amount":  line["amount"],
		}
		if section, _ := line["section"].(string); strings.EqualFold(section, "fitting") {
			fitting[orderID] = append(fitting[orderID], item)
		} else {
			stitching[orderID] = append(stitching[orderID], item)
		}
	}

	records := make([]map[string]any, 0, len(headers))
	for _, h := range headers {
		orderID, _ := h["order_id"].(string)
		record := map[string]any{
			"order_id":          h["order_id"],
			"customer":          h["customer_name"],
			"tailor":            h["tailor"],
			"fitter":            h["fitter"],
			"stitching_total":   h["stitching_total"],
			"fitting_total":     h["fitting_total"],
			"grand_total":       h["grand_total"],
			"amount_paid":       h["amount_paid"],
			"payment_status":    h["payment_status"],
			"stitching_breakup": emptyIfNil(stitching[orderID]),
			"fitting_breakup":   emptyIfNil(fitting[orderID]),
		}
		records = append(records, record)
	}

	return records, nil
}

func emptyIfNil(items []any) []any {
	if items == nil {
		return []any{}
	}
	return items
}
