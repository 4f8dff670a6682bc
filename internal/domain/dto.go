package domain

// DTOs exposed on the API. Field names match what the dashboard
// frontend reads, which is why they are snake_case throughout.

// WindowEntryDTO is one measured window in API responses.
type WindowEntryDTO struct {
	WindowID   string   `json:"window_id"`
	WindowName string   `json:"window_name"`
	StitchType string   `json:"stitch_type"`
	LiningType string   `json:"lining_type"`
	Width      float64  `json:"width"`
	Height     float64  `json:"height"`
	Panels     int      `json:"panels"`
	Quantity   float64  `json:"quantity"`
	Track      float64  `json:"track"`
	SQFT       float64  `json:"sqft"`
	Notes      string   `json:"notes,omitempty"`
	Images     []string `json:"images"`
}

// OrderDTO is the canonical order shape.
type OrderDTO struct {
	ID            string           `json:"order_id"`
	CustomerName  string           `json:"customer_name"`
	Phone         string           `json:"phone"`
	Address       string           `json:"address,omitempty"`
	Showroom      string           `json:"showroom"`
	Status        OrderStatus      `json:"status"`
	DueDate       string           `json:"due_date,omitempty"` // ISO 8601 date
	Tailor        string           `json:"tailor,omitempty"`
	Fitter        string           `json:"fitter,omitempty"`
	Entries       []WindowEntryDTO `json:"entries"`
	TotalQuantity float64          `json:"total_quantity"`
	TotalSQFT     float64          `json:"total_sqft"`
	CreatedAt     string           `json:"created_at"`
	UpdatedAt     string           `json:"updated_at"`
}

// OrderListResponse wraps a page of orders.
type OrderListResponse struct {
	Orders []OrderDTO `json:"orders"`
	Total  int64      `json:"total"`
}

// KPIsDTO holds the dashboard stage counters.
type KPIsDTO struct {
	Orders        int64 `json:"orders"`
	FabricPending int64 `json:"fabric_pending"`
	InTransit     int64 `json:"in_transit"`
	Stitching     int64 `json:"stitching"`
	Installation  int64 `json:"installation"`
	Completed     int64 `json:"completed"`
}

// EstimateRequest asks for fabric metrics for a single window.
type EstimateRequest struct {
	StitchType string  `json:"stitch_type" validate:"required"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

// BillingLineItemDTO is one charge row on a reconciled bill.
type BillingLineItemDTO struct {
	Type    string  `json:"type"`
	Subtype string  `json:"subtype,omitempty"`
	Qty     float64 `json:"qty"`
	Unit    string  `json:"unit"`
	Rate    float64 `json:"rate"`
	Amount  float64 `json:"amount"`
}

// OrderBillingDTO is a reconciled bill for one order. Totals are
// guaranteed internally consistent regardless of the ledger source.
type OrderBillingDTO struct {
	OrderID        string               `json:"order_id"`
	CustomerName   string               `json:"customer_name"`
	Tailor         string               `json:"tailor"`
	Fitter         string               `json:"fitter"`
	StitchingItems []BillingLineItemDTO `json:"stitching_breakup"`
	FittingItems   []BillingLineItemDTO `json:"fitting_breakup"`
	StitchingTotal float64              `json:"stitching_total"`
	FittingTotal   float64              `json:"fitting_total"`
	GrandTotal     float64              `json:"grand_total"`
	AmountPaid     float64              `json:"amount_paid"`
	PaymentStatus  string               `json:"payment_status"`
}

// BillingSummaryDTO aggregates the ledger for the billing header cards.
type BillingSummaryDTO struct {
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
}

// BillingListResponse is the billing page payload.
type BillingListResponse struct {
	Bills     []OrderBillingDTO `json:"bills"`
	Summary   BillingSummaryDTO `json:"summary"`
	FetchedAt string            `json:"fetched_at"`
}

// LoginRequest is the credentials payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token and user profile.
type LoginResponse struct {
	Token     string  `json:"token"`
	ExpiresAt string  `json:"expires_at"`
	User      UserDTO `json:"user"`
}

// UserDTO is a login account without credentials.
type UserDTO struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role"`
}

// UploadResponse is returned after an image upload.
type UploadResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}
