package retail

import "time"

// Sale is a completed or in-progress point-of-sale transaction.
type Sale struct {
	ID         string         `json:"id"`
	Number     string         `json:"number"`
	Status     string         `json:"status"`
	CustomerID string         `json:"customer_id,omitempty"`
	OutletID   string         `json:"outlet_id"`
	Note       string         `json:"note,omitempty"`
	TotalPrice float64        `json:"total_price"`
	TotalTax   float64        `json:"total_tax"`
	LineItems  []SaleLineItem `json:"line_items,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// SaleLineItem is one product line on a sale.
type SaleLineItem struct {
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	DiscountID string  `json:"discount_id,omitempty"`
	TaxRateID  string  `json:"tax_rate_id,omitempty"`
}

// SaleCreate is the payload for creating a sale.
type SaleCreate struct {
	CustomerID string         `json:"customer_id,omitempty"`
	OutletID   string         `json:"outlet_id"`
	Note       string         `json:"note,omitempty"`
	LineItems  []SaleLineItem `json:"line_items"`
}

// InventoryLevel is the stock position of one product at one outlet.
type InventoryLevel struct {
	ProductID string `json:"product_id"`
	OutletID  string `json:"outlet_id"`
	OnHand    int    `json:"on_hand"`
	Committed int    `json:"committed"`
	Available int    `json:"available"`
}

// InventoryAdjustment is the payload for a manual stock adjustment.
type InventoryAdjustment struct {
	ProductID string `json:"product_id"`
	OutletID  string `json:"outlet_id"`
	Delta     int    `json:"delta"`
	Reason    string `json:"reason,omitempty"`
}

// PurchaseOrder is an order of stock from a supplier.
type PurchaseOrder struct {
	ID         string              `json:"id"`
	Number     string              `json:"number"`
	SupplierID string              `json:"supplier_id"`
	OutletID   string              `json:"outlet_id"`
	Status     string              `json:"status"`
	ExpectedAt *time.Time          `json:"expected_at,omitempty"`
	Items      []PurchaseOrderItem `json:"items,omitempty"`
}

// PurchaseOrderItem is one product line on a purchase order.
type PurchaseOrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Cost      float64 `json:"cost"`
}

// PurchaseOrderCreate is the payload for creating a purchase order.
type PurchaseOrderCreate struct {
	SupplierID string              `json:"supplier_id"`
	OutletID   string              `json:"outlet_id"`
	ExpectedAt *time.Time          `json:"expected_at,omitempty"`
	Items      []PurchaseOrderItem `json:"items"`
}

// Discount is a promotion applicable to sale line items.
type Discount struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     string     `json:"type"` // "percentage" or "fixed"
	Amount   float64    `json:"amount"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

// DiscountCreate is the payload for creating a discount.
type DiscountCreate struct {
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Amount   float64    `json:"amount"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

// TaxRate is a named tax percentage for a region.
type TaxRate struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Rate   float64 `json:"rate"`
	Region string  `json:"region,omitempty"`
}

// listEnvelope is the standard collection payload shape.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

// itemEnvelope is the standard single-resource payload shape.
type itemEnvelope[T any] struct {
	Data T `json:"data"`
}

// ListParams are common pagination and filter parameters. Zero values
// are omitted from the query string entirely.
type ListParams struct {
	Page     int
	PageSize int
	Status   string
	OutletID string
	Since    *time.Time
}

// query converts the params to a query map for the engine, leaving out
// absent values.
func (p *ListParams) query() map[string]any {
	q := map[string]any{}
	if p == nil {
		return q
	}
	if p.Page > 0 {
		q["page"] = p.Page
	}
	if p.PageSize > 0 {
		q["page_size"] = p.PageSize
	}
	if p.Status != "" {
		q["status"] = p.Status
	}
	if p.OutletID != "" {
		q["outlet_id"] = p.OutletID
	}
	if p.Since != nil {
		q["since"] = p.Since.UTC().Format(time.RFC3339)
	}
	return q
}
