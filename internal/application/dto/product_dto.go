package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest is the body for POST /api/products.
// Quantity sets the opening stock; afterwards only the ledger may change it.
type CreateProductRequest struct {
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	CategoryID   *string         `json:"category_id,omitempty"`
	VendorID     *string         `json:"vendor_id,omitempty"`
	Quantity     int             `json:"quantity"`
	ReorderLevel *int            `json:"reorder_level,omitempty"` // defaults to 10
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Unit         string          `json:"unit"`
}

// UpdateProductRequest is the body for PATCH /api/products/:id. Nil fields are
// left unchanged. SKU and quantity are immutable through this path.
type UpdateProductRequest struct {
	Name         *string          `json:"name,omitempty"`
	CategoryID   *string          `json:"category_id,omitempty"`
	VendorID     *string          `json:"vendor_id,omitempty"`
	ReorderLevel *int             `json:"reorder_level,omitempty"`
	CostPrice    *decimal.Decimal `json:"cost_price,omitempty"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	Unit         *string          `json:"unit,omitempty"`
}

// ProductResponse is a product as returned by the API, with reference names
// flattened for the client.
type ProductResponse struct {
	ID           string          `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	CategoryID   *string         `json:"category_id,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	VendorID     *string         `json:"vendor_id,omitempty"`
	VendorName   string          `json:"vendor_name,omitempty"`
	Quantity     int             `json:"quantity"`
	ReorderLevel int             `json:"reorder_level"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	Unit         string          `json:"unit"`
	LowStock     bool            `json:"low_stock"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
