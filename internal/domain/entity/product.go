package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultReorderLevel applies when a product is created without an explicit
// low-stock threshold.
const DefaultReorderLevel = 10

// Product is a stocked item. Quantity is the live stock counter and is mutated
// only by the ledger: it always equals the accumulation of every StockMovement
// for the product applied in creation order.
type Product struct {
	ID           string
	SKU          string // unique
	Name         string
	CategoryID   *string
	VendorID     *string
	Quantity     int
	ReorderLevel int             // low-stock threshold
	CostPrice    decimal.Decimal // non-negative
	SellingPrice decimal.Decimal // non-negative
	Unit         string          // display label: pcs, kg, box...
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined reference names, populated by read queries only.
	CategoryName string
	VendorName   string
}

// LowStock reports whether the product is at or below its reorder level.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.ReorderLevel
}
