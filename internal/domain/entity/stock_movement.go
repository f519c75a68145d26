package entity

import "time"

// StockMovement is one signed change to a product's quantity, tied to the
// transaction that caused it. Append-only: rows are never mutated after
// creation, so replaying a product's movements in creation order from its
// initial quantity reproduces CurrentStockAfter at every step.
type StockMovement struct {
	ID                string
	ProductID         string
	TransactionID     string
	ChangeQuantity    int // positive increases stock, negative decreases it
	CurrentStockAfter int // product quantity immediately after this movement
	Note              string
	CreatedAt         time.Time

	// Joined product fields, populated by report queries only.
	ProductName string
	ProductSKU  string
}
