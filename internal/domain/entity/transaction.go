package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the closed set of transaction types the ledger understands.
type TransactionType string

const (
	TransactionIn  TransactionType = "IN"  // purchase / receipt
	TransactionOut TransactionType = "OUT" // sale / issue
	TransactionAdj TransactionType = "ADJ" // manual correction
)

// ParseTransactionType normalizes a raw type string. ok is false for anything
// outside the IN/OUT/ADJ set.
func ParseTransactionType(s string) (TransactionType, bool) {
	t := TransactionType(s)
	switch t {
	case TransactionIn, TransactionOut, TransactionAdj:
		return t, true
	}
	return "", false
}

// Delta converts an item quantity into the signed stock change for this type.
// IN and OUT items carry magnitudes; an ADJ item carries the signed delta
// itself, so it passes through unchanged.
func (t TransactionType) Delta(quantity int) int {
	switch t {
	case TransactionOut:
		return -quantity
	default:
		return quantity
	}
}

// ValidItemQuantity reports whether quantity is acceptable for this type:
// strictly positive for IN/OUT (they are magnitudes), non-zero for ADJ.
func (t TransactionType) ValidItemQuantity(quantity int) bool {
	if t == TransactionAdj {
		return quantity != 0
	}
	return quantity > 0
}

// MovementNote is the note recorded on every movement caused by this type.
func (t TransactionType) MovementNote() string {
	return "Transaction " + string(t)
}

// Transaction is the header of a submitted business transaction. Written once
// by the ledger and immutable afterward.
type Transaction struct {
	ID              string
	Type            TransactionType
	TotalAmount     decimal.Decimal // sum of quantity * unit_price over items
	TransactionDate time.Time
	CreatedAt       time.Time

	// ItemCount is populated by list queries only.
	ItemCount int
}

// TransactionItem is one line of a Transaction. Immutable after creation.
type TransactionItem struct {
	ID            string
	TransactionID string
	ProductID     string
	Quantity      int             // magnitude for IN/OUT, signed delta for ADJ
	UnitPrice     decimal.Decimal // non-negative
	CreatedAt     time.Time

	// Joined product fields, populated by detail queries only.
	ProductName string
	ProductSKU  string
}
