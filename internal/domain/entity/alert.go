package entity

import "time"

// Alert types.
const (
	AlertTypeLowStock = "LOW_STOCK"
)

// Alert is a notification raised by the ledger as a side effect of a stock
// movement. Resolution is an operator action outside this service.
type Alert struct {
	ID         string
	Type       string
	Message    string
	IsResolved bool
	CreatedAt  time.Time
}
