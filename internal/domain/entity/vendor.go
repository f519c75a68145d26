package entity

import "time"

// Vendor is a product supplier.
type Vendor struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	CreatedAt   time.Time
}
