package entity

import "time"

// Category groups products for filtering and reporting.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}
