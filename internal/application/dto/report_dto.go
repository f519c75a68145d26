package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovementResponse is one row of the movement report or a product's
// movement history.
type StockMovementResponse struct {
	ID                string    `json:"id"`
	ProductID         string    `json:"product_id"`
	ProductName       string    `json:"product_name,omitempty"`
	ProductSKU        string    `json:"product_sku,omitempty"`
	TransactionID     string    `json:"transaction_id"`
	ChangeQuantity    int       `json:"change_quantity"`
	CurrentStockAfter int       `json:"current_stock_after"`
	Note              string    `json:"note"`
	CreatedAt         time.Time `json:"created_at"`
}

// AlertResponse is one row of the agent report.
type AlertResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Message    string    `json:"message"`
	IsResolved bool      `json:"is_resolved"`
	CreatedAt  time.Time `json:"created_at"`
}

// DashboardResponse aggregates counters and recent activity for the landing
// view.
type DashboardResponse struct {
	Stats          DashboardStats        `json:"stats"`
	RecentActivity []TransactionResponse `json:"recent_activity"`
}

// DashboardStats mirrors repository.DashboardStats for the wire.
type DashboardStats struct {
	Products     int             `json:"products"`
	LowStock     int             `json:"low_stock"`
	Transactions int             `json:"transactions"`
	Vendors      int             `json:"vendors"`
	TotalValue   decimal.Decimal `json:"total_value"`
}
