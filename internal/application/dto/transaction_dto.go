package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmitTransactionItem is one line of a submission.
// Quantity is a positive magnitude for IN/OUT; for ADJ it is the signed stock
// delta to apply.
type SubmitTransactionItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// SubmitTransactionRequest is the body for POST /api/transactions.
type SubmitTransactionRequest struct {
	Type            string                  `json:"type"` // IN, OUT, ADJ
	Items           []SubmitTransactionItem `json:"items"`
	TransactionDate *time.Time              `json:"transaction_date,omitempty"` // defaults to now
}

// TransactionResponse is a persisted transaction header.
type TransactionResponse struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	TransactionDate time.Time       `json:"transaction_date"`
	CreatedAt       time.Time       `json:"created_at"`
	ItemCount       int             `json:"item_count,omitempty"`
}

// TransactionItemResponse is a line item in a transaction detail view.
type TransactionItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"product_sku"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// TransactionDetailResponse is a header with its nested items.
type TransactionDetailResponse struct {
	TransactionResponse
	Items []TransactionItemResponse `json:"items"`
}
