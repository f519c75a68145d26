package usecase

import (
	"context"

	"github.com/jackel7/stock-mate/internal/application/dto"
	"github.com/jackel7/stock-mate/internal/domain"
	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

// TransactionQueryUseCase serves read-only transaction views. Writes go
// through the ledger exclusively.
type TransactionQueryUseCase struct {
	repo repository.TransactionRepository
}

// NewTransactionQueryUseCase builds the use case.
func NewTransactionQueryUseCase(repo repository.TransactionRepository) *TransactionQueryUseCase {
	return &TransactionQueryUseCase{repo: repo}
}

// List returns headers ordered by transaction date descending, each with its
// items count.
func (uc *TransactionQueryUseCase) List(ctx context.Context) ([]dto.TransactionResponse, error) {
	transactions, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, toTransactionResponse(t))
	}
	return out, nil
}

// GetDetail returns a header with its nested items and the referenced product
// names and SKUs.
func (uc *TransactionQueryUseCase) GetDetail(ctx context.Context, id string) (*dto.TransactionDetailResponse, error) {
	header, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.repo.ListItems(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.TransactionDetailResponse{
		TransactionResponse: toTransactionResponse(header),
		Items:               make([]dto.TransactionItemResponse, 0, len(items)),
	}
	for _, item := range items {
		detail.Items = append(detail.Items, dto.TransactionItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			ProductSKU:  item.ProductSKU,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		})
	}
	return detail, nil
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:              t.ID,
		Type:            string(t.Type),
		TotalAmount:     t.TotalAmount,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
		ItemCount:       t.ItemCount,
	}
}
