package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jackel7/stock-mate/internal/application/dto"
	"github.com/jackel7/stock-mate/internal/domain"
	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
	"github.com/jackel7/stock-mate/pkg/config"
	"github.com/jackel7/stock-mate/pkg/logger"
)

// SubmitTransactionUseCase applies a business transaction (IN, OUT or ADJ with
// line items) to product stock. The whole submission runs inside one database
// transaction with a row lock per touched product (SELECT FOR UPDATE), so
// concurrent submissions against the same product serialize instead of losing
// updates, and any failure rolls the entire submission back.
type SubmitTransactionUseCase struct {
	txRunner TxRunner
	policy   config.LedgerConfig
	log      *logger.Logger
}

// NewSubmitTransactionUseCase builds the use case.
func NewSubmitTransactionUseCase(txRunner TxRunner, policy config.LedgerConfig, log *logger.Logger) *SubmitTransactionUseCase {
	if policy.SubmitTimeout <= 0 {
		policy.SubmitTimeout = 10 * time.Second
	}
	return &SubmitTransactionUseCase{txRunner: txRunner, policy: policy, log: log}
}

// Submit validates, persists and applies a transaction request, returning the
// persisted header. No write happens before validation passes; after that,
// either every write commits or none do.
func (uc *SubmitTransactionUseCase) Submit(ctx context.Context, in dto.SubmitTransactionRequest) (*dto.TransactionResponse, error) {
	ttype, err := validate(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txDate := now
	if in.TransactionDate != nil {
		txDate = *in.TransactionDate
	}

	header := &entity.Transaction{
		ID:              uuid.New().String(),
		Type:            ttype,
		TotalAmount:     totalAmount(in.Items),
		TransactionDate: txDate,
		CreatedAt:       now,
	}

	// Bound the whole submission; on expiry the transaction rolls back rather
	// than leaving a partially applied ledger.
	ctx, cancel := context.WithTimeout(ctx, uc.policy.SubmitTimeout)
	defer cancel()

	err = uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		alertRepo repository.AlertRepository,
	) error {
		if err := txRepo.CreateHeader(ctx, header); err != nil {
			return fmt.Errorf("persist header: %w", err)
		}
		// Submission order matters: a later item reading a product already
		// touched by an earlier one must see the mutated quantity.
		for i, item := range in.Items {
			if err := uc.applyItem(ctx, header, item, txRepo, productRepo, movementRepo, alertRepo, now); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		uc.log.Warn().Err(err).
			Str("type", string(ttype)).
			Int("items", len(in.Items)).
			Msg("transaction submission rejected")
		return nil, err
	}

	uc.log.Info().
		Str("transaction_id", header.ID).
		Str("type", string(ttype)).
		Int("items", len(in.Items)).
		Str("total_amount", header.TotalAmount.String()).
		Msg("transaction applied")

	return toTransactionResponse(header), nil
}

// applyItem persists one line item and its stock effects: item row, locked
// read-modify-write of the product quantity, movement log entry, and a
// low-stock alert when the new quantity crosses the reorder level.
func (uc *SubmitTransactionUseCase) applyItem(
	ctx context.Context,
	header *entity.Transaction,
	item dto.SubmitTransactionItem,
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	alertRepo repository.AlertRepository,
	now time.Time,
) error {
	if err := txRepo.CreateItem(ctx, &entity.TransactionItem{
		ID:            uuid.New().String(),
		TransactionID: header.ID,
		ProductID:     item.ProductID,
		Quantity:      item.Quantity,
		UnitPrice:     item.UnitPrice,
		CreatedAt:     now,
	}); err != nil {
		return fmt.Errorf("persist item: %w", err)
	}

	// Lock the product row for the rest of the transaction.
	product, err := productRepo.GetForUpdate(ctx, item.ProductID)
	if err != nil {
		return fmt.Errorf("load product: %w", err)
	}
	if product == nil {
		return fmt.Errorf("product %s: %w", item.ProductID, domain.ErrNotFound)
	}

	delta := header.Type.Delta(item.Quantity)
	newQuantity := product.Quantity + delta
	if newQuantity < 0 && !uc.policy.AllowNegativeStock {
		return fmt.Errorf("product %s: %w", product.SKU, domain.ErrInsufficientStock)
	}

	if err := productRepo.UpdateQuantity(ctx, product.ID, newQuantity); err != nil {
		return fmt.Errorf("update stock: %w", err)
	}

	if err := movementRepo.Create(ctx, &entity.StockMovement{
		ID:                uuid.New().String(),
		ProductID:         product.ID,
		TransactionID:     header.ID,
		ChangeQuantity:    delta,
		CurrentStockAfter: newQuantity,
		Note:              header.Type.MovementNote(),
		CreatedAt:         now,
	}); err != nil {
		return fmt.Errorf("log movement: %w", err)
	}

	if newQuantity <= product.ReorderLevel {
		if err := alertRepo.Create(ctx, &entity.Alert{
			ID:        uuid.New().String(),
			Type:      entity.AlertTypeLowStock,
			Message:   fmt.Sprintf("Low stock alert: %s is now at %d %s.", product.Name, newQuantity, product.Unit),
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("raise alert: %w", err)
		}
	}
	return nil
}

// validate rejects a malformed request before anything is persisted: the type
// must be IN/OUT/ADJ, items must be non-empty, every item needs a product
// reference, an acceptable quantity for the type, and a non-negative price.
func validate(in dto.SubmitTransactionRequest) (entity.TransactionType, error) {
	ttype, ok := entity.ParseTransactionType(in.Type)
	if !ok {
		return "", fmt.Errorf("type %q: %w", in.Type, domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return "", fmt.Errorf("empty items: %w", domain.ErrInvalidInput)
	}
	for i, item := range in.Items {
		if item.ProductID == "" {
			return "", fmt.Errorf("item %d missing product_id: %w", i, domain.ErrInvalidInput)
		}
		if !ttype.ValidItemQuantity(item.Quantity) {
			return "", fmt.Errorf("item %d quantity %d: %w", i, item.Quantity, domain.ErrInvalidInput)
		}
		if item.UnitPrice.IsNegative() {
			return "", fmt.Errorf("item %d negative unit_price: %w", i, domain.ErrInvalidInput)
		}
	}
	return ttype, nil
}

// totalAmount sums quantity * unit_price over the items, once, at submission
// time. ADJ items with a negative quantity contribute negatively.
func totalAmount(items []dto.SubmitTransactionItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:              t.ID,
		Type:            string(t.Type),
		TotalAmount:     t.TotalAmount,
		TransactionDate: t.TransactionDate,
		CreatedAt:       t.CreatedAt,
		ItemCount:       t.ItemCount,
	}
}
