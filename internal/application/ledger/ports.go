package ledger

import (
	"context"

	"github.com/jackel7/stock-mate/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction, handing it
// repositories bound to that transaction. Commit on nil, rollback on error or
// context expiry. It is what makes a whole submission atomic.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txRepo repository.TransactionRepository,
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		alertRepo repository.AlertRepository,
	) error) error
}
