package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackel7/stock-mate/internal/application/dto"
	"github.com/jackel7/stock-mate/internal/application/ledger"
	"github.com/jackel7/stock-mate/internal/domain"
	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/testutil"
	"github.com/jackel7/stock-mate/pkg/config"
	"github.com/jackel7/stock-mate/pkg/logger"
)

func newUseCase(store *testutil.Store, policy config.LedgerConfig) *ledger.SubmitTransactionUseCase {
	log := logger.New(logger.Config{Level: "error"})
	return ledger.NewSubmitTransactionUseCase(testutil.NewTxRunner(store), policy, log)
}

func seed(store *testutil.Store, id string, quantity, reorder int) *entity.Product {
	return store.SeedProduct(&entity.Product{
		ID:           id,
		SKU:          "SKU-" + id,
		Name:         "Widget " + id,
		Quantity:     quantity,
		ReorderLevel: reorder,
		Unit:         "pcs",
	})
}

func TestSubmitIn(t *testing.T) {
	store := testutil.NewStore()
	seed(store, "p1", 3, 10)
	uc := newUseCase(store, config.LedgerConfig{AllowNegativeStock: true})

	resp, err := uc.Submit(context.Background(), dto.SubmitTransactionRequest{
		Type: "IN",
		Items: []dto.SubmitTransactionItem{
			{ProductID: "p1", Quantity: 5, UnitPrice: decimal.NewFromFloat(2.00)},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "IN", resp.Type)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromFloat(10.00)), resp.TotalAmount.String())

	assert.Equal(t, 8, store.Products["p1"].Quantity)

	require.Len(t, store.Movements, 1)
	m := store.Movements[0]
	assert.Equal(t, resp.ID, m.TransactionID)
	assert.Equal(t, 5, m.ChangeQuantity)
	assert.Equal(t, 8, m.CurrentStockAfter)
	assert.Equal(t, "Transaction IN", m.Note)

	// 8 <= reorder level 10, so the submission raises exactly one alert.
	require.Len(t, store.Alerts, 1)
	assert.Equal(t, entity.AlertTypeLowStock, store.Alerts[0].Type)
	assert.Equal(t, "Low stock alert: Widget p1 is now at 8 pcs.", store.Alerts[0].Message)
}

func TestSubmitOutAllowsNegativeByDefault(t *testing.T) {
	store := testutil.NewStore()
	seed(store, "p1", 5, 0)
	uc := newUseCase(store, config.LedgerConfig{AllowNegativeStock: true})

	_, err := uc.Submit(context.Background(), dto.SubmitTransactionRequest{
		Type: "OUT",
		Items: []dto.SubmitTransactionItem{
			{ProductID: "p1", Quantity: 20, UnitPrice: decimal.NewFromInt(1)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, -15, store.Products["p1"].Quantity)
	require.Len(t, store.Movements, 1)
	assert.Equal(t, -20, store.Movements[0].ChangeQuantity)
	assert.Equal(t, -15, store.Movements[0].CurrentStockAfter)
	// -15 <= reorder level 0 raises an alert as well.
	assert.Len(t, store.Alerts, 1)
}

func TestSubmitOutInsufficientStockRollsBack(t *testing.T) {
	store := testutil.NewStore()
	seed(store, "p1", 5, 0)
	uc := newUseCase(store, config.LedgerConfig{AllowNegativeStock: false})

	_, err := uc.Submit(context.Background(), dto.SubmitTransactionRequest{
		Type: "OUT",
		Items: []dto.SubmitTransactionItem{
			{ProductID: "p1", Quantity: 20, UnitPrice: decimal.NewFromInt(1)},
		},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nothing persisted: no header, no items, no movements, stock untouched.
	assert.Empty(t, store.Transactions)
	assert.Empty(t, store.Items)
	assert.Empty(t, store.Movements)
	assert.Empty(t, store.Alerts)
	assert.Equal(t, 5, store.Products["p1"].Quantity)
}

func TestSubmitValidation(t *testing.T) {
	store := testutil.NewStore()
	seed(store, "p1", 5, 0)
	uc := newUseCase(store, config.LedgerConfig{AllowNegativeStock: true})

	item := dto.SubmitTransactionItem{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromInt(1)}

	cases := []struct {
		name string
		req  dto.SubmitTransactionRequest
	}{
		{"unknown type", dto.SubmitTransactionRequest{Type: "TRANSFER", Items: []dto.SubmitTransactionItem{item}}},
		{"empty items", dto.SubmitTransactionRequest{Type: "IN"}},
		{"missing product", dto.SubmitTransactionRequest{Type: "IN", Items: []dto.SubmitTransactionItem{{Quantity: 1}}}},
		{"zero quantity", dto.SubmitTransactionRequest{Type: "IN", Items: []dto.SubmitTransactionItem{{ProductID: "p1"}}}},
		{"negative out quantity", dto.SubmitTransactionRequest{Type: "OUT", Items: []dto.SubmitTransactionItem{{ProductID: "p1", Quantity: -1}}}},
		{"zero adj quantity", dto.SubmitTransactionRequest{Type: "ADJ", Items: []dto.SubmitTransactionItem{{ProductID: "p1", Quantity: 0}}}},
		{"negative price", dto.SubmitTransactionRequest{Type: "IN", Items: []dto.SubmitTransactionItem{{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromInt(-1)}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Submit(context.Background(), tc.req)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	// Validation happens before any write.
	assert.Empty(t, store.Transactions)
	assert.Empty(t, store.Items)
	assert.Equal(t, 5, store.Products["p1"].Quantity)
}

func TestSubmitUnknownProductRollsBack(t *testing.T) {
	store := testutil.NewStore()
	seed(store, "p1", 5, 0)
	uc := newUseCase(store, config.LedgerConfig{AllowNegativeStock: true})

	_, err := uc.Submit(context.Background(), dto.SubmitTransactionRequest{
		Type: "IN",
		Items: []dto.SubmitTransactionItem{
			{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromInt(1)},
			{ProductID: "nope", Quantity: 3, UnitPrice: decimal.NewFromInt(1)},
		},
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	// The first item had already been applied inside the transaction; the
	// rollback undoes it.
	assert.Empty(t, store.Transactions)
	assert.Empty(t, store.Items)
	assert.Empty(t, store.Movements)
	assert.Equal(t, 5, store.Products["p1"].Quantity)
}

func TestSubmitMovementFailureRollsBack(t *testing.T) {
	store := testutil.NewStore()
	seed(store, "p1", 5, 0)
	store.FailMovementCreate = errors.New("disk full")
	uc := newUseCase(store, config.LedgerConfig{AllowNegativeStock: true})

	_, err := uc.Submit(context.Background(), dto.SubmitTransactionRequest{
		Type: "IN",
		Items: []dto.SubmitTransactionItem{
			{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromInt(1)},
		},
	})
	require.Error(t, err)

	assert.Empty(t, store.Transactions)
	assert.Empty(t, store.Items)
	assert.Equal(t, 5, store.Products["p1"].Quantity)
}

func TestSubmitAdjSignedDelta(t *testing.T) {
	store := testutil.NewStore()
	seed(store, "p1", 10, 3)
	uc := newUseCase(store, config.LedgerConfig{AllowNegativeStock: true})

	resp, err := uc.Submit(context.Background(), dto.SubmitTransactionRequest{
		Type: "ADJ",
		Items: []dto.SubmitTransactionItem{
			{ProductID: "p1", Quantity: -4, UnitPrice: decimal.NewFromInt(5)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 6, store.Products["p1"].Quantity)
	require.Len(t, store.Movements, 1)
	assert.Equal(t, -4, store.Movements[0].ChangeQuantity)
	assert.Equal(t, "Transaction ADJ", store.Movements[0].Note)

	// 6 > reorder level 3: no alert.
	assert.Empty(t, store.Alerts)

	// Negative quantities contribute negatively to the total.
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(-20)), resp.TotalAmount.String())
}

func TestSubmitMultipleItemsSameProduct(t *testing.T) {
	store := testutil.NewStore()
	seed(store, "p1", 0, 0)
	uc := newUseCase(store, config.LedgerConfig{AllowNegativeStock: true})

	resp, err := uc.Submit(context.Background(), dto.SubmitTransactionRequest{
		Type: "IN",
		Items: []dto.SubmitTransactionItem{
			{ProductID: "p1", Quantity: 5, UnitPrice: decimal.NewFromInt(2)},
			{ProductID: "p1", Quantity: 5, UnitPrice: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err)

	// The second item sees the quantity left by the first.
	assert.Equal(t, 10, store.Products["p1"].Quantity)
	require.Len(t, store.Movements, 2)
	assert.Equal(t, 5, store.Movements[0].CurrentStockAfter)
	assert.Equal(t, 10, store.Movements[1].CurrentStockAfter)

	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(25)), resp.TotalAmount.String())
	assert.Len(t, store.Items, 2)
}

func TestSubmitConcurrentOutSerializes(t *testing.T) {
	store := testutil.NewStore()
	seed(store, "p1", 10, 0)
	uc := newUseCase(store, config.LedgerConfig{AllowNegativeStock: true})

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Submit(context.Background(), dto.SubmitTransactionRequest{
				Type: "OUT",
				Items: []dto.SubmitTransactionItem{
					{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromInt(1)},
				},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Both decrements land: no lost update.
	assert.Equal(t, 8, store.Products["p1"].Quantity)

	require.Len(t, store.Movements, 2)
	afters := []int{store.Movements[0].CurrentStockAfter, store.Movements[1].CurrentStockAfter}
	assert.ElementsMatch(t, []int{9, 8}, afters)
}

func TestSubmitLedgerReplayMatchesStock(t *testing.T) {
	store := testutil.NewStore()
	seed(store, "p1", 7, 0)
	uc := newUseCase(store, config.LedgerConfig{AllowNegativeStock: true})

	reqs := []dto.SubmitTransactionRequest{
		{Type: "IN", Items: []dto.SubmitTransactionItem{{ProductID: "p1", Quantity: 12, UnitPrice: decimal.NewFromInt(1)}}},
		{Type: "OUT", Items: []dto.SubmitTransactionItem{{ProductID: "p1", Quantity: 4, UnitPrice: decimal.NewFromInt(1)}}},
		{Type: "ADJ", Items: []dto.SubmitTransactionItem{{ProductID: "p1", Quantity: -2, UnitPrice: decimal.Zero}}},
	}
	for _, req := range reqs {
		_, err := uc.Submit(context.Background(), req)
		require.NoError(t, err)
	}

	// Replaying the movement log from the seed quantity reproduces the
	// current stock.
	replayed := 7
	for _, m := range store.Movements {
		replayed += m.ChangeQuantity
		assert.Equal(t, replayed, m.CurrentStockAfter)
	}
	assert.Equal(t, replayed, store.Products["p1"].Quantity)
}
