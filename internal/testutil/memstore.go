// Package testutil provides in-memory implementations of the repository ports
// and the ledger TxRunner, so use cases can be exercised without PostgreSQL.
// The TxRunner serializes callbacks with a mutex and restores a snapshot on
// error, mirroring the row-locked, all-or-nothing behavior of the real one.
package testutil

import (
	"context"
	"sync"

	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

// Store holds the in-memory record sets. Movements, items and alerts keep
// append order, which stands in for creation order.
type Store struct {
	mu sync.Mutex

	Products     map[string]*entity.Product
	Transactions map[string]*entity.Transaction
	Items        []*entity.TransactionItem
	Movements    []*entity.StockMovement
	Alerts       []*entity.Alert
	Categories   map[string]*entity.Category
	Vendors      map[string]*entity.Vendor

	// Fault injection: when set, the matching repository call fails with
	// this error.
	FailItemCreate     error
	FailMovementCreate error
	FailAlertCreate    error
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		Products:     make(map[string]*entity.Product),
		Transactions: make(map[string]*entity.Transaction),
		Categories:   make(map[string]*entity.Category),
		Vendors:      make(map[string]*entity.Vendor),
	}
}

// SeedProduct adds a product to the store and returns it.
func (s *Store) SeedProduct(p *entity.Product) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.Products[p.ID] = &cp
	return p
}

// snapshot captures the full store state for rollback.
func (s *Store) snapshot() storeState {
	state := storeState{
		products:     make(map[string]*entity.Product, len(s.Products)),
		transactions: make(map[string]*entity.Transaction, len(s.Transactions)),
		items:        append([]*entity.TransactionItem(nil), s.Items...),
		movements:    append([]*entity.StockMovement(nil), s.Movements...),
		alerts:       append([]*entity.Alert(nil), s.Alerts...),
	}
	for id, p := range s.Products {
		cp := *p
		state.products[id] = &cp
	}
	for id, t := range s.Transactions {
		ct := *t
		state.transactions[id] = &ct
	}
	return state
}

func (s *Store) restore(state storeState) {
	s.Products = state.products
	s.Transactions = state.transactions
	s.Items = state.items
	s.Movements = state.movements
	s.Alerts = state.alerts
}

type storeState struct {
	products     map[string]*entity.Product
	transactions map[string]*entity.Transaction
	items        []*entity.TransactionItem
	movements    []*entity.StockMovement
	alerts       []*entity.Alert
}

// TxRunner is the in-memory ledger.TxRunner. Run holds the store mutex for
// the whole callback (serializing concurrent submissions the way row locks
// do) and restores the pre-callback snapshot when fn fails.
type TxRunner struct {
	Store *Store
}

// NewTxRunner builds the runner over a store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{Store: store}
}

// Run implements ledger.TxRunner.
func (r *TxRunner) Run(ctx context.Context, fn func(
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	alertRepo repository.AlertRepository,
) error) error {
	r.Store.mu.Lock()
	defer r.Store.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	state := r.Store.snapshot()
	err := fn(
		&TransactionRepo{store: r.Store},
		&ProductRepo{store: r.Store},
		&StockMovementRepo{store: r.Store},
		&AlertRepo{store: r.Store},
	)
	if err != nil {
		r.Store.restore(state)
		return err
	}
	return nil
}
