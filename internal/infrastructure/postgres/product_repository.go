package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jackel7/stock-mate/internal/domain"
	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository over PostgreSQL (usable with pool
// or tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the product adapter. Pass a pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `p.id, p.sku, p.name, p.category_id, p.vendor_id, p.quantity, p.reorder_level,
	p.cost_price, p.selling_price, p.unit, p.created_at, p.updated_at`

// Create persists a new product.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, sku, name, category_id, vendor_id, quantity, reorder_level, cost_price, selling_price, unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.SKU, product.Name, product.CategoryID, product.VendorID,
		product.Quantity, product.ReorderLevel, product.CostPrice, product.SellingPrice,
		product.Unit, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID returns a product by ID with category/vendor names joined, or nil.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `, COALESCE(c.name, ''), COALESCE(v.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN vendors v ON v.id = p.vendor_id
		WHERE p.id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), true)
}

// GetBySKU returns a product by SKU, or nil.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p WHERE p.sku = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, sku), false)
}

// GetForUpdate loads the product and locks its row (SELECT FOR UPDATE). Only
// meaningful inside a transaction.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p WHERE p.id = $1
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), false)
}

// Update writes the descriptive fields. Quantity is deliberately excluded:
// only UpdateQuantity touches it.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, category_id = $3, vendor_id = $4, reorder_level = $5,
		    cost_price = $6, selling_price = $7, unit = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.CategoryID, product.VendorID, product.ReorderLevel,
		product.CostPrice, product.SellingPrice, product.Unit, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity writes the stock counter (ledger only).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// List returns products newest first, optionally filtered by category, vendor
// or low-stock state. The low-stock comparison runs in SQL against each
// product's own reorder_level.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `, COALESCE(c.name, ''), COALESCE(v.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN vendors v ON v.id = p.vendor_id
		WHERE 1=1`
	var args []any
	pos := 1
	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND p.category_id = $%d", pos)
		args = append(args, filter.CategoryID)
		pos++
	}
	if filter.VendorID != "" {
		query += fmt.Sprintf(" AND p.vendor_id = $%d", pos)
		args = append(args, filter.VendorID)
		pos++
	}
	if filter.LowStock {
		query += " AND p.quantity <= p.reorder_level"
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.SKU, &p.Name, &p.CategoryID, &p.VendorID, &p.Quantity, &p.ReorderLevel,
			&p.CostPrice, &p.SellingPrice, &p.Unit, &p.CreatedAt, &p.UpdatedAt,
			&p.CategoryName, &p.VendorName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete removes a product.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// CountByCategory counts products referencing a category.
func (r *ProductRepo) CountByCategory(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

// CountByVendor counts products referencing a vendor.
func (r *ProductRepo) CountByVendor(ctx context.Context, vendorID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE vendor_id = $1`, vendorID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by vendor: %w", err)
	}
	return count, nil
}

func (r *ProductRepo) scanOne(row pgx.Row, withNames bool) (*entity.Product, error) {
	var p entity.Product
	dest := []any{
		&p.ID, &p.SKU, &p.Name, &p.CategoryID, &p.VendorID, &p.Quantity, &p.ReorderLevel,
		&p.CostPrice, &p.SellingPrice, &p.Unit, &p.CreatedAt, &p.UpdatedAt,
	}
	if withNames {
		dest = append(dest, &p.CategoryName, &p.VendorName)
	}
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}
