package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jackel7/stock-mate/internal/domain/entity"
	"github.com/jackel7/stock-mate/internal/domain/repository"
)

var _ repository.VendorRepository = (*VendorRepo)(nil)

// VendorRepo implements VendorRepository over PostgreSQL.
type VendorRepo struct {
	q Querier
}

// NewVendorRepository builds the vendor adapter.
func NewVendorRepository(q Querier) *VendorRepo {
	return &VendorRepo{q: q}
}

// Create persists a new vendor.
func (r *VendorRepo) Create(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, name, contact_name, email, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		vendor.ID, vendor.Name, vendor.ContactName, vendor.Email, vendor.Phone, vendor.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert vendor: %w", err)
	}
	return nil
}

// GetByID returns a vendor by ID, or nil.
func (r *VendorRepo) GetByID(ctx context.Context, id string) (*entity.Vendor, error) {
	query := `SELECT id, name, contact_name, email, phone, created_at FROM vendors WHERE id = $1`
	var v entity.Vendor
	err := r.q.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.ContactName, &v.Email, &v.Phone, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor: %w", err)
	}
	return &v, nil
}

// List returns all vendors, newest first.
func (r *VendorRepo) List(ctx context.Context) ([]*entity.Vendor, error) {
	query := `SELECT id, name, contact_name, email, phone, created_at FROM vendors ORDER BY created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	var list []*entity.Vendor
	for rows.Next() {
		var v entity.Vendor
		if err := rows.Scan(&v.ID, &v.Name, &v.ContactName, &v.Email, &v.Phone, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// Update writes a vendor's fields.
func (r *VendorRepo) Update(ctx context.Context, vendor *entity.Vendor) error {
	query := `UPDATE vendors SET name = $2, contact_name = $3, email = $4, phone = $5 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, vendor.ID, vendor.Name, vendor.ContactName, vendor.Email, vendor.Phone)
	if err != nil {
		return fmt.Errorf("update vendor: %w", err)
	}
	return nil
}

// Delete removes a vendor.
func (r *VendorRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor: %w", err)
	}
	return nil
}
