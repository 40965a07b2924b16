package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/unclebandit/mvc-rest-api/internal/apperrors"
	"github.com/unclebandit/mvc-rest-api/internal/model"
)

type VendorRepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.Vendor, error)
	FindByID(ctx context.Context, id int64) (*model.Vendor, error)
	Save(ctx context.Context, v *model.Vendor) (*model.Vendor, error)
	DeleteByID(ctx context.Context, id int64) error
}

type VendorRepository struct {
	DB *sql.DB
}

func NewVendorRepository(db *sql.DB) *VendorRepository {
	return &VendorRepository{DB: db}
}

func (r *VendorRepository) FindAll(ctx context.Context) ([]model.Vendor, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name FROM vendors ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	defer rows.Close()

	vendors := []model.Vendor{}
	for rows.Next() {
		var v model.Vendor
		if err := rows.Scan(&v.ID, &v.Name); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vendors: %w", err)
	}
	return vendors, nil
}

func (r *VendorRepository) FindByID(ctx context.Context, id int64) (*model.Vendor, error) {
	var v model.Vendor
	err := r.DB.QueryRowContext(ctx, `SELECT id, name FROM vendors WHERE id=$1`, id).Scan(&v.ID, &v.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vendor %d: %w", id, err)
	}
	return &v, nil
}

func (r *VendorRepository) Save(ctx context.Context, v *model.Vendor) (*model.Vendor, error) {
	saved := *v
	if saved.ID == 0 {
		err := r.DB.QueryRowContext(ctx,
			`INSERT INTO vendors (name) VALUES ($1) RETURNING id`, saved.Name,
		).Scan(&saved.ID)
		if err != nil {
			return nil, fmt.Errorf("create vendor: %w", err)
		}
		return &saved, nil
	}

	res, err := r.DB.ExecContext(ctx, `UPDATE vendors SET name=$1 WHERE id=$2`, saved.Name, saved.ID)
	if err != nil {
		return nil, fmt.Errorf("update vendor %d: %w", saved.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update vendor %d: %w", saved.ID, err)
	}
	if n == 0 {
		return nil, apperrors.NotFound("vendor", saved.ID)
	}
	return &saved, nil
}

func (r *VendorRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM vendors WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete vendor %d: %w", id, err)
	}
	return nil
}

var _ VendorRepositoryInterface = (*VendorRepository)(nil)
