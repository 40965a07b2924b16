package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/unclebandit/mvc-rest-api/internal/apperrors"
	"github.com/unclebandit/mvc-rest-api/internal/model"
)

// CustomerRepositoryInterface defines methods used by service
type CustomerRepositoryInterface interface {
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	Save(ctx context.Context, c *model.Customer) (*model.Customer, error)
	DeleteByID(ctx context.Context, id int64) error
}

// CustomerRepository is the PostgreSQL implementation
type CustomerRepository struct {
	DB *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

// FindAll fetches all customers ordered by id
func (r *CustomerRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	query := `
        SELECT id, first_name, last_name
        FROM customers
        ORDER BY id
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	customers := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

// FindByID fetches a customer by ID. A missing row is (nil, nil).
func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	query := `
        SELECT id, first_name, last_name
        FROM customers
        WHERE id = $1
    `
	var c model.Customer
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.FirstName, &c.LastName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // not found
		}
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return &c, nil
}

// Save inserts a customer when ID is zero and updates it otherwise.
func (r *CustomerRepository) Save(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	saved := *c
	if saved.ID == 0 {
		query := `
            INSERT INTO customers (first_name, last_name)
            VALUES ($1, $2)
            RETURNING id
        `
		if err := r.DB.QueryRowContext(ctx, query, saved.FirstName, saved.LastName).Scan(&saved.ID); err != nil {
			return nil, fmt.Errorf("create customer: %w", err)
		}
		return &saved, nil
	}

	query := `
        UPDATE customers
        SET first_name=$1, last_name=$2
        WHERE id=$3
    `
	res, err := r.DB.ExecContext(ctx, query, saved.FirstName, saved.LastName, saved.ID)
	if err != nil {
		return nil, fmt.Errorf("update customer %d: %w", saved.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update customer %d: %w", saved.ID, err)
	}
	if n == 0 {
		return nil, apperrors.NotFound("customer", saved.ID)
	}
	return &saved, nil
}

// DeleteByID removes a customer. Deleting a missing id is not an error.
func (r *CustomerRepository) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM customers WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	return nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
