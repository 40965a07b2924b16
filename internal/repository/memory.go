package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/unclebandit/mvc-rest-api/internal/apperrors"
	"github.com/unclebandit/mvc-rest-api/internal/model"
)

// MemoryCustomerRepository keeps customers in process memory. IDs start at 1.
type MemoryCustomerRepository struct {
	mu     sync.RWMutex
	rows   map[int64]model.Customer
	nextID int64
}

func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{rows: make(map[int64]model.Customer), nextID: 1}
}

func (r *MemoryCustomerRepository) FindAll(_ context.Context) ([]model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customers := make([]model.Customer, 0, len(r.rows))
	for _, c := range r.rows {
		customers = append(customers, c)
	}
	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })
	return customers, nil
}

func (r *MemoryCustomerRepository) FindByID(_ context.Context, id int64) (*model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *MemoryCustomerRepository) Save(_ context.Context, c *model.Customer) (*model.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *c
	if saved.ID == 0 {
		saved.ID = r.nextID
		r.nextID++
	} else if _, ok := r.rows[saved.ID]; !ok {
		return nil, apperrors.NotFound("customer", saved.ID)
	}
	r.rows[saved.ID] = saved
	return &saved, nil
}

func (r *MemoryCustomerRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)
	return nil
}

// MemoryVendorRepository keeps vendors in process memory. IDs start at 1.
type MemoryVendorRepository struct {
	mu     sync.RWMutex
	rows   map[int64]model.Vendor
	nextID int64
}

func NewMemoryVendorRepository() *MemoryVendorRepository {
	return &MemoryVendorRepository{rows: make(map[int64]model.Vendor), nextID: 1}
}

func (r *MemoryVendorRepository) FindAll(_ context.Context) ([]model.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendors := make([]model.Vendor, 0, len(r.rows))
	for _, v := range r.rows {
		vendors = append(vendors, v)
	}
	sort.Slice(vendors, func(i, j int) bool { return vendors[i].ID < vendors[j].ID })
	return vendors, nil
}

func (r *MemoryVendorRepository) FindByID(_ context.Context, id int64) (*model.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (r *MemoryVendorRepository) Save(_ context.Context, v *model.Vendor) (*model.Vendor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	saved := *v
	if saved.ID == 0 {
		saved.ID = r.nextID
		r.nextID++
	} else if _, ok := r.rows[saved.ID]; !ok {
		return nil, apperrors.NotFound("vendor", saved.ID)
	}
	r.rows[saved.ID] = saved
	return &saved, nil
}

func (r *MemoryVendorRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.rows, id)
	return nil
}

var (
	_ CustomerRepositoryInterface = (*MemoryCustomerRepository)(nil)
	_ VendorRepositoryInterface   = (*MemoryVendorRepository)(nil)
)
