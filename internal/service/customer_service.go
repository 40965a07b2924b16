// internal/service/customer_service.go
package service

import (
	"context"

	"github.com/unclebandit/mvc-rest-api/internal/apperrors"
	"github.com/unclebandit/mvc-rest-api/internal/mapper"
	"github.com/unclebandit/mvc-rest-api/internal/model"
	"github.com/unclebandit/mvc-rest-api/internal/queue"
	"github.com/unclebandit/mvc-rest-api/internal/repository"
)

const customerResource = "customer"

type CustomerService interface {
	List(ctx context.Context) ([]model.CustomerDTO, error)
	GetByID(ctx context.Context, id int64) (*model.CustomerDTO, error)
	Create(ctx context.Context, dto *model.CustomerDTO) (*model.CustomerDTO, error)
	Replace(ctx context.Context, id int64, dto *model.CustomerDTO) (*model.CustomerDTO, error)
	Patch(ctx context.Context, id int64, dto *model.CustomerDTO) (*model.CustomerDTO, error)
	Delete(ctx context.Context, id int64) error
}

type DefaultCustomerService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	Events       queue.Publisher
}

func NewCustomerService(repo repository.CustomerRepositoryInterface, events queue.Publisher) *DefaultCustomerService {
	return &DefaultCustomerService{CustomerRepo: repo, Events: events}
}

func (s *DefaultCustomerService) List(ctx context.Context) ([]model.CustomerDTO, error) {
	customers, err := s.CustomerRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.CustomerDTO, 0, len(customers))
	for i := range customers {
		dto, err := s.toDTO(&customers[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

func (s *DefaultCustomerService) GetByID(ctx context.Context, id int64) (*model.CustomerDTO, error) {
	customer, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(customer)
}

// Create ignores any URL in dto; the id comes from the repository.
func (s *DefaultCustomerService) Create(ctx context.Context, dto *model.CustomerDTO) (*model.CustomerDTO, error) {
	customer, err := mapper.CustomerDTOToCustomer(dto)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, customer, queue.ActionCreated)
}

// Replace overwrites every field of an existing customer. A missing id is
// NotFound; Replace never creates.
func (s *DefaultCustomerService) Replace(ctx context.Context, id int64, dto *model.CustomerDTO) (*model.CustomerDTO, error) {
	customer, err := mapper.CustomerDTOToCustomer(dto)
	if err != nil {
		return nil, err
	}
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	customer.ID = id

	return s.save(ctx, customer, queue.ActionReplaced)
}

// Patch copies only the non-empty fields of dto onto the stored customer.
func (s *DefaultCustomerService) Patch(ctx context.Context, id int64, dto *model.CustomerDTO) (*model.CustomerDTO, error) {
	if dto == nil {
		return nil, apperrors.InvalidInput("customer DTO is nil", nil)
	}
	customer, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.FirstName != "" {
		customer.FirstName = dto.FirstName
	}
	if dto.LastName != "" {
		customer.LastName = dto.LastName
	}

	return s.save(ctx, customer, queue.ActionPatched)
}

// Delete is idempotent: deleting a missing id succeeds.
func (s *DefaultCustomerService) Delete(ctx context.Context, id int64) error {
	if err := s.CustomerRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.Events, customerResource, queue.ActionDeleted, id, model.ResourceURL(model.CustomerBaseURL, id))
	return nil
}

func (s *DefaultCustomerService) find(ctx context.Context, id int64) (*model.Customer, error) {
	customer, err := s.CustomerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperrors.NotFound(customerResource, id)
	}
	return customer, nil
}

func (s *DefaultCustomerService) save(ctx context.Context, customer *model.Customer, action string) (*model.CustomerDTO, error) {
	saved, err := s.CustomerRepo.Save(ctx, customer)
	if err != nil {
		return nil, err
	}
	out, err := s.toDTO(saved)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, customerResource, action, saved.ID, out.CustomerURL)
	return out, nil
}

func (s *DefaultCustomerService) toDTO(customer *model.Customer) (*model.CustomerDTO, error) {
	dto, err := mapper.CustomerToDTO(customer)
	if err != nil {
		return nil, err
	}
	dto.CustomerURL = model.ResourceURL(model.CustomerBaseURL, customer.ID)
	return dto, nil
}

var _ CustomerService = (*DefaultCustomerService)(nil)
