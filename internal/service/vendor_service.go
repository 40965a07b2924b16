package service

import (
	"context"

	"github.com/unclebandit/mvc-rest-api/internal/apperrors"
	"github.com/unclebandit/mvc-rest-api/internal/mapper"
	"github.com/unclebandit/mvc-rest-api/internal/model"
	"github.com/unclebandit/mvc-rest-api/internal/queue"
	"github.com/unclebandit/mvc-rest-api/internal/repository"
)

const vendorResource = "vendor"

type VendorService interface {
	List(ctx context.Context) ([]model.VendorDTO, error)
	GetByID(ctx context.Context, id int64) (*model.VendorDTO, error)
	Create(ctx context.Context, dto *model.VendorDTO) (*model.VendorDTO, error)
	Replace(ctx context.Context, id int64, dto *model.VendorDTO) (*model.VendorDTO, error)
	Patch(ctx context.Context, id int64, dto *model.VendorDTO) (*model.VendorDTO, error)
	Delete(ctx context.Context, id int64) error
}

type DefaultVendorService struct {
	VendorRepo repository.VendorRepositoryInterface
	Events     queue.Publisher
}

func NewVendorService(repo repository.VendorRepositoryInterface, events queue.Publisher) *DefaultVendorService {
	return &DefaultVendorService{VendorRepo: repo, Events: events}
}

func (s *DefaultVendorService) List(ctx context.Context) ([]model.VendorDTO, error) {
	vendors, err := s.VendorRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]model.VendorDTO, 0, len(vendors))
	for i := range vendors {
		dto, err := s.toDTO(&vendors[i])
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, *dto)
	}
	return dtos, nil
}

func (s *DefaultVendorService) GetByID(ctx context.Context, id int64) (*model.VendorDTO, error) {
	vendor, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toDTO(vendor)
}

func (s *DefaultVendorService) Create(ctx context.Context, dto *model.VendorDTO) (*model.VendorDTO, error) {
	vendor, err := mapper.VendorDTOToVendor(dto)
	if err != nil {
		return nil, err
	}
	return s.save(ctx, vendor, queue.ActionCreated)
}

func (s *DefaultVendorService) Replace(ctx context.Context, id int64, dto *model.VendorDTO) (*model.VendorDTO, error) {
	vendor, err := mapper.VendorDTOToVendor(dto)
	if err != nil {
		return nil, err
	}
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}
	vendor.ID = id

	return s.save(ctx, vendor, queue.ActionReplaced)
}

func (s *DefaultVendorService) Patch(ctx context.Context, id int64, dto *model.VendorDTO) (*model.VendorDTO, error) {
	if dto == nil {
		return nil, apperrors.InvalidInput("vendor DTO is nil", nil)
	}
	vendor, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != "" {
		vendor.Name = dto.Name
	}

	return s.save(ctx, vendor, queue.ActionPatched)
}

func (s *DefaultVendorService) Delete(ctx context.Context, id int64) error {
	if err := s.VendorRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	publish(ctx, s.Events, vendorResource, queue.ActionDeleted, id, model.ResourceURL(model.VendorBaseURL, id))
	return nil
}

func (s *DefaultVendorService) find(ctx context.Context, id int64) (*model.Vendor, error) {
	vendor, err := s.VendorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperrors.NotFound(vendorResource, id)
	}
	return vendor, nil
}

func (s *DefaultVendorService) save(ctx context.Context, vendor *model.Vendor, action string) (*model.VendorDTO, error) {
	saved, err := s.VendorRepo.Save(ctx, vendor)
	if err != nil {
		return nil, err
	}
	out, err := s.toDTO(saved)
	if err != nil {
		return nil, err
	}
	publish(ctx, s.Events, vendorResource, action, saved.ID, out.VendorURL)
	return out, nil
}

func (s *DefaultVendorService) toDTO(vendor *model.Vendor) (*model.VendorDTO, error) {
	dto, err := mapper.VendorToDTO(vendor)
	if err != nil {
		return nil, err
	}
	dto.VendorURL = model.ResourceURL(model.VendorBaseURL, vendor.ID)
	return dto, nil
}

var _ VendorService = (*DefaultVendorService)(nil)
