// Package mapper converts between persisted entities and their DTOs.
// Conversions copy fields one to one; they never validate, default, or
// compute resource URLs.
package mapper

import (
	"github.com/unclebandit/mvc-rest-api/internal/apperrors"
	"github.com/unclebandit/mvc-rest-api/internal/model"
)

func CustomerToDTO(c *model.Customer) (*model.CustomerDTO, error) {
	if c == nil {
		return nil, apperrors.InvalidInput("customer is nil", nil)
	}
	return &model.CustomerDTO{
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}, nil
}

// CustomerDTOToCustomer leaves ID zero; callers set it from the path or the store.
func CustomerDTOToCustomer(dto *model.CustomerDTO) (*model.Customer, error) {
	if dto == nil {
		return nil, apperrors.InvalidInput("customer DTO is nil", nil)
	}
	return &model.Customer{
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
	}, nil
}

func VendorToDTO(v *model.Vendor) (*model.VendorDTO, error) {
	if v == nil {
		return nil, apperrors.InvalidInput("vendor is nil", nil)
	}
	return &model.VendorDTO{Name: v.Name}, nil
}

func VendorDTOToVendor(dto *model.VendorDTO) (*model.Vendor, error) {
	if dto == nil {
		return nil, apperrors.InvalidInput("vendor DTO is nil", nil)
	}
	return &model.Vendor{Name: dto.Name}, nil
}
