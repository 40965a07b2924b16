// Package bootstrap loads the starter data set into empty stores.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/unclebandit/mvc-rest-api/internal/model"
	"github.com/unclebandit/mvc-rest-api/internal/service"
)

var Customers = []model.CustomerDTO{
	{FirstName: "Michael", LastName: "Weston"},
	{FirstName: "Sam", LastName: "Axe"},
}

var Vendors = []model.VendorDTO{
	{Name: "Western Tasty Fruits Ltd."},
	{Name: "Exotic Fruits Company"},
	{Name: "Home Fruits"},
	{Name: "Fun Fresh Fruits Ltd."},
	{Name: "Nuts for Nuts Company"},
}

// Load creates the starter customers and vendors through the services. A
// resource whose store already holds records is left untouched.
func Load(ctx context.Context, customers service.CustomerService, vendors service.VendorService) error {
	logger := zerolog.Ctx(ctx)

	existingCustomers, err := customers.List(ctx)
	if err != nil {
		return fmt.Errorf("list customers: %w", err)
	}
	if len(existingCustomers) == 0 {
		for i := range Customers {
			dto := Customers[i]
			if _, err := customers.Create(ctx, &dto); err != nil {
				return fmt.Errorf("seed customer %s %s: %w", dto.FirstName, dto.LastName, err)
			}
		}
		logger.Info().Int("count", len(Customers)).Msg("seeded customers")
	} else {
		logger.Info().Int("existing", len(existingCustomers)).Msg("customers present, skipping seed")
	}

	existingVendors, err := vendors.List(ctx)
	if err != nil {
		return fmt.Errorf("list vendors: %w", err)
	}
	if len(existingVendors) == 0 {
		for i := range Vendors {
			dto := Vendors[i]
			if _, err := vendors.Create(ctx, &dto); err != nil {
				return fmt.Errorf("seed vendor %s: %w", dto.Name, err)
			}
		}
		logger.Info().Int("count", len(Vendors)).Msg("seeded vendors")
	} else {
		logger.Info().Int("existing", len(existingVendors)).Msg("vendors present, skipping seed")
	}

	return nil
}
