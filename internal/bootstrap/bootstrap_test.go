package bootstrap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/mvc-rest-api/internal/bootstrap"
	"github.com/unclebandit/mvc-rest-api/internal/model"
	"github.com/unclebandit/mvc-rest-api/internal/repository"
	"github.com/unclebandit/mvc-rest-api/internal/service"
)

func TestLoad_EmptyStores(t *testing.T) {
	ctx := context.Background()
	customers := service.NewCustomerService(repository.NewMemoryCustomerRepository(), nil)
	vendors := service.NewVendorService(repository.NewMemoryVendorRepository(), nil)

	require.NoError(t, bootstrap.Load(ctx, customers, vendors))

	gotCustomers, err := customers.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.CustomerDTO{
		{FirstName: "Michael", LastName: "Weston", CustomerURL: "/api/v1/customers/1"},
		{FirstName: "Sam", LastName: "Axe", CustomerURL: "/api/v1/customers/2"},
	}, gotCustomers)

	gotVendors, err := vendors.List(ctx)
	require.NoError(t, err)
	require.Len(t, gotVendors, 5)
	assert.Equal(t, "Western Tasty Fruits Ltd.", gotVendors[0].Name)
	assert.Equal(t, "/api/v1/vendors/5", gotVendors[4].VendorURL)
}

func TestLoad_SkipsPopulatedStore(t *testing.T) {
	ctx := context.Background()
	customers := service.NewCustomerService(repository.NewMemoryCustomerRepository(), nil)
	vendors := service.NewVendorService(repository.NewMemoryVendorRepository(), nil)

	_, err := customers.Create(ctx, &model.CustomerDTO{FirstName: "Fiona", LastName: "Glenanne"})
	require.NoError(t, err)

	require.NoError(t, bootstrap.Load(ctx, customers, vendors))
	require.NoError(t, bootstrap.Load(ctx, customers, vendors))

	gotCustomers, err := customers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, gotCustomers, 1)

	gotVendors, err := vendors.List(ctx)
	require.NoError(t, err)
	assert.Len(t, gotVendors, 5, "second load must not duplicate")
}
