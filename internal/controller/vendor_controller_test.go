package controller_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unclebandit/mvc-rest-api/internal/controller"
	"github.com/unclebandit/mvc-rest-api/internal/repository"
	"github.com/unclebandit/mvc-rest-api/internal/service"
)

func TestVendorController_Walkthrough(t *testing.T) {
	svc := service.NewVendorService(repository.NewMemoryVendorRepository(), nil)
	h := newRouter(controller.NewVendorController(svc).Routes())

	w := do(h, http.MethodPost, "/api/v1/vendors", `{"name":"Olivia"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"name":"Olivia","vendor_url":"/api/v1/vendors/1"}`, w.Body.String())

	w = do(h, http.MethodPut, "/api/v1/vendors/1", `{"name":"Fred"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Fred","vendor_url":"/api/v1/vendors/1"}`, w.Body.String())

	w = do(h, http.MethodPatch, "/api/v1/vendors/1", `{"name":"tommy"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"tommy","vendor_url":"/api/v1/vendors/1"}`, w.Body.String())

	w = do(h, http.MethodGet, "/api/v1/vendors", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"vendors":[{"name":"tommy","vendor_url":"/api/v1/vendors/1"}]}`, w.Body.String())

	w = do(h, http.MethodDelete, "/api/v1/vendors/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(h, http.MethodGet, "/api/v1/vendors/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"vendor with ID 1 not found"}`, w.Body.String())

	w = do(h, http.MethodGet, "/api/v1/vendors", "")
	assert.JSONEq(t, `{"vendors":[]}`, w.Body.String())
}

func TestVendorController_Routes(t *testing.T) {
	routes := controller.NewVendorController(nil).Routes()

	var got []string
	for _, r := range routes {
		got = append(got, r.Method+" "+r.Pattern)
	}
	assert.ElementsMatch(t, []string{
		"GET /api/v1/vendors",
		"POST /api/v1/vendors",
		"GET /api/v1/vendors/{id}",
		"PUT /api/v1/vendors/{id}",
		"PATCH /api/v1/vendors/{id}",
		"DELETE /api/v1/vendors/{id}",
	}, got)
}

func TestVendorController_TrailingDataIsRejected(t *testing.T) {
	svc := service.NewVendorService(repository.NewMemoryVendorRepository(), nil)
	h := newRouter(controller.NewVendorController(svc).Routes())

	w := do(h, http.MethodPost, "/api/v1/vendors", `{"name":"Olivia"} trailing garbage`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(h, http.MethodGet, "/api/v1/vendors", "")
	assert.JSONEq(t, `{"vendors":[]}`, w.Body.String())
}
