// internal/controller/customer_controller.go
package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/mvc-rest-api/internal/model"
	"github.com/unclebandit/mvc-rest-api/internal/request"
	"github.com/unclebandit/mvc-rest-api/internal/response"
	"github.com/unclebandit/mvc-rest-api/internal/service"
)

type CustomerController struct {
	CustomerService service.CustomerService
}

func NewCustomerController(svc service.CustomerService) *CustomerController {
	return &CustomerController{CustomerService: svc}
}

func (c *CustomerController) Routes() []Route {
	item := model.CustomerBaseURL + "/{id}"
	return []Route{
		{http.MethodGet, model.CustomerBaseURL, c.ListCustomers},
		{http.MethodPost, model.CustomerBaseURL, c.CreateCustomer},
		{http.MethodGet, item, c.GetCustomer},
		{http.MethodPut, item, c.UpdateCustomer},
		{http.MethodPatch, item, c.PatchCustomer},
		{http.MethodDelete, item, c.DeleteCustomer},
	}
}

func (c *CustomerController) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := c.CustomerService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if customers == nil {
		customers = []model.CustomerDTO{}
	}

	response.WriteJSON(w, r, http.StatusOK, model.CustomerListDTO{Customers: customers})
}

func (c *CustomerController) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	customer, err := c.CustomerService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.WriteJSON(w, r, http.StatusOK, customer)
}

func (c *CustomerController) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var body model.CustomerDTO
	if err := request.Decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	customer, err := c.CustomerService.Create(r.Context(), &body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.WriteJSON(w, r, http.StatusCreated, customer)
}

func (c *CustomerController) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body model.CustomerDTO
	if err := request.Decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	customer, err := c.CustomerService.Replace(r.Context(), id, &body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.WriteJSON(w, r, http.StatusOK, customer)
}

func (c *CustomerController) PatchCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body model.CustomerDTO
	if err := request.Decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	customer, err := c.CustomerService.Patch(r.Context(), id, &body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.WriteJSON(w, r, http.StatusOK, customer)
}

func (c *CustomerController) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := c.CustomerService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	response.WriteEmpty(w, http.StatusOK)
}
