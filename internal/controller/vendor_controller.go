// internal/controller/vendor_controller.go
package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/mvc-rest-api/internal/model"
	"github.com/unclebandit/mvc-rest-api/internal/request"
	"github.com/unclebandit/mvc-rest-api/internal/response"
	"github.com/unclebandit/mvc-rest-api/internal/service"
)

type VendorController struct {
	VendorService service.VendorService
}

func NewVendorController(svc service.VendorService) *VendorController {
	return &VendorController{VendorService: svc}
}

func (c *VendorController) Routes() []Route {
	item := model.VendorBaseURL + "/{id}"
	return []Route{
		{http.MethodGet, model.VendorBaseURL, c.ListVendors},
		{http.MethodPost, model.VendorBaseURL, c.CreateVendor},
		{http.MethodGet, item, c.GetVendor},
		{http.MethodPut, item, c.UpdateVendor},
		{http.MethodPatch, item, c.PatchVendor},
		{http.MethodDelete, item, c.DeleteVendor},
	}
}

func (c *VendorController) ListVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := c.VendorService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if vendors == nil {
		vendors = []model.VendorDTO{}
	}

	response.WriteJSON(w, r, http.StatusOK, model.VendorListDTO{Vendors: vendors})
}

func (c *VendorController) GetVendor(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	vendor, err := c.VendorService.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.WriteJSON(w, r, http.StatusOK, vendor)
}

func (c *VendorController) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var body model.VendorDTO
	if err := request.Decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	vendor, err := c.VendorService.Create(r.Context(), &body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.WriteJSON(w, r, http.StatusCreated, vendor)
}

func (c *VendorController) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body model.VendorDTO
	if err := request.Decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	vendor, err := c.VendorService.Replace(r.Context(), id, &body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.WriteJSON(w, r, http.StatusOK, vendor)
}

func (c *VendorController) PatchVendor(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body model.VendorDTO
	if err := request.Decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	vendor, err := c.VendorService.Patch(r.Context(), id, &body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	response.WriteJSON(w, r, http.StatusOK, vendor)
}

func (c *VendorController) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	id, err := request.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := c.VendorService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	response.WriteEmpty(w, http.StatusOK)
}
