package controller_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/unclebandit/mvc-rest-api/internal/controller"
	"github.com/unclebandit/mvc-rest-api/internal/model"
)

// --- Mock Service ---

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) List(ctx context.Context) ([]model.CustomerDTO, error) {
	args := m.Called(ctx)
	dtos, _ := args.Get(0).([]model.CustomerDTO)
	return dtos, args.Error(1)
}

func (m *MockCustomerService) GetByID(ctx context.Context, id int64) (*model.CustomerDTO, error) {
	args := m.Called(ctx, id)
	dto, _ := args.Get(0).(*model.CustomerDTO)
	return dto, args.Error(1)
}

func (m *MockCustomerService) Create(ctx context.Context, dto *model.CustomerDTO) (*model.CustomerDTO, error) {
	args := m.Called(ctx, dto)
	out, _ := args.Get(0).(*model.CustomerDTO)
	return out, args.Error(1)
}

func (m *MockCustomerService) Replace(ctx context.Context, id int64, dto *model.CustomerDTO) (*model.CustomerDTO, error) {
	args := m.Called(ctx, id, dto)
	out, _ := args.Get(0).(*model.CustomerDTO)
	return out, args.Error(1)
}

func (m *MockCustomerService) Patch(ctx context.Context, id int64, dto *model.CustomerDTO) (*model.CustomerDTO, error) {
	args := m.Called(ctx, id, dto)
	out, _ := args.Get(0).(*model.CustomerDTO)
	return out, args.Error(1)
}

func (m *MockCustomerService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// --- Helpers ---

func newRouter(routes ...[]controller.Route) http.Handler {
	r := chi.NewRouter()
	for _, group := range routes {
		for _, route := range group {
			r.Method(route.Method, route.Pattern, route.Handler)
		}
	}
	return r
}

func do(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
