package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unclebandit/mvc-rest-api/internal/config"
	"github.com/unclebandit/mvc-rest-api/internal/repository"
	"github.com/unclebandit/mvc-rest-api/internal/server"
	"github.com/unclebandit/mvc-rest-api/internal/service"
)

func newTestServer(cfg config.ServerConfig) *server.Server {
	return server.NewServer(cfg, zerolog.Nop(), server.Deps{
		Customers: service.NewCustomerService(repository.NewMemoryCustomerRepository(), nil),
		Vendors:   service.NewVendorService(repository.NewMemoryVendorRepository(), nil),
	})
}

func request(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.RemoteAddr = "192.0.2.1:5000"
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestServer_Routes(t *testing.T) {
	srv := newTestServer(config.Default().Server)

	w := request(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(t, srv, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = request(t, srv, http.MethodPost, "/api/v1/customers", `{"firstname":"Michael","lastname":"Weston"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"firstname":"Michael","lastname":"Weston","customer_url":"/api/v1/customers/1"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("Content-Type"))

	w = request(t, srv, http.MethodPost, "/api/v1/vendors", `{"name":"Home Fruits"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"name":"Home Fruits","vendor_url":"/api/v1/vendors/1"}`, w.Body.String())

	w = request(t, srv, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")

	w = request(t, srv, http.MethodGet, "/api/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = request(t, srv, http.MethodPost, "/api/v1/customers/1", "{}")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestServer_RateLimitOnlyOnAPI(t *testing.T) {
	cfg := config.Default().Server
	cfg.RateLimit = config.RateLimitConfig{RPS: 0.001, Burst: 1}
	srv := newTestServer(cfg)

	assert.Equal(t, http.StatusOK, request(t, srv, http.MethodGet, "/api/v1/vendors", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, request(t, srv, http.MethodGet, "/api/v1/vendors", "").Code)
	assert.Equal(t, http.StatusOK, request(t, srv, http.MethodGet, "/healthz", "").Code)
}

func TestServer_ServeAndShutdown(t *testing.T) {
	srv := newTestServer(config.Default().Server)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/customers")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"customers":[]}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
