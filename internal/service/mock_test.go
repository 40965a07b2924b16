package service_test

import (
	"context"
	"errors"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/unclebandit/mvc-rest-api/internal/model"
	"github.com/unclebandit/mvc-rest-api/internal/queue"
)

// --- Mock Publisher ---

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(topic string, payload any) error {
	args := m.Called(topic, payload)
	return args.Error(0)
}

// recordingPublisher keeps every event in order.
type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.ResourceEvent
}

func (p *recordingPublisher) Publish(topic string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, payload.(queue.ResourceEvent))
	return nil
}

// --- Failing Repositories ---

var errDatabaseDown = errors.New("database down")

type failingCustomerRepo struct{}

func (failingCustomerRepo) FindAll(context.Context) ([]model.Customer, error) {
	return nil, errDatabaseDown
}
func (failingCustomerRepo) FindByID(context.Context, int64) (*model.Customer, error) {
	return nil, errDatabaseDown
}
func (failingCustomerRepo) Save(context.Context, *model.Customer) (*model.Customer, error) {
	return nil, errDatabaseDown
}
func (failingCustomerRepo) DeleteByID(context.Context, int64) error { return errDatabaseDown }
