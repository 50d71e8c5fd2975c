package services_test

import (
	"context"

	"partsstore/internal/models"
	"partsstore/pkg/mailer"

	"github.com/stretchr/testify/mock"
)

// MockMailer is a mock implementation of services.Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// sentMessages returns the messages passed to Send, in call order.
func (m *MockMailer) sentMessages() []mailer.Message {
	var msgs []mailer.Message
	for _, call := range m.Calls {
		if call.Method == "Send" {
			msgs = append(msgs, call.Arguments.Get(1).(mailer.Message))
		}
	}
	return msgs
}

func sentTo(addr string) interface{} {
	return mock.MatchedBy(func(msg mailer.Message) bool { return msg.To == addr })
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func sampleOrder() models.Order {
	return models.Order{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "96891234567",
		Address: "Way 3021, Muscat",
		OrderItems: []models.OrderItem{
			{Name: "Brake Pad", Quantity: 2, Price: 4.5},
			{Name: "Oil Filter", Quantity: 1, Price: 3.125},
			{Name: "Spark Plug", Quantity: 4, Price: 0},
		},
		Subtotal: 12.125,
		Shipping: 2,
		Total:    14.125,
	}
}
