package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"partsstore/internal/models"
	"partsstore/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// totalsTolerance is half of the smallest displayed currency unit.
var totalsTolerance = decimal.New(5, -3)

// SubmitResult describes how far an order submission got.
type SubmitResult struct {
	Order     *models.Order
	Persisted bool
	Dispatch  DispatchResult
}

// OrderService handles the order intake workflow.
type OrderService struct {
	orderRepo  repositories.OrderRepository
	formatter  *NotificationFormatter
	dispatcher *NotificationDispatcher
	validate   *validator.Validate
}

// NewOrderService creates a new OrderService. A nil orderRepo disables persistence:
// orders are then only emailed.
func NewOrderService(orderRepo repositories.OrderRepository, formatter *NotificationFormatter, dispatcher *NotificationDispatcher) *OrderService {
	return &OrderService{
		orderRepo:  orderRepo,
		formatter:  formatter,
		dispatcher: dispatcher,
		validate:   validator.New(),
	}
}

// PersistenceEnabled reports whether submitted orders are stored.
func (s *OrderService) PersistenceEnabled() bool {
	return s.orderRepo != nil
}

// SubmitOrder validates, renders, stores and dispatches an order, in that order.
// A stored order is not rolled back when dispatch fails. The returned result is
// never nil, so callers can report partial progress alongside the error.
func (s *OrderService) SubmitOrder(ctx context.Context, orderRequest models.Order) (*SubmitResult, error) {
	order := orderRequest
	order.ID = ""
	order.CreatedAt = time.Now()
	res := &SubmitResult{Order: &order}

	if err := s.validate.Struct(order); err != nil {
		return res, fmt.Errorf("%w: %s", ErrValidation, describeValidation(err))
	}
	checkTotals(&order)

	adminHTML, customerHTML, err := s.formatter.Render(order)
	if err != nil {
		return res, err
	}

	if s.orderRepo != nil {
		if err := s.orderRepo.Create(ctx, &order); err != nil {
			return res, fmt.Errorf("%w: %w", ErrPersistence, err)
		}
		res.Persisted = true
		log.Printf("Order %s saved (%d items, total %s)", order.ID, len(order.OrderItems), FormatMoney(order.Total))
	}

	res.Dispatch = s.dispatcher.Dispatch(ctx, &order, adminHTML, customerHTML)
	if err := res.Dispatch.Err(); err != nil {
		return res, err
	}
	return res, nil
}

// checkTotals logs orders whose total differs from subtotal plus shipping.
// Such orders are still accepted.
func checkTotals(order *models.Order) {
	expected := decimal.NewFromFloat(order.Subtotal).Add(decimal.NewFromFloat(order.Shipping))
	diff := decimal.NewFromFloat(order.Total).Sub(expected).Abs()
	if diff.GreaterThan(totalsTolerance) {
		log.Printf("Warning: order total %s does not match subtotal %s + shipping %s",
			FormatMoney(order.Total), FormatMoney(order.Subtotal), FormatMoney(order.Shipping))
	}
}

func describeValidation(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed on the '%s' tag", e.Namespace(), e.Tag()))
	}
	return strings.Join(msgs, "; ")
}
