package services_test

import (
	"context"
	"errors"
	"testing"

	"partsstore/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDispatcher(m services.Mailer, failFast bool) *services.NotificationDispatcher {
	return services.NewNotificationDispatcher(m, services.DispatcherConfig{
		ShopName:      "Parts Shop",
		SenderAddress: "shop@example.com",
		AdminAddress:  "owner@example.com",
		FailFast:      failFast,
	})
}

func TestNotificationDispatcher_BothDelivered(t *testing.T) {
	mockMailer := new(MockMailer)
	mockMailer.On("Send", mock.Anything, mock.Anything).Return(nil).Twice()
	order := sampleOrder()

	res := newDispatcher(mockMailer, true).Dispatch(context.Background(), &order, "<p>admin</p>", "<p>customer</p>")

	assert.True(t, res.Delivered())
	assert.NoError(t, res.Err())
	mockMailer.AssertExpectations(t)

	msgs := mockMailer.sentMessages()
	if assert.Len(t, msgs, 2) {
		admin, customer := msgs[0], msgs[1]
		assert.Equal(t, "owner@example.com", admin.To)
		assert.Equal(t, "shop@example.com", admin.FromAddress)
		assert.Equal(t, "Parts Shop Orders", admin.FromName)
		assert.Equal(t, "📦 New Order Received", admin.Subject)
		assert.Equal(t, "<p>admin</p>", admin.HTML)

		assert.Equal(t, "jane@example.com", customer.To)
		assert.Equal(t, "Parts Shop", customer.FromName)
		assert.Equal(t, "✅ Your Order Confirmation - Parts Shop", customer.Subject)
		assert.Equal(t, "<p>customer</p>", customer.HTML)
	}
}

func TestNotificationDispatcher_AdminDefaultsToSender(t *testing.T) {
	mockMailer := new(MockMailer)
	mockMailer.On("Send", mock.Anything, sentTo("shop@example.com")).Return(nil).Once()
	mockMailer.On("Send", mock.Anything, sentTo("jane@example.com")).Return(nil).Once()
	order := sampleOrder()

	d := services.NewNotificationDispatcher(mockMailer, services.DispatcherConfig{
		ShopName:      "Parts Shop",
		SenderAddress: "shop@example.com",
	})
	res := d.Dispatch(context.Background(), &order, "a", "c")

	assert.True(t, res.Delivered())
	mockMailer.AssertExpectations(t)
}

func TestNotificationDispatcher_AdminRejectedFailFast(t *testing.T) {
	mockMailer := new(MockMailer)
	mockMailer.On("Send", mock.Anything, sentTo("owner@example.com")).Return(errors.New("535 authentication failed")).Once()
	order := sampleOrder()

	res := newDispatcher(mockMailer, true).Dispatch(context.Background(), &order, "a", "c")

	assert.False(t, res.AdminSent)
	assert.False(t, res.CustomerSent)
	assert.ErrorIs(t, res.CustomerErr, services.ErrNotAttempted)
	assert.ErrorIs(t, res.Err(), services.ErrDispatch)
	mockMailer.AssertNumberOfCalls(t, "Send", 1)
	mockMailer.AssertNotCalled(t, "Send", mock.Anything, sentTo("jane@example.com"))
}

func TestNotificationDispatcher_AdminRejectedIndependent(t *testing.T) {
	mockMailer := new(MockMailer)
	mockMailer.On("Send", mock.Anything, sentTo("owner@example.com")).Return(errors.New("connection reset")).Once()
	mockMailer.On("Send", mock.Anything, sentTo("jane@example.com")).Return(nil).Once()
	order := sampleOrder()

	res := newDispatcher(mockMailer, false).Dispatch(context.Background(), &order, "a", "c")

	assert.False(t, res.AdminSent)
	assert.True(t, res.CustomerSent)
	assert.False(t, res.Delivered())
	assert.ErrorIs(t, res.Err(), services.ErrDispatch)
	assert.Contains(t, res.Err().Error(), "admin notification")
	mockMailer.AssertExpectations(t)
}

func TestNotificationDispatcher_CustomerRejectedAfterAdmin(t *testing.T) {
	mockMailer := new(MockMailer)
	mockMailer.On("Send", mock.Anything, sentTo("owner@example.com")).Return(nil).Once()
	mockMailer.On("Send", mock.Anything, sentTo("jane@example.com")).Return(errors.New("550 mailbox unavailable")).Once()
	order := sampleOrder()

	res := newDispatcher(mockMailer, true).Dispatch(context.Background(), &order, "a", "c")

	assert.True(t, res.AdminSent)
	assert.False(t, res.CustomerSent)
	assert.ErrorIs(t, res.Err(), services.ErrDispatch)
	assert.Contains(t, res.Err().Error(), "customer confirmation")
	assert.Contains(t, res.Err().Error(), "550 mailbox unavailable")
	mockMailer.AssertExpectations(t)
}
