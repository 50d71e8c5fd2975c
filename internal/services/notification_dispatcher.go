package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"partsstore/internal/models"
	"partsstore/pkg/mailer"
)

// ErrNotAttempted marks a notification skipped because an earlier one failed.
var ErrNotAttempted = errors.New("not attempted after earlier failure")

// Mailer hands a message to a mail relay and waits for it to be accepted.
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// DispatcherConfig describes who notifications come from and go to.
type DispatcherConfig struct {
	ShopName      string
	SenderAddress string
	AdminAddress  string
	// FailFast skips the customer message once the admin message has failed.
	FailFast bool
}

// DispatchResult reports the outcome of each notification separately.
type DispatchResult struct {
	AdminSent    bool
	CustomerSent bool
	AdminErr     error
	CustomerErr  error
}

// Delivered reports whether both notifications were accepted by the relay.
func (r DispatchResult) Delivered() bool {
	return r.AdminSent && r.CustomerSent
}

// Err combines the per-recipient failures, each wrapping ErrDispatch. It is nil when delivered.
func (r DispatchResult) Err() error {
	var errs []error
	if r.AdminErr != nil {
		errs = append(errs, fmt.Errorf("%w: admin notification: %w", ErrDispatch, r.AdminErr))
	}
	if r.CustomerErr != nil {
		errs = append(errs, fmt.Errorf("%w: customer confirmation: %w", ErrDispatch, r.CustomerErr))
	}
	return errors.Join(errs...)
}

// NotificationDispatcher sends the admin notification and then the customer confirmation.
type NotificationDispatcher struct {
	mailer Mailer
	cfg    DispatcherConfig
}

// NewNotificationDispatcher creates a new NotificationDispatcher.
func NewNotificationDispatcher(m Mailer, cfg DispatcherConfig) *NotificationDispatcher {
	if cfg.AdminAddress == "" {
		cfg.AdminAddress = cfg.SenderAddress
	}
	return &NotificationDispatcher{
		mailer: m,
		cfg:    cfg,
	}
}

// Dispatch sends both messages sequentially. Nothing is retried.
func (d *NotificationDispatcher) Dispatch(ctx context.Context, order *models.Order, adminHTML, customerHTML string) DispatchResult {
	var res DispatchResult

	res.AdminErr = d.mailer.Send(ctx, mailer.Message{
		FromName:    d.cfg.ShopName + " Orders",
		FromAddress: d.cfg.SenderAddress,
		To:          d.cfg.AdminAddress,
		Subject:     "📦 New Order Received",
		HTML:        adminHTML,
	})
	res.AdminSent = res.AdminErr == nil
	if !res.AdminSent {
		log.Printf("Admin notification for order %s failed: %v", order.ID, res.AdminErr)
		if d.cfg.FailFast {
			res.CustomerErr = ErrNotAttempted
			return res
		}
	}

	res.CustomerErr = d.mailer.Send(ctx, mailer.Message{
		FromName:    d.cfg.ShopName,
		FromAddress: d.cfg.SenderAddress,
		To:          order.Email,
		Subject:     fmt.Sprintf("✅ Your Order Confirmation - %s", d.cfg.ShopName),
		HTML:        customerHTML,
	})
	res.CustomerSent = res.CustomerErr == nil
	if !res.CustomerSent {
		log.Printf("Customer confirmation for order %s to %s failed: %v", order.ID, order.Email, res.CustomerErr)
	}
	return res
}
