package handlers

import (
	"log"

	"partsstore/internal/models"
	"partsstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

const orderFailedMessage = "Failed to process order"

// OrderHandler handles HTTP requests for order intake.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service: service,
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/send-email", h.HandleSendEmail)
}

// HandleSendEmail accepts a checkout payload, stores it and emails the admin and customer.
// Every failure is reported as the same 500; the cause is only logged.
func (h *OrderHandler) HandleSendEmail(c *fiber.Ctx) error {
	var orderRequest models.Order
	if err := c.BodyParser(&orderRequest); err != nil {
		log.Printf("Error parsing order payload: %v", err)
		return orderFailed(c, nil)
	}

	res, err := h.service.SubmitOrder(c.UserContext(), orderRequest)
	if err != nil {
		log.Printf("Error processing order (saved: %t, admin notified: %t, customer notified: %t): %v",
			res.Persisted, res.Dispatch.AdminSent, res.Dispatch.CustomerSent, err)
		return orderFailed(c, res)
	}

	message := "Emails sent successfully!"
	if res.Persisted {
		message = "Order saved & emails sent!"
	}
	body := fiber.Map{
		"success":          true,
		"message":          message,
		"adminNotified":    true,
		"customerNotified": true,
	}
	if res.Order.ID != "" {
		body["orderId"] = res.Order.ID
	}
	return c.JSON(body)
}

func orderFailed(c *fiber.Ctx, res *services.SubmitResult) error {
	var adminSent, customerSent bool
	if res != nil {
		adminSent = res.Dispatch.AdminSent
		customerSent = res.Dispatch.CustomerSent
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success":          false,
		"message":          orderFailedMessage,
		"adminNotified":    adminSent,
		"customerNotified": customerSent,
	})
}
