package handlers

import (
	"FoodHub/domain"
	"FoodHub/internal/api/presenters"
	"FoodHub/pkg/order"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MidtransHandler interface {
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	midtransHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewMidtransHandler(orderService order.OrderService, validator *validator.Validate) MidtransHandler {
	return &midtransHandler{
		orderService: orderService,
		validator:    validator,
	}
}

// MidtransWebhookHandler records the verified payment state of an order.
// The order's fulfilment status is never touched here.
func (h *midtransHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	req := new(domain.MidtransNotification)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPaymentNotification, err)
	}

	updated, err := h.orderService.HandlePaymentNotification(c.Context(), *req)
	if err != nil {
		return fail(c, domain.MessageFailedPaymentNotification, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{
		"orderId":       updated.ID,
		"paymentStatus": updated.PaymentStatus,
	}, fiber.StatusOK, domain.MessageSuccessPaymentNotification)
}
