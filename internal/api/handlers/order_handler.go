package handlers

import (
	"FoodHub/domain"
	"FoodHub/internal/api/presenters"
	"FoodHub/pkg/order"
	"bytes"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type (
	OrderHandler interface {
		CreateOrder(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
		GetAllOrders(c *fiber.Ctx) error
		UpdateOrderStatus(c *fiber.Ctx) error
		ExportOrders(c *fiber.Ctx) error
	}

	orderHandler struct {
		orderService order.OrderService
		validator    *validator.Validate
	}
)

func NewOrderHandler(orderService order.OrderService, validator *validator.Validate) OrderHandler {
	return &orderHandler{
		orderService: orderService,
		validator:    validator,
	}
}

func (h *orderHandler) CreateOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CheckoutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateOrder, err)
	}

	created, err := h.orderService.CreateOrder(c.Context(), userID, *req)
	if err != nil {
		return fail(c, domain.MessageFailedCreateOrder, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"order": created}, fiber.StatusCreated, domain.MessageSuccessCreateOrder)
}

func (h *orderHandler) GetOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	orders, err := h.orderService.GetOrders(c.Context(), userID)
	if err != nil {
		return fail(c, domain.MessageFailedGetOrders, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"orders": orders}, fiber.StatusOK, "")
}

func (h *orderHandler) GetAllOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAllOrders(c.Context())
	if err != nil {
		return fail(c, domain.MessageFailedGetOrders, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"orders": orders}, fiber.StatusOK, "")
}

func (h *orderHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	req := new(domain.UpdateOrderStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	updated, err := h.orderService.UpdateOrderStatus(c.Context(), c.Params("id"), *req)
	if err != nil {
		return fail(c, domain.MessageFailedUpdateOrderStatus, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"order": updated}, fiber.StatusOK, domain.MessageSuccessUpdateOrderStatus)
}

func (h *orderHandler) ExportOrders(c *fiber.Ctx) error {
	var buf bytes.Buffer
	if err := h.orderService.ExportOrders(c.Context(), &buf); err != nil {
		return fail(c, domain.MessageFailedExportOrders, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="orders-%s.xlsx"`, time.Now().Format("20060102")))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
