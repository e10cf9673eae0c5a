package handlers

import (
	"FoodHub/domain"
	"FoodHub/internal/api/presenters"
	"FoodHub/pkg/cart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CartHandler interface {
		AddToCart(c *fiber.Ctx) error
		GetCartItems(c *fiber.Ctx) error
		ClearCart(c *fiber.Ctx) error
		RemoveFromCart(c *fiber.Ctx) error
		UpdateCartItem(c *fiber.Ctx) error
	}

	cartHandler struct {
		cartService cart.CartService
		validator   *validator.Validate
	}
)

func NewCartHandler(cartService cart.CartService, validator *validator.Validate) CartHandler {
	return &cartHandler{
		cartService: cartService,
		validator:   validator,
	}
}

func (h *cartHandler) AddToCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddToCartRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToCart, err)
	}

	item, err := h.cartService.AddToCart(c.Context(), userID, *req)
	if err != nil {
		return fail(c, domain.MessageFailedAddToCart, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"cartItem": item}, fiber.StatusOK, domain.MessageSuccessAddToCart)
}

func (h *cartHandler) GetCartItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	items, err := h.cartService.GetCartItems(c.Context(), userID)
	if err != nil {
		return fail(c, domain.MessageFailedGetCart, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"cartItems": items}, fiber.StatusOK, "")
}

func (h *cartHandler) ClearCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.cartService.ClearCart(c.Context(), userID); err != nil {
		return fail(c, domain.MessageFailedClearCart, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearCart)
}

func (h *cartHandler) RemoveFromCart(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.cartService.RemoveFromCart(c.Context(), userID, c.Params("recipeId")); err != nil {
		return fail(c, domain.MessageFailedRemoveItem, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveItem)
}

func (h *cartHandler) UpdateCartItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UpdateCartItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	item, err := h.cartService.UpdateCartItem(c.Context(), userID, c.Params("recipeId"), *req)
	if err != nil {
		return fail(c, domain.MessageFailedUpdateItem, err)
	}
	return presenters.SuccessResponse(c, fiber.Map{"cartItem": item}, fiber.StatusOK, domain.MessageSuccessUpdateItem)
}
