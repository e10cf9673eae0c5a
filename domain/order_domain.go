package domain

import "errors"

const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusOutForDelivery = "outfordelivery"
	OrderStatusDelivered      = "delivered"
)

// OrderStatuses is the fixed set accepted by the admin status update. Any
// member may overwrite any other; there is no transition graph.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

var (
	MessageSuccessCreateOrder       = "order created successfully"
	MessageSuccessUpdateOrderStatus = "order status updated"

	MessageFailedCreateOrder       = "failed to create order"
	MessageFailedGetOrders         = "failed to get orders"
	MessageFailedUpdateOrderStatus = "failed to update order status"
	MessageFailedExportOrders      = "failed to export orders"

	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("invalid status provided")
	ErrEmptyCart          = errors.New("cart items are required")
)

type (
	CheckoutItemRequest struct {
		RecipeID string  `json:"recipeId" validate:"required"`
		Name     string  `json:"name" validate:"required"`
		Image    string  `json:"image" validate:"required"`
		Price    float64 `json:"price" validate:"gte=0"`
		Quantity int     `json:"quantity" validate:"min=1"`
	}

	DeliveryDetailsRequest struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Address string `json:"address" validate:"required"`
		City    string `json:"city" validate:"required"`
	}

	CheckoutRequest struct {
		CategoryID      string                 `json:"categoryId" validate:"required,uuid"`
		CartItems       []CheckoutItemRequest  `json:"cartItems" validate:"required,min=1,dive"`
		DeliveryDetails DeliveryDetailsRequest `json:"deliveryDetails" validate:"required"`
	}

	UpdateOrderStatusRequest struct {
		Status string `json:"status"`
	}
)
