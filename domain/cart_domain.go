package domain

import "errors"

var (
	MessageSuccessAddToCart  = "item added to cart"
	MessageSuccessClearCart  = "cart cleared"
	MessageSuccessRemoveItem = "item removed from cart"
	MessageSuccessUpdateItem = "cart item updated"

	MessageFailedAddToCart  = "failed to add item to cart"
	MessageFailedGetCart    = "failed to get cart"
	MessageFailedClearCart  = "failed to clear cart"
	MessageFailedRemoveItem = "failed to remove item from cart"
	MessageFailedUpdateItem = "failed to update cart item"

	ErrCartItemNotFound = errors.New("cart item not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

type (
	AddToCartRequest struct {
		RecipeID string  `json:"recipeId" validate:"required,uuid"`
		Name     string  `json:"name" validate:"required"`
		Image    string  `json:"image" validate:"required"`
		Price    float64 `json:"price" validate:"gt=0"`
		Quantity int     `json:"quantity" validate:"min=1"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity"`
	}
)
