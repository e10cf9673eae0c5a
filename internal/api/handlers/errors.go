package handlers

import (
	"FoodHub/domain"
	"FoodHub/internal/api/presenters"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var (
	badRequestErrors = []error{
		domain.ErrParseUUID,
		domain.ErrEmailAlreadyExists,
		domain.ErrInvalidCredentials,
		domain.ErrUserDoesNotExist,
		domain.ErrInvalidVerification,
		domain.ErrInvalidResetToken,
		domain.ErrEmailUsedByAnotherUser,
		domain.ErrImageRequired,
		domain.ErrInvalidImage,
		domain.ErrInvalidPrice,
		domain.ErrInvalidIngredients,
		domain.ErrNoIngredients,
		domain.ErrInvalidQuantity,
		domain.ErrInvalidOrderStatus,
		domain.ErrEmptyCart,
		domain.ErrPaymentNotVerified,
	}
	unauthorizedErrors = []error{
		domain.ErrNotAdminAccount,
		domain.ErrTokenNotFound,
		domain.ErrTokenInvalid,
		domain.ErrTokenExpired,
	}
	notFoundErrors = []error{
		domain.ErrUserNotFound,
		domain.ErrCategoryNotFound,
		domain.ErrRecipeNotFound,
		domain.ErrCartItemNotFound,
		domain.ErrOrderNotFound,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// statusFor maps service errors to HTTP status codes. Anything unknown is a 500.
func statusFor(err error) int {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors), isAny(err, badRequestErrors):
		return fiber.StatusBadRequest
	case isAny(err, unauthorizedErrors):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrAdminRequired):
		return fiber.StatusForbidden
	case isAny(err, notFoundErrors):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrPaymentFailed):
		return fiber.StatusBadGateway
	case errors.Is(err, domain.ErrPaymentsDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, message string, err error) error {
	return presenters.ErrorResponse(c, statusFor(err), message, err)
}
