package presenters

import (
	"FoodHub/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// SuccessResponse writes {success: true, message, ...data}. Entries of a
// fiber.Map are lifted to the top level so clients read e.g. body.categories.
func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	body := fiber.Map{"success": true}
	if message != "" {
		body["message"] = message
	}
	switch d := data.(type) {
	case nil:
	case fiber.Map:
		for k, v := range d {
			body[k] = v
		}
	default:
		body["data"] = d
	}
	return c.Status(statusCode).JSON(body)
}

// ErrorResponse writes {success: false, message, error}. Server errors are
// logged and their detail is not returned.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if statusCode >= fiber.StatusInternalServerError {
		if err != nil {
			log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		}
		body["message"] = domain.MessageInternalServerError
	} else if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(statusCode).JSON(body)
}
