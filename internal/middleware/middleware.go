package middleware

import (
	"FoodHub/domain"
	"FoodHub/internal/api/presenters"
	"FoodHub/internal/utils"
	"FoodHub/pkg/jwt"
	"FoodHub/pkg/user"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

const (
	LocalsUserID = "user_id"
	LocalsAuth   = "auth"
	TokenCookie  = "token"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService, userRepository user.UserRepository) fiber.Handler
		AdminMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:     utils.GetConfig("CORS_ORIGINS"),
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
	})
}

// AuthMiddleware resolves the caller once per request: the session token
// names the user, and the user row supplies the admin flag.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService, userRepository user.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := sessionToken(c)
		if token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrTokenNotFound)
		}

		userID, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, err)
		}

		u, err := userRepository.GetUserByID(c.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, err)
			}
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, err)
		}

		c.Locals(LocalsUserID, userID)
		c.Locals(LocalsAuth, domain.AuthContext{UserID: userID, IsAdmin: u.Admin})
		return c.Next()
	}
}

func (m *middleware) AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth, ok := c.Locals(LocalsAuth).(domain.AuthContext)
		if !ok {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageUnauthorized, domain.ErrTokenNotFound)
		}
		if !auth.IsAdmin {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageAdminAccessRequired, domain.ErrAdminRequired)
		}
		return c.Next()
	}
}

func sessionToken(c *fiber.Ctx) string {
	if token := c.Cookies(TokenCookie); token != "" {
		return token
	}
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
