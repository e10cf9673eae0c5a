package routes

import (
	"FoodHub/internal/api/handlers"
	"FoodHub/internal/middleware"
	"FoodHub/pkg/jwt"
	"FoodHub/pkg/user"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	CategoryHandler handlers.CategoryHandler
	RecipeHandler   handlers.RecipeHandler
	CartHandler     handlers.CartHandler
	OrderHandler    handlers.OrderHandler
	MidtransHandler handlers.MidtransHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
	UserRepository  user.UserRepository
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Category()
	c.Recipe()
	c.Cart()
	c.Order()
	c.GuestRoute()
}

func (c *Config) auth() fiber.Handler {
	return c.Middleware.AuthMiddleware(c.JWTService, c.UserRepository)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/user")
	// user routes
	{
		user.Post("/signup", c.UserHandler.Signup)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/admin/login", c.UserHandler.AdminLogin)
		user.Post("/verify-email", c.UserHandler.VerifyEmail)
		user.Post("/logout", c.UserHandler.Logout)
		user.Post("/forgot-password", c.UserHandler.ForgotPassword)
		user.Post("/reset-password/:token", c.UserHandler.ResetPassword)
		user.Get("/check-auth", c.auth(), c.UserHandler.CheckAuth)
		user.Put("/profile/update", c.auth(), c.UserHandler.UpdateProfile)
	}
}

func (c *Config) Category() {
	category := c.App.Group("/api/v1/category", c.auth())
	admin := c.Middleware.AdminMiddleware()

	category.Get("", c.CategoryHandler.GetCategories)
	category.Get("/search", c.CategoryHandler.SearchCategories)
	category.Get("/:id", c.CategoryHandler.GetCategory)

	category.Post("", admin, c.CategoryHandler.CreateCategory)
	category.Put("/:id", admin, c.CategoryHandler.UpdateCategory)
	category.Delete("/:id", admin, c.CategoryHandler.DeleteCategory)
}

func (c *Config) Recipe() {
	recipe := c.App.Group("/api/v1/recipe", c.auth(), c.Middleware.AdminMiddleware())

	recipe.Post("", c.RecipeHandler.CreateRecipe)
	recipe.Put("/:id", c.RecipeHandler.UpdateRecipe)
	recipe.Delete("/:id", c.RecipeHandler.DeleteRecipe)
}

func (c *Config) Cart() {
	cart := c.App.Group("/api/v1/cart", c.auth())

	cart.Post("", c.CartHandler.AddToCart)
	cart.Get("", c.CartHandler.GetCartItems)
	cart.Delete("", c.CartHandler.ClearCart)
	cart.Put("/:recipeId", c.CartHandler.UpdateCartItem)
	cart.Delete("/:recipeId", c.CartHandler.RemoveFromCart)
}

func (c *Config) Order() {
	order := c.App.Group("/api/v1/order", c.auth())
	admin := c.Middleware.AdminMiddleware()

	order.Get("/orders", c.OrderHandler.GetOrders)
	order.Post("/orders", c.OrderHandler.CreateOrder)

	order.Get("/admin/orders", admin, c.OrderHandler.GetAllOrders)
	order.Get("/admin/orders/export", admin, c.OrderHandler.ExportOrders)
	order.Put("/admin/orders/:id/status", admin, c.OrderHandler.UpdateOrderStatus)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
