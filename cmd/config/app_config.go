package config

import (
	"FoodHub/internal/api/handlers"
	"FoodHub/internal/api/routes"
	"FoodHub/internal/middleware"
	"FoodHub/internal/utils"
	"FoodHub/internal/utils/mailing"
	"FoodHub/internal/utils/storage"
	"FoodHub/pkg/cart"
	"FoodHub/pkg/category"
	"FoodHub/pkg/jwt"
	"FoodHub/pkg/midtrans"
	"FoodHub/pkg/order"
	"FoodHub/pkg/recipe"
	"FoodHub/pkg/user"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: utils.GetConfig("IsProd") != "true",
		BodyLimit:         10 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	logPath := utils.GetConfig("LOG_PATH")
	err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		logPath,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("DB_TIMEZONE"),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	mailer := mailing.NewMailer(mailing.LoadMailConfig())

	// Repository
	userRepository := user.NewUserRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	cartRepository := cart.NewCartRepository(db)
	orderRepository := order.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	midtransService := midtrans.NewMidtransService()
	userService := user.NewUserService(userRepository, jwtService, s3, mailer)
	categoryService := category.NewCategoryService(categoryRepository, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, categoryRepository, s3)
	cartService := cart.NewCartService(cartRepository)
	orderService := order.NewOrderService(orderRepository, categoryRepository, midtransService)

	if err := userService.SeedAdmin(
		context.Background(),
		utils.GetConfig("ADMIN_NAME"),
		utils.GetConfig("ADMIN_EMAIL"),
		utils.GetConfig("ADMIN_PASSWORD"),
	); err != nil {
		return nil, err
	}

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	cartHandler := handlers.NewCartHandler(cartService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	midtransHandler := handlers.NewMidtransHandler(orderService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		CategoryHandler: categoryHandler,
		RecipeHandler:   recipeHandler,
		CartHandler:     cartHandler,
		OrderHandler:    orderHandler,
		MidtransHandler: midtransHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
		UserRepository:  userRepository,
	}
	routesConfig.Setup()
	return app, nil
}
