package main

import (
	"FoodHub/cmd/config"
	migration "FoodHub/cmd/database/migrate"
	"FoodHub/internal/utils"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	flag.Parse()

	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if *migrateOnly {
		return
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to start app: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + utils.GetConfig("PORT")); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
