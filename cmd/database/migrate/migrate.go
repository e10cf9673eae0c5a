package migration

import (
	"FoodHub/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Models lists every table in dependency-free order; the join table
// category_recipes is created with Category.
var Models = []any{
	&entities.User{},
	&entities.Recipe{},
	&entities.Category{},
	&entities.CartItem{},
	&entities.Order{},
}

func Migrate(db *gorm.DB) error {
	for _, model := range Models {
		if err := db.AutoMigrate(model); err != nil {
			log.Errorf("Error migrating %T: %v", model, err)
			return err
		}
	}

	log.Info("Database migration complete")
	return nil
}
