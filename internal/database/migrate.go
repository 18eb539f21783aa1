package database

import (
	"fmt"
	"log"

	"github.com/pageza/ourkitchen/backend/internal/model"
	"gorm.io/gorm"
)

// Models lists every table owned by the application, in dependency order.
func Models() []interface{} {
	return []interface{}{
		&model.Ingredient{},
		&model.Recipe{},
		&model.RecipeStep{},
		&model.RecipeIngredient{},
	}
}

// RunMigrations creates or updates the schema for all models
func RunMigrations(db *gorm.DB) error {
	log.Printf("[Database] Running auto-migration on %s", db.Dialector.Name())
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
