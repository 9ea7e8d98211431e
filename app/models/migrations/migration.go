package migrations

import (
	"fmt"

	"github.com/cookingblog/go-cookingblog/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Recipe{},
	); err != nil {
		return fmt.Errorf("automigrate failed: %w", err)
	}

	if err := ensureRecipeSearchIndex(db); err != nil {
		return err
	}

	return nil
}

// ensureRecipeSearchIndex backs the search page. The columns carry a
// binary collation (see models.Recipe), which keeps the index
// diacritic-sensitive: "café" and "cafe" index as different terms.
func ensureRecipeSearchIndex(db *gorm.DB) error {
	if db.Migrator().HasIndex(&models.Recipe{}, "idx_recipes_search") {
		return nil
	}

	if err := db.Exec(
		"ALTER TABLE recipes ADD FULLTEXT INDEX idx_recipes_search (name, description)",
	).Error; err != nil {
		return fmt.Errorf("failed to create recipe full-text index: %w", err)
	}
	return nil
}
