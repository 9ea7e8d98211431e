package seeders

import (
	"github.com/cookingblog/go-cookingblog/app/db/fakers"
	"github.com/cookingblog/go-cookingblog/app/models"
	"gorm.io/gorm"
)

// The category set the site launched with.
var categories = []models.Category{
	{Name: "Thai", Image: "thai-food.jpg"},
	{Name: "American", Image: "american-food.jpg"},
	{Name: "Chinese", Image: "chinese-food.jpg"},
	{Name: "Mexican", Image: "mexican-food.jpg"},
	{Name: "Indian", Image: "indian-food.jpg"},
	{Name: "Spanish", Image: "spanish-food.jpg"},
}

// DBSeed inserts the launch categories (idempotently) and, when asked,
// a number of faker-built demo recipes spread over those categories.
func DBSeed(db *gorm.DB, recipeCount int) error {
	for i := range categories {
		category := categories[i]
		if err := db.FirstOrCreate(&category, models.Category{Name: category.Name}).Error; err != nil {
			return err
		}
	}

	for i := 0; i < recipeCount; i++ {
		recipe := fakers.RecipeFaker(categories[i%len(categories)].Name)
		if err := db.Create(recipe).Error; err != nil {
			return err
		}
	}

	return nil
}
