package fakers

import (
	"math/rand"

	"github.com/cookingblog/go-cookingblog/app/models"
	"github.com/go-faker/faker/v4"
)

// RecipeFaker builds a demo recipe for the given category label.
func RecipeFaker(category string) *models.Recipe {
	numIngredients := rand.Intn(6) + 3
	ingredients := make(models.IngredientList, numIngredients)
	for i := range ingredients {
		ingredients[i] = faker.Word()
	}

	return &models.Recipe{
		Name:        faker.Sentence(),
		Description: faker.Paragraph(),
		Email:       faker.Email(),
		Ingredients: ingredients,
		Category:    category,
	}
}
