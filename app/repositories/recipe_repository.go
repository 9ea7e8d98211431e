package repositories

import (
	"context"

	"github.com/cookingblog/go-cookingblog/app/models"
	"gorm.io/gorm"
)

type RecipeRepositoryImpl interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetAll(ctx context.Context, limit int) ([]models.Recipe, error)
	GetLatest(ctx context.Context, limit int) ([]models.Recipe, error)
	GetByCategory(ctx context.Context, category string, limit int) ([]models.Recipe, error)
	GetByID(ctx context.Context, id uint) (*models.Recipe, error)
	Search(ctx context.Context, term string) ([]models.Recipe, error)
	Count(ctx context.Context) (int64, error)
	GetAtOffset(ctx context.Context, offset int) (*models.Recipe, error)
}

type recipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) RecipeRepositoryImpl {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetAll(ctx context.Context, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.WithContext(ctx).Limit(limit).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetLatest orders by the auto-increment id, newest first.
func (r *recipeRepository) GetLatest(ctx context.Context, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetByCategory matches the free-text category label exactly. The
// column is case-sensitive, so "thai" and "Thai" are different labels.
func (r *recipeRepository) GetByCategory(ctx context.Context, category string, limit int) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetByID(ctx context.Context, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).First(&recipe, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}

// Search runs against the FULLTEXT index created by the migration. The
// indexed columns use a binary collation, so the match is
// diacritic-sensitive.
func (r *recipeRepository) Search(ctx context.Context, term string) ([]models.Recipe, error) {
	var recipes []models.Recipe
	if err := r.db.WithContext(ctx).
		Where("MATCH(name, description) AGAINST(? IN NATURAL LANGUAGE MODE)", term).
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) GetAtOffset(ctx context.Context, offset int) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.db.WithContext(ctx).Offset(offset).First(&recipe).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &recipe, nil
}
