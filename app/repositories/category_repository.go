package repositories

import (
	"context"

	"github.com/cookingblog/go-cookingblog/app/models"
	"gorm.io/gorm"
)

type CategoryRepositoryImpl interface {
	Create(ctx context.Context, category *models.Category) error
	GetAll(ctx context.Context, limit int) ([]models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryImpl {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// GetAll returns categories in storage order, capped at limit.
func (r *categoryRepository) GetAll(ctx context.Context, limit int) ([]models.Category, error) {
	var categories []models.Category
	err := r.db.WithContext(ctx).Limit(limit).Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
