package services

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/cookingblog/go-cookingblog/app/models"
	"github.com/cookingblog/go-cookingblog/app/repositories"
	"github.com/go-playground/validator/v10"
)

// Page-size policy: preview sections show 5 entries, browse pages 20.
const (
	previewLimit = 5
	browseLimit  = 20
)

// FeaturedCategory is one homepage preview strip.
type FeaturedCategory struct {
	Name    string
	Recipes []models.Recipe
}

// HomepageData is the composite data set behind the front page.
type HomepageData struct {
	Categories []models.Category
	Latest     []models.Recipe
	Featured   []FeaturedCategory
}

// SubmitRecipeForm carries the submission form fields. Only the name
// is required; category deliberately stays free text and may be empty
// or unknown to the category table.
type SubmitRecipeForm struct {
	Name        string `validate:"required"`
	Description string
	Email       string
	Ingredients []string
	Category    string
}

// RecipeUpload is an optional image attached to a submission.
type RecipeUpload struct {
	Filename string
	File     io.Reader
}

type RecipeServiceImpl interface {
	Homepage(ctx context.Context) (*HomepageData, error)
	CategoriesIndex(ctx context.Context) ([]models.Category, error)
	CategoryDetail(ctx context.Context, label string) ([]models.Recipe, error)
	RecipeDetail(ctx context.Context, id uint) (*models.Recipe, error)
	SearchRecipes(ctx context.Context, term string) ([]models.Recipe, error)
	Latest(ctx context.Context) ([]models.Recipe, error)
	Random(ctx context.Context) (*models.Recipe, error)
	Submit(ctx context.Context, form SubmitRecipeForm, upload *RecipeUpload) (*models.Recipe, error)
}

type recipeService struct {
	categoryRepo repositories.CategoryRepositoryImpl
	recipeRepo   repositories.RecipeRepositoryImpl
	images       ImageStore
	featured     []string
	validate     *validator.Validate

	// Injected for deterministic tests.
	now     func() time.Time
	randInt func(n int) int
}

func NewRecipeService(
	c repositories.CategoryRepositoryImpl,
	r repositories.RecipeRepositoryImpl,
	images ImageStore,
	featured []string,
) RecipeServiceImpl {
	return &recipeService{
		categoryRepo: c,
		recipeRepo:   r,
		images:       images,
		featured:     featured,
		validate:     validator.New(),
		now:          time.Now,
		randInt:      rand.Intn,
	}
}

func (s *recipeService) Homepage(ctx context.Context) (*HomepageData, error) {
	categories, err := s.categoryRepo.GetAll(ctx, previewLimit)
	if err != nil {
		return nil, &BackendError{Op: "homepage: get categories", Err: err}
	}

	latest, err := s.recipeRepo.GetLatest(ctx, previewLimit)
	if err != nil {
		return nil, &BackendError{Op: "homepage: get latest recipes", Err: err}
	}

	featured := make([]FeaturedCategory, 0, len(s.featured))
	for _, name := range s.featured {
		recipes, err := s.recipeRepo.GetByCategory(ctx, name, previewLimit)
		if err != nil {
			return nil, &BackendError{Op: fmt.Sprintf("homepage: get %s recipes", name), Err: err}
		}
		featured = append(featured, FeaturedCategory{Name: name, Recipes: recipes})
	}

	return &HomepageData{
		Categories: categories,
		Latest:     latest,
		Featured:   featured,
	}, nil
}

func (s *recipeService) CategoriesIndex(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx, browseLimit)
	if err != nil {
		return nil, &BackendError{Op: "get categories", Err: err}
	}
	return categories, nil
}

// CategoryDetail treats the path id as a category label, not a
// Category row id. Unknown labels yield an empty list, not an error.
func (s *recipeService) CategoryDetail(ctx context.Context, label string) ([]models.Recipe, error) {
	recipes, err := s.recipeRepo.GetByCategory(ctx, label, browseLimit)
	if err != nil {
		return nil, &BackendError{Op: "get recipes by category", Err: err}
	}
	return recipes, nil
}

// RecipeDetail returns nil, nil for an unknown id; the view renders an
// empty page rather than an error.
func (s *recipeService) RecipeDetail(ctx context.Context, id uint) (*models.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, &BackendError{Op: "get recipe", Err: err}
	}
	return recipe, nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, term string) ([]models.Recipe, error) {
	recipes, err := s.recipeRepo.Search(ctx, term)
	if err != nil {
		return nil, &BackendError{Op: "search recipes", Err: err}
	}
	return recipes, nil
}

func (s *recipeService) Latest(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.recipeRepo.GetLatest(ctx, browseLimit)
	if err != nil {
		return nil, &BackendError{Op: "get latest recipes", Err: err}
	}
	return recipes, nil
}

// Random draws a uniform offset in [0, count). Count and fetch are two
// separate queries; a write landing in between can leave the offset
// stale, which is acceptable because recipes are never deleted.
func (s *recipeService) Random(ctx context.Context) (*models.Recipe, error) {
	count, err := s.recipeRepo.Count(ctx)
	if err != nil {
		return nil, &BackendError{Op: "count recipes", Err: err}
	}
	if count == 0 {
		return nil, nil
	}

	offset := s.randInt(int(count))
	recipe, err := s.recipeRepo.GetAtOffset(ctx, offset)
	if err != nil {
		return nil, &BackendError{Op: "get recipe at offset", Err: err}
	}
	return recipe, nil
}

// Submit runs the submission workflow: optional image upload, then
// insert. The stored image name is the current unix-millisecond
// timestamp prepended to the original filename. If the insert fails
// after the image was written, the file is left behind; nothing rolls
// back.
func (s *recipeService) Submit(ctx context.Context, form SubmitRecipeForm, upload *RecipeUpload) (*models.Recipe, error) {
	if err := s.validate.Struct(&form); err != nil {
		return nil, &SubmissionError{Stage: StageValidate, Err: err}
	}

	var imageName string
	if upload != nil {
		imageName = fmt.Sprintf("%d%s", s.now().UnixMilli(), upload.Filename)
		if err := s.images.Save(imageName, upload.File); err != nil {
			return nil, &SubmissionError{Stage: StageUpload, Err: err}
		}
	}

	recipe := &models.Recipe{
		Name:        form.Name,
		Description: form.Description,
		Email:       form.Email,
		Ingredients: form.Ingredients,
		Category:    form.Category,
		Image:       imageName,
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, &SubmissionError{Stage: StageInsert, Err: err}
	}

	return recipe, nil
}
