package repository

import (
	"context"

	"recipebook/internal/models"
	"recipebook/internal/observability"

	"gorm.io/gorm"
)

// RecipeRepository defines the interface for recipe data operations
type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	List(ctx context.Context) ([]models.Recipe, error)
	Count(ctx context.Context) (int64, error)
}

// recipeRepository implements RecipeRepository
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create inserts the recipe inside a transaction so a failed write leaves
// no partial state, then reloads the owning user for the response body.
func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	defer observability.TrackQuery("insert", "recipes")()

	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(recipe).Error
	}); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Preload("User").First(recipe, recipe.ID).Error
}

// List returns every recipe with its owner eagerly loaded. Listing is not
// filtered by owner: all authenticated users see all recipes.
func (r *recipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	defer observability.TrackQuery("select", "recipes")()

	recipes := make([]models.Recipe, 0)
	if err := r.db.WithContext(ctx).Preload("User").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Count(ctx context.Context) (int64, error) {
	defer observability.TrackQuery("count", "recipes")()

	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
