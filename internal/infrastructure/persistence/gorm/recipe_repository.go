package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pantrychef/pantrychef/internal/domain/recipe"
	"github.com/pantrychef/pantrychef/internal/ports/outbound"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecipeRepository implements outbound.RecipeRepository using GORM
type RecipeRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecipeRepository creates a new GORM recipe repository
func NewRecipeRepository(db *gorm.DB, logger *zap.Logger) outbound.RecipeRepository {
	return &RecipeRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a recipe and its tutorials in a single transaction
func (r *RecipeRepository) Create(ctx context.Context, rec *recipe.Recipe) error {
	model := RecipeToModel(rec)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Error("failed to create recipe", zap.Error(err))
		return err
	}
	return nil
}

// FindByID retrieves a recipe with its tutorials
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel
	err := r.db.WithContext(ctx).
		Preload("Tutorials").
		First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, recipe.ErrNotFound
		}
		return nil, err
	}
	return ModelToRecipe(&model), nil
}

// FindByUserID retrieves all recipes owned by a user, newest first
func (r *RecipeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Preload("Tutorials").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	recipes := make([]*recipe.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, ModelToRecipe(&models[i]))
	}
	return recipes, nil
}

// AddFavorite records that a user saved a recipe
func (r *RecipeRepository) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	fav := FavoriteModel{UserID: userID, RecipeID: recipeID}
	if err := r.db.WithContext(ctx).Create(&fav).Error; err != nil {
		r.logger.Error("failed to add favorite", zap.Error(err))
		return err
	}
	return nil
}

// IsFavorite reports whether a user has already saved a recipe
func (r *RecipeRepository) IsFavorite(ctx context.Context, userID, recipeID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&FavoriteModel{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindFavorites retrieves the recipes a user has saved, newest first
func (r *RecipeRepository) FindFavorites(ctx context.Context, userID uuid.UUID) ([]*recipe.Recipe, error) {
	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Preload("Tutorials").
		Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	recipes := make([]*recipe.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, ModelToRecipe(&models[i]))
	}
	return recipes, nil
}
