// Package recipe implements recipe generation and retrieval use cases
package recipe

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	recipedomain "github.com/pantrychef/pantrychef/internal/domain/recipe"
	userdomain "github.com/pantrychef/pantrychef/internal/domain/user"
	"github.com/pantrychef/pantrychef/internal/ports/outbound"
	apperrors "github.com/pantrychef/pantrychef/pkg/errors"
	"go.uber.org/zap"
)

const (
	maxIngredientsLength = 500
	maxDishNameLength    = 100
)

// TutorialDTO is the outward representation of a video tutorial
type TutorialDTO struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	VideoID      string `json:"video_id"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url"`
	ChannelName  string `json:"channel_name"`
}

// RecipeDTO is the outward representation of a recipe
type RecipeDTO struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Instructions string        `json:"instructions"`
	Ingredients  string        `json:"ingredients"`
	ImageURL     string        `json:"image_url"`
	UserID       string        `json:"user_id"`
	CreatedAt    time.Time     `json:"created_at"`
	Tutorials    []TutorialDTO `json:"tutorials"`
}

// GenerateInput is the request to the generation orchestrator.
// Exactly one of Ingredients or DishName must be set.
type GenerateInput struct {
	Ingredients string
	DishName    string
}

// Service implements the recipe use cases
type Service struct {
	recipes   outbound.RecipeRepository
	users     outbound.UserRepository
	generator outbound.RecipeGenerator
	videos    outbound.VideoSearcher
	images    outbound.ImageFinder
	maxVideos int
	logger    *zap.Logger
}

// NewService creates a new recipe service
func NewService(
	recipes outbound.RecipeRepository,
	users outbound.UserRepository,
	generator outbound.RecipeGenerator,
	videos outbound.VideoSearcher,
	images outbound.ImageFinder,
	maxVideos int,
	logger *zap.Logger,
) *Service {
	if maxVideos <= 0 {
		maxVideos = 3
	}
	return &Service{
		recipes:   recipes,
		users:     users,
		generator: generator,
		videos:    videos,
		images:    images,
		maxVideos: maxVideos,
		logger:    logger,
	}
}

// Generate runs the full generation flow: prompt the model, enrich
// with tutorials and an image, persist, and return the stored recipe.
// Enrichment failures degrade gracefully; generation and persistence
// failures abort the whole operation.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, input GenerateInput) (*RecipeDTO, error) {
	input.Ingredients = strings.TrimSpace(input.Ingredients)
	input.DishName = strings.TrimSpace(input.DishName)

	prompt, err := buildPrompt(input)
	if err != nil {
		return nil, err
	}

	generated, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("recipe generation failed", zap.Error(err))
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "failed to generate recipe")
	}

	// dish-name requests take the model's ingredient list, keeping the
	// requested dish name when the model omits it
	ingredients := input.Ingredients
	if ingredients == "" {
		ingredients = strings.Join(generated.Ingredients, "\n")
		if ingredients == "" {
			ingredients = input.DishName
		}
	}
	instructions := strings.Join(generated.Instructions, "\n")

	tutorials := s.findTutorials(ctx, generated.DishName)
	imageURL := s.findImage(ctx, generated.DishName)

	rec, err := recipedomain.NewRecipe(generated.DishName, instructions, ingredients, imageURL, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInternal, "generated recipe is invalid")
	}
	rec.AttachTutorials(tutorials)

	if err := s.recipes.Create(ctx, rec); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to save recipe")
	}

	s.logger.Info("recipe generated",
		zap.String("recipe_id", rec.ID().String()),
		zap.String("user_id", userID.String()),
		zap.Int("tutorials", len(tutorials)),
	)
	dto := toDTO(rec)
	return &dto, nil
}

// ListByUser returns the caller's recipes
func (s *Service) ListByUser(ctx context.Context, userID uuid.UUID) ([]RecipeDTO, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			return nil, apperrors.New(apperrors.CodeUserNotFound, "user not found")
		}
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to look up user")
	}

	recipes, err := s.recipes.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list recipes")
	}
	return toDTOs(recipes), nil
}

// Favorite marks one of the caller's own recipes as a favorite. The
// returned flag is true when a new favorite was recorded, false when
// the recipe was already favorited.
func (s *Service) Favorite(ctx context.Context, userID, recipeID uuid.UUID) (*RecipeDTO, bool, error) {
	rec, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, recipedomain.ErrNotFound) {
			return nil, false, apperrors.New(apperrors.CodeRecipeNotFound, "recipe not found")
		}
		return nil, false, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to look up recipe")
	}

	if rec.UserID() != userID {
		return nil, false, apperrors.New(apperrors.CodeForbidden, "can only favorite your own recipes")
	}

	already, err := s.recipes.IsFavorite(ctx, userID, recipeID)
	if err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to check favorite")
	}
	dto := toDTO(rec)
	if already {
		return &dto, false, nil
	}

	if err := s.recipes.AddFavorite(ctx, userID, recipeID); err != nil {
		return nil, false, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to add favorite")
	}
	return &dto, true, nil
}

// ListFavorites returns the caller's favorited recipes
func (s *Service) ListFavorites(ctx context.Context, userID uuid.UUID) ([]RecipeDTO, error) {
	recipes, err := s.recipes.FindFavorites(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeDatabaseError, "failed to list favorites")
	}
	return toDTOs(recipes), nil
}

// buildPrompt validates the input and builds the model prompt.
// Validation runs before any outbound call. Fields must already be
// trimmed.
func buildPrompt(input GenerateInput) (string, error) {
	ingredients := input.Ingredients
	dishName := input.DishName

	switch {
	case ingredients == "" && dishName == "":
		return "", apperrors.New(apperrors.CodeValidationFailed, "either ingredients or dish_name is required")
	case ingredients != "" && dishName != "":
		return "", apperrors.New(apperrors.CodeValidationFailed, "provide either ingredients or dish_name, not both")
	case len(ingredients) > maxIngredientsLength:
		return "", apperrors.Newf(apperrors.CodeValidationFailed, "ingredients must be at most %d characters", maxIngredientsLength)
	case len(dishName) > maxDishNameLength:
		return "", apperrors.Newf(apperrors.CodeValidationFailed, "dish_name must be at most %d characters", maxDishNameLength)
	}

	if ingredients != "" {
		return fmt.Sprintf("Ingredients available: %s. Suggest the best dish and preparation steps.", ingredients), nil
	}
	return fmt.Sprintf("Provide the ingredients and cooking instructions for: %s", dishName), nil
}

// findTutorials searches for tutorial videos, degrading to an empty
// list on failure
func (s *Service) findTutorials(ctx context.Context, dishName string) []recipedomain.Tutorial {
	results, err := s.videos.Search(ctx, dishName+" recipe tutorial", s.maxVideos)
	if err != nil {
		s.logger.Warn("tutorial search failed", zap.String("dish", dishName), zap.Error(err))
		return nil
	}
	tutorials := make([]recipedomain.Tutorial, 0, len(results))
	for _, r := range results {
		tutorials = append(tutorials, recipedomain.NewTutorial(r.Title, r.VideoID, r.ThumbnailURL, r.ChannelName))
	}
	return tutorials
}

// findImage looks up a meal image, falling back to a placeholder
// containing the dish name
func (s *Service) findImage(ctx context.Context, dishName string) string {
	imageURL, err := s.images.FindMealImage(ctx, dishName)
	if err != nil {
		s.logger.Warn("meal image lookup failed", zap.String("dish", dishName), zap.Error(err))
		imageURL = ""
	}
	if imageURL == "" {
		return "https://placehold.co/600x400?text=" + url.QueryEscape(dishName)
	}
	return imageURL
}

func toDTO(r *recipedomain.Recipe) RecipeDTO {
	tutorials := make([]TutorialDTO, 0, len(r.Tutorials()))
	for _, t := range r.Tutorials() {
		tutorials = append(tutorials, TutorialDTO{
			ID:           t.ID().String(),
			Title:        t.Title(),
			VideoID:      t.VideoID(),
			URL:          t.URL(),
			ThumbnailURL: t.ThumbnailURL(),
			ChannelName:  t.ChannelName(),
		})
	}
	return RecipeDTO{
		ID:           r.ID().String(),
		Name:         r.Name(),
		Instructions: r.Instructions(),
		Ingredients:  r.Ingredients(),
		ImageURL:     r.ImageURL(),
		UserID:       r.UserID().String(),
		CreatedAt:    r.CreatedAt(),
		Tutorials:    tutorials,
	}
}

func toDTOs(recipes []*recipedomain.Recipe) []RecipeDTO {
	dtos := make([]RecipeDTO, 0, len(recipes))
	for _, r := range recipes {
		dtos = append(dtos, toDTO(r))
	}
	return dtos
}
