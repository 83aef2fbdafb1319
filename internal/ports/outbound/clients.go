package outbound

import "context"

// GeneratedRecipe is the structured output of the recipe generator
type GeneratedRecipe struct {
	DishName     string   `json:"dish_name"`
	Instructions []string `json:"instructions"`
	Ingredients  []string `json:"ingredients_list"`
}

// RecipeGenerator produces a structured recipe from a natural language prompt
type RecipeGenerator interface {
	Generate(ctx context.Context, prompt string) (*GeneratedRecipe, error)
}

// VideoResult is a single video hit from a tutorial search
type VideoResult struct {
	VideoID      string
	Title        string
	ThumbnailURL string
	ChannelName  string
}

// VideoSearcher finds tutorial videos for a dish
type VideoSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]VideoResult, error)
}

// ImageFinder looks up a representative image for a dish
type ImageFinder interface {
	FindMealImage(ctx context.Context, dishName string) (string, error)
}
