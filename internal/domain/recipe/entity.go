// Package recipe defines the recipe domain entities
package recipe

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recipe represents a stored recipe with its enrichment data
type Recipe struct {
	id           uuid.UUID
	name         string
	instructions string
	ingredients  string
	imageURL     string
	userID       uuid.UUID
	createdAt    time.Time
	tutorials    []Tutorial
}

// Tutorial is a video tutorial attached to a recipe
type Tutorial struct {
	id           uuid.UUID
	title        string
	videoID      string
	thumbnailURL string
	channelName  string
}

// NewRecipe creates a recipe owned by the given user
func NewRecipe(name, instructions, ingredients, imageURL string, userID uuid.UUID) (*Recipe, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(instructions) == "" {
		return nil, ErrInstructionsRequired
	}
	if userID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	return &Recipe{
		id:           uuid.New(),
		name:         name,
		instructions: instructions,
		ingredients:  ingredients,
		imageURL:     imageURL,
		userID:       userID,
		createdAt:    time.Now(),
	}, nil
}

// ReconstructRecipe rebuilds a recipe from persisted state
func ReconstructRecipe(id uuid.UUID, name, instructions, ingredients, imageURL string, userID uuid.UUID, createdAt time.Time, tutorials []Tutorial) *Recipe {
	return &Recipe{
		id:           id,
		name:         name,
		instructions: instructions,
		ingredients:  ingredients,
		imageURL:     imageURL,
		userID:       userID,
		createdAt:    createdAt,
		tutorials:    tutorials,
	}
}

// NewTutorial creates a tutorial from video metadata
func NewTutorial(title, videoID, thumbnailURL, channelName string) Tutorial {
	return Tutorial{
		id:           uuid.New(),
		title:        title,
		videoID:      videoID,
		thumbnailURL: thumbnailURL,
		channelName:  channelName,
	}
}

// ReconstructTutorial rebuilds a tutorial from persisted state
func ReconstructTutorial(id uuid.UUID, title, videoID, thumbnailURL, channelName string) Tutorial {
	return Tutorial{
		id:           id,
		title:        title,
		videoID:      videoID,
		thumbnailURL: thumbnailURL,
		channelName:  channelName,
	}
}

// AttachTutorials sets the tutorials for this recipe
func (r *Recipe) AttachTutorials(tutorials []Tutorial) {
	r.tutorials = tutorials
}

// ID returns the recipe's ID
func (r *Recipe) ID() uuid.UUID { return r.id }

// Name returns the recipe's dish name
func (r *Recipe) Name() string { return r.name }

// Instructions returns the preparation steps
func (r *Recipe) Instructions() string { return r.instructions }

// Ingredients returns the ingredient list
func (r *Recipe) Ingredients() string { return r.ingredients }

// ImageURL returns the representative image URL
func (r *Recipe) ImageURL() string { return r.imageURL }

// UserID returns the owning user's ID
func (r *Recipe) UserID() uuid.UUID { return r.userID }

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time { return r.createdAt }

// Tutorials returns the attached video tutorials
func (r *Recipe) Tutorials() []Tutorial { return r.tutorials }

// ID returns the tutorial's ID
func (t Tutorial) ID() uuid.UUID { return t.id }

// Title returns the video title
func (t Tutorial) Title() string { return t.title }

// VideoID returns the YouTube video ID
func (t Tutorial) VideoID() string { return t.videoID }

// ThumbnailURL returns the video thumbnail URL
func (t Tutorial) ThumbnailURL() string { return t.thumbnailURL }

// ChannelName returns the publishing channel's name
func (t Tutorial) ChannelName() string { return t.channelName }

// URL derives the watch URL from the video ID
func (t Tutorial) URL() string {
	return "https://www.youtube.com/watch?v=" + t.videoID
}
