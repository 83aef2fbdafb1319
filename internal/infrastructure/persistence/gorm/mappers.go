package gorm

import (
	"github.com/pantrychef/pantrychef/internal/domain/recipe"
	"github.com/pantrychef/pantrychef/internal/domain/user"
)

// UserToModel converts a domain user to its database model
func UserToModel(u *user.User) *UserModel {
	return &UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

// ModelToUser converts a database model to a domain user
func ModelToUser(m *UserModel) *user.User {
	return user.ReconstructUser(m.ID, m.Name, m.Email, m.PasswordHash, m.CreatedAt, m.UpdatedAt)
}

// RecipeToModel converts a domain recipe to its database model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	tutorials := make([]TutorialModel, 0, len(r.Tutorials()))
	for _, t := range r.Tutorials() {
		tutorials = append(tutorials, TutorialModel{
			ID:           t.ID(),
			Title:        t.Title(),
			VideoID:      t.VideoID(),
			ThumbnailURL: t.ThumbnailURL(),
			ChannelName:  t.ChannelName(),
			RecipeID:     r.ID(),
		})
	}
	return &RecipeModel{
		ID:           r.ID(),
		Name:         r.Name(),
		Instructions: r.Instructions(),
		Ingredients:  r.Ingredients(),
		ImageURL:     r.ImageURL(),
		UserID:       r.UserID(),
		CreatedAt:    r.CreatedAt(),
		Tutorials:    tutorials,
	}
}

// ModelToRecipe converts a database model to a domain recipe
func ModelToRecipe(m *RecipeModel) *recipe.Recipe {
	tutorials := make([]recipe.Tutorial, 0, len(m.Tutorials))
	for _, t := range m.Tutorials {
		tutorials = append(tutorials, recipe.ReconstructTutorial(t.ID, t.Title, t.VideoID, t.ThumbnailURL, t.ChannelName))
	}
	return recipe.ReconstructRecipe(m.ID, m.Name, m.Instructions, m.Ingredients, m.ImageURL, m.UserID, m.CreatedAt, tutorials)
}
