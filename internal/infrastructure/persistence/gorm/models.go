// Package gorm provides GORM-backed persistence adapters
package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the database model for users
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:100;not null"`
	Email        string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Recipes []RecipeModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for UserModel
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate sets the ID if not already set
func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// RecipeModel is the database model for recipes
type RecipeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null;index"`
	Instructions string    `gorm:"type:text;not null"`
	Ingredients  string    `gorm:"type:text"`
	ImageURL     string    `gorm:"size:512"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time

	Tutorials []TutorialModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RecipeModel
func (RecipeModel) TableName() string {
	return "recipes"
}

// BeforeCreate sets the ID if not already set
func (m *RecipeModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TutorialModel is the database model for recipe video tutorials
type TutorialModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"size:255;not null"`
	VideoID      string    `gorm:"size:64;not null"`
	ThumbnailURL string    `gorm:"size:512"`
	ChannelName  string    `gorm:"size:255"`
	RecipeID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt    time.Time
}

// TableName returns the table name for TutorialModel
func (TutorialModel) TableName() string {
	return "tutorials"
}

// BeforeCreate sets the ID if not already set
func (m *TutorialModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// FavoriteModel is the join table between users and their saved recipes
type FavoriteModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName returns the table name for FavoriteModel
func (FavoriteModel) TableName() string {
	return "favorites"
}
