package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/pantrychef/pantrychef/internal/domain/user"
	"github.com/pantrychef/pantrychef/internal/ports/outbound"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserRepository implements outbound.UserRepository using GORM
type UserRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewUserRepository creates a new GORM user repository
func NewUserRepository(db *gorm.DB, logger *zap.Logger) outbound.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := UserToModel(u)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.ErrEmailExists
		}
		r.logger.Error("failed to create user", zap.Error(err))
		return err
	}
	return nil
}

// FindByID retrieves a user by ID
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return ModelToUser(&model), nil
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var model UserModel
	if err := r.db.WithContext(ctx).First(&model, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}
	return ModelToUser(&model), nil
}

// FindAll retrieves all users
func (r *UserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	users := make([]*user.User, 0, len(models))
	for i := range models {
		users = append(users, ModelToUser(&models[i]))
	}
	return users, nil
}

// Delete removes a user and everything they own in one transaction.
// The cascade is explicit rather than relying on database foreign key
// enforcement, which sqlite disables by default.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model UserModel
		if err := tx.First(&model, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrNotFound
			}
			return err
		}

		var recipeIDs []uuid.UUID
		if err := tx.Model(&RecipeModel{}).Where("user_id = ?", id).Pluck("id", &recipeIDs).Error; err != nil {
			return err
		}
		if len(recipeIDs) > 0 {
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&TutorialModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&FavoriteModel{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&FavoriteModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&RecipeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model).Error; err != nil {
			return err
		}

		r.logger.Info("user deleted",
			zap.String("user_id", id.String()),
			zap.Int("recipes_removed", len(recipeIDs)),
		)
		return nil
	})
}
