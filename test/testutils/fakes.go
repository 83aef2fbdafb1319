package testutils

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pantrychef/pantrychef/internal/domain/recipe"
	"github.com/pantrychef/pantrychef/internal/domain/user"
	"github.com/pantrychef/pantrychef/internal/ports/outbound"
)

// FakeGenerator is an outbound.RecipeGenerator that returns canned
// results and counts its calls
type FakeGenerator struct {
	Recipe *outbound.GeneratedRecipe
	Err    error
	Calls  int
	Prompt string
}

func (f *FakeGenerator) Generate(_ context.Context, prompt string) (*outbound.GeneratedRecipe, error) {
	f.Calls++
	f.Prompt = prompt
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Recipe, nil
}

// FakeVideoSearcher is an outbound.VideoSearcher with canned results
type FakeVideoSearcher struct {
	Results []outbound.VideoResult
	Err     error
	Calls   int
	Query   string
}

func (f *FakeVideoSearcher) Search(_ context.Context, query string, limit int) ([]outbound.VideoResult, error) {
	f.Calls++
	f.Query = query
	if f.Err != nil {
		return nil, f.Err
	}
	if len(f.Results) > limit {
		return f.Results[:limit], nil
	}
	return f.Results, nil
}

// FakeImageFinder is an outbound.ImageFinder with a canned URL
type FakeImageFinder struct {
	URL   string
	Err   error
	Calls int
}

func (f *FakeImageFinder) FindMealImage(_ context.Context, _ string) (string, error) {
	f.Calls++
	if f.Err != nil {
		return "", f.Err
	}
	return f.URL, nil
}

// MemoryUserRepository is an in-memory outbound.UserRepository
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[uuid.UUID]*user.User
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]*user.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email(), u.Email()) {
			return user.ErrEmailExists
		}
	}
	r.users[u.ID()] = u
	return nil
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email(), email) {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *MemoryUserRepository) FindAll(_ context.Context) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt().Before(all[j].CreatedAt())
	})
	return all, nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type favoriteKey struct {
	userID   uuid.UUID
	recipeID uuid.UUID
}

// MemoryRecipeRepository is an in-memory outbound.RecipeRepository
type MemoryRecipeRepository struct {
	mu        sync.Mutex
	recipes   map[uuid.UUID]*recipe.Recipe
	favorites map[favoriteKey]time.Time

	// CreateErr, when set, fails the next Create call
	CreateErr error
}

// NewMemoryRecipeRepository creates an empty in-memory recipe repository
func NewMemoryRecipeRepository() *MemoryRecipeRepository {
	return &MemoryRecipeRepository{
		recipes:   make(map[uuid.UUID]*recipe.Recipe),
		favorites: make(map[favoriteKey]time.Time),
	}
}

func (r *MemoryRecipeRepository) Create(_ context.Context, rec *recipe.Recipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.recipes[rec.ID()] = rec
	return nil
}

func (r *MemoryRecipeRepository) FindByID(_ context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.recipes[id]
	if !ok {
		return nil, recipe.ErrNotFound
	}
	return rec, nil
}

func (r *MemoryRecipeRepository) FindByUserID(_ context.Context, userID uuid.UUID) ([]*recipe.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var owned []*recipe.Recipe
	for _, rec := range r.recipes {
		if rec.UserID() == userID {
			owned = append(owned, rec)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt().After(owned[j].CreatedAt())
	})
	return owned, nil
}

func (r *MemoryRecipeRepository) AddFavorite(_ context.Context, userID, recipeID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.favorites[favoriteKey{userID, recipeID}] = time.Now()
	return nil
}

func (r *MemoryRecipeRepository) IsFavorite(_ context.Context, userID, recipeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.favorites[favoriteKey{userID, recipeID}]
	return ok, nil
}

func (r *MemoryRecipeRepository) FindFavorites(_ context.Context, userID uuid.UUID) ([]*recipe.Recipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var favs []*recipe.Recipe
	for key := range r.favorites {
		if key.userID != userID {
			continue
		}
		if rec, ok := r.recipes[key.recipeID]; ok {
			favs = append(favs, rec)
		}
	}
	sort.Slice(favs, func(i, j int) bool {
		return r.favorites[favoriteKey{userID, favs[i].ID()}].After(r.favorites[favoriteKey{userID, favs[j].ID()}])
	})
	return favs, nil
}

// FavoriteCount reports how many favorites are recorded
func (r *MemoryRecipeRepository) FavoriteCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.favorites)
}
