package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	recipeapp "github.com/pantrychef/pantrychef/internal/application/recipe"
	"github.com/pantrychef/pantrychef/internal/infrastructure/http/middleware"
	apperrors "github.com/pantrychef/pantrychef/pkg/errors"
	"go.uber.org/zap"
)

// RecipeAPIHandler serves the recipe endpoints
type RecipeAPIHandler struct {
	service  *recipeapp.Service
	validate *validator.Validate
	logger   *zap.Logger
}

// NewRecipeAPIHandler creates a new recipe API handler
func NewRecipeAPIHandler(service *recipeapp.Service, logger *zap.Logger) *RecipeAPIHandler {
	return &RecipeAPIHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// GenerateRequest is the recipe generation request body
type GenerateRequest struct {
	Ingredients string `json:"ingredients" validate:"omitempty,max=500"`
	DishName    string `json:"dish_name" validate:"omitempty,max=100"`
}

// List handles GET /api/recipe
func (h *RecipeAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
		return
	}

	recipes, err := h.service.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// Generate handles POST /api/recipe/ai
func (h *RecipeAPIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
		return
	}

	var req GenerateRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	dto, err := h.service.Generate(r.Context(), userID, recipeapp.GenerateInput{
		Ingredients: req.Ingredients,
		DishName:    req.DishName,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

// Favorite handles POST /api/recipe/favorite/{id}
func (h *RecipeAPIHandler) Favorite(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
		return
	}

	recipeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.New(apperrors.CodeBadRequest, "invalid recipe id"))
		return
	}

	dto, created, err := h.service.Favorite(r.Context(), userID, recipeID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	writeJSON(w, status, dto)
}

// ListFavorites handles GET /api/recipe/favorite
func (h *RecipeAPIHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
		return
	}

	recipes, err := h.service.ListFavorites(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}
