package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	userapp "github.com/pantrychef/pantrychef/internal/application/user"
	"github.com/pantrychef/pantrychef/internal/infrastructure/http/middleware"
	apperrors "github.com/pantrychef/pantrychef/pkg/errors"
	"go.uber.org/zap"
)

// UserAPIHandler serves the user and login endpoints
type UserAPIHandler struct {
	service  *userapp.Service
	validate *validator.Validate
	logger   *zap.Logger
}

// NewUserAPIHandler creates a new user API handler
func NewUserAPIHandler(service *userapp.Service, logger *zap.Logger) *UserAPIHandler {
	return &UserAPIHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRequest is the signup request body
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the login request body
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register handles POST /api/user
func (h *UserAPIHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	dto, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto)
}

// List handles GET /api/user
func (h *UserAPIHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

// Delete handles DELETE /api/user/{id}
func (h *UserAPIHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, apperrors.New(apperrors.CodeUnauthorized, "authentication required"))
		return
	}

	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.logger, apperrors.New(apperrors.CodeBadRequest, "invalid user id"))
		return
	}

	if err := h.service.Delete(r.Context(), requesterID, targetID); err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}

// Login handles POST /api/login
func (h *UserAPIHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, h.validate, &req); err != nil {
		writeError(w, h.logger, err)
		return
	}

	result, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
