// Package handlers contains the HTTP handlers for the JSON API
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/pantrychef/pantrychef/pkg/errors"
	"go.uber.org/zap"
)

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// writeError translates an error to its status code and a JSON body
// of the form {"error": "..."}
func writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := apperrors.FromError(err)
	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, appErr.StatusCode(), map[string]string{"error": appErr.Message})
}

// decodeJSON decodes and validates a JSON request body
func decodeJSON(r *http.Request, validate *validator.Validate, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.New(apperrors.CodeBadRequest, "invalid JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return apperrors.Newf(apperrors.CodeValidationFailed, "invalid field: %s", verrs[0].Field())
		}
		return apperrors.New(apperrors.CodeValidationFailed, "validation failed")
	}
	return nil
}
