package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ksaeil2001/capss/internal/domain"
	"github.com/ksaeil2001/capss/internal/service"
)

type Handler struct {
	service *service.Service
}

func NewHandler(svc *service.Service) *Handler {
	return &Handler{service: svc}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes the {"message": ...} error shape the client expects.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

// writeValidationError writes the 422 payload with per-field errors.
func writeValidationError(w http.ResponseWriter, fields []domain.FieldError) {
	writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Message: "Invalid input data",
		Errors:  fields,
	})
}
