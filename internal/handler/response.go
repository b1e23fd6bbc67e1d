package handler

import "github.com/ksaeil2001/capss/internal/domain"

type ErrorResponse struct {
	Message string              `json:"message"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type SummaryResponse struct {
	Summary *domain.Summary `json:"summary"`
}

type HistoryResponse struct {
	Recommendations []domain.StoredRecommendation `json:"recommendations"`
}
