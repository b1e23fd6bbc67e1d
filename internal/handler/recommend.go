package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/ksaeil2001/capss/internal/domain"
)

// POST /api/recommend
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}

	result, err := h.service.Recommend(r.Context(), profile)
	if err != nil {
		h.writeComputeError(w, err, "Failed to generate recommendation")
		return
	}

	// Best effort: a failed history write never fails the request.
	if session := sessionFrom(r.Context()); session != nil && session.UserID > 0 {
		if err := h.service.SaveHistory(r.Context(), session.UserID, profile, result.Recommendation); err != nil {
			log.Printf("[handler] save history for user %d: %v", session.UserID, err)
		}
	}

	writeJSON(w, http.StatusOK, result.Recommendation)
}

// POST /api/summary
// The preview endpoint: same pipeline, summary only.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	profile, ok := h.decodeProfile(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summarize(r.Context(), profile)
	if err != nil {
		h.writeComputeError(w, err, "Failed to generate nutrition summary")
		return
	}

	writeJSON(w, http.StatusOK, SummaryResponse{Summary: summary})
}

// GET /api/recommendations
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())
	if session == nil || session.UserID == 0 {
		writeError(w, http.StatusForbidden, "Recommendation history requires a registered account")
		return
	}

	items, err := h.service.History(r.Context(), session.UserID)
	if err != nil {
		log.Printf("[handler] history for user %d: %v", session.UserID, err)
		writeError(w, http.StatusInternalServerError, "Failed to load recommendation history")
		return
	}
	if items == nil {
		items = []domain.StoredRecommendation{}
	}
	writeJSON(w, http.StatusOK, HistoryResponse{Recommendations: items})
}

// decodeProfile parses and normalizes the request body into a validated
// profile. On failure it writes the error response and returns ok=false.
func (h *Handler) decodeProfile(w http.ResponseWriter, r *http.Request) (*domain.UserProfile, bool) {
	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}

	profile := req.profile()
	if err := profile.Validate(); err != nil {
		var ipe *domain.InvalidProfileError
		if errors.As(err, &ipe) {
			writeValidationError(w, ipe.Fields)
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "Invalid input data")
		return nil, false
	}
	return profile, true
}

func (h *Handler) writeComputeError(w http.ResponseWriter, err error, fallback string) {
	var ipe *domain.InvalidProfileError
	if errors.As(err, &ipe) {
		writeValidationError(w, ipe.Fields)
		return
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		writeError(w, http.StatusServiceUnavailable, "Request timed out, please try again")
		return
	}
	log.Printf("[handler] compute error: %v", err)
	writeError(w, http.StatusInternalServerError, fallback)
}
