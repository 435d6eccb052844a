package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/stylecrate/outfit-service/internal/domain"
)

// POST /users/{userID}/recommendations/{recommendationID}/feedback
func (h *Handler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	userIDStr := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	recommendationID := chi.URLParam(r, "recommendationID")
	if recommendationID == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Missing recommendation id")
		return
	}

	var body domain.Feedback
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be JSON with a boolean 'liked' field")
		return
	}

	prefs, err := h.service.ProcessFeedback(r.Context(), userID, recommendationID, body.Liked)
	if err != nil {
		if errors.Is(err, domain.ErrRecommendationNotFound) {
			writeError(w, http.StatusNotFound, "recommendation_not_found",
				"No recommendation with that id exists for this user")
			return
		}
		if errors.Is(err, domain.ErrVersionConflict) {
			writeError(w, http.StatusConflict, "feedback_conflict",
				"Preferences were updated concurrently, please retry")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, FeedbackResponse{
		UserID:      userID,
		Preferences: prefs,
	})
}
