package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stylecrate/outfit-service/internal/domain"
)

// GET /users/{userID}/recommendations
func (h *Handler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	// Parse and validate user_id
	userIDStr := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Invalid user_id parameter")
		return
	}

	outcome, err := h.service.GetRecommendation(r.Context(), userID)
	if err != nil {
		// User not found
		if errors.Is(err, domain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found",
				fmt.Sprintf("User with ID %d does not exist", userID))
			return
		}
		// New user with nothing in the closet yet: expected product state
		if errors.Is(err, domain.ErrEmptyWardrobe) {
			writeError(w, http.StatusUnprocessableEntity, "empty_wardrobe",
				"Your wardrobe has no items yet; add some clothing to get outfit recommendations")
			return
		}
		// Malformed preference or weather input
		if domain.IsValidationError(err) {
			writeError(w, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		// Weather provider failure
		if errors.Is(err, domain.ErrWeatherUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "weather_unavailable",
				"Weather provider is temporarily unavailable")
			return
		}
		// Request timeout
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout",
				"Request timed out, please try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := RecommendationResponse{
		UserID:           userID,
		RecommendationID: outcome.RecommendationID,
		Result:           outcome.Result,
		Metadata: domain.RecommendationMeta{
			CacheHit:    outcome.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}
	if r.URL.Query().Get("debug") == "1" {
		diag := outcome.Diagnostics
		resp.Diagnostics = &diag
	}

	writeJSON(w, http.StatusOK, resp)
}
