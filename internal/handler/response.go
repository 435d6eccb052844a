package handler

import "github.com/stylecrate/outfit-service/internal/domain"

type RecommendationResponse struct {
	UserID           int64                       `json:"user_id"`
	RecommendationID string                      `json:"recommendation_id"`
	Result           domain.RecommendationResult `json:"result"`
	Metadata         domain.RecommendationMeta   `json:"metadata"`
	Diagnostics      *domain.DiagnosticsRecord   `json:"diagnostics,omitempty"`
}

type FeedbackResponse struct {
	UserID      int64                  `json:"user_id"`
	Preferences domain.UserPreferences `json:"preferences"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
