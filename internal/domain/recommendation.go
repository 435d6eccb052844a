package domain

import "time"

// Mandatory outfit slots. The top slot accepts either a Top or an Outerwear
// item; Bottom and Footwear accept only their own type.
const (
	SlotTop      = "Top"
	SlotBottom   = "Bottom"
	SlotFootwear = "Footwear"
)

// ReasoningBreakdown is the structured form of the reasoning text for richer
// callers.
type ReasoningBreakdown struct {
	StyleScore   string `json:"style_score"`
	WeatherMatch string `json:"weather_match"`
	Layering     string `json:"layering"`
	OccasionFit  string `json:"occasion_fit"`
	VarietyCheck string `json:"variety_check"`
}

// RecommendationResult is the engine's only output. Exactly one of the two
// states holds: Items filled with one item per mandatory slot and MissingItems
// empty, or Items empty and MissingItems naming every unmet mandatory slot.
type RecommendationResult struct {
	Items             []ClothingItem      `json:"items"`
	Confidence        float64             `json:"confidence"`
	Reasoning         string              `json:"reasoning"`
	DetailedReasoning *ReasoningBreakdown `json:"detailed_reasoning,omitempty"`
	MissingItems      []string            `json:"missing_items"`
	Alerts            []WeatherAlert      `json:"alerts,omitempty"`
}

// StoredRecommendation is the persisted form a later feedback call refers to.
type StoredRecommendation struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	ItemIDs      []int64   `json:"item_ids"`
	Confidence   float64   `json:"confidence"`
	Reasoning    string    `json:"reasoning"`
	MissingItems []string  `json:"missing_items"`
	CreatedAt    time.Time `json:"created_at"`
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
}

// Feedback is the like/dislike signal that re-enters through the preference
// model.
type Feedback struct {
	Liked bool `json:"liked"`
}
