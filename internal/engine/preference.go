package engine

import (
	"sort"
	"strings"

	"github.com/stylecrate/outfit-service/internal/domain"
)

const (
	// Fixed learning rate applied per attribute on every feedback signal.
	learningRate = 0.1

	// Selection only consults this many positively-weighted entries per
	// dimension, so unbounded weight growth cannot destabilize ranking.
	topPreferenceCount = 5
)

// Adjust applies one like/dislike signal to the preference weights and returns
// a new value; the caller persists it. Every color, style tag, and material
// present across the outfit is incremented (liked) or decremented (disliked)
// by the learning rate.
func Adjust(prefs domain.UserPreferences, items []domain.ClothingItem, liked bool) domain.UserPreferences {
	delta := learningRate
	if !liked {
		delta = -learningRate
	}

	out := prefs.Clone()
	for _, item := range items {
		if c := strings.ToLower(item.Color); c != "" {
			out.Colors[c] += delta
		}
		if m := strings.ToLower(item.Material); m != "" {
			out.Materials[m] += delta
		}
		for _, tag := range item.StyleTags {
			if s := strings.ToLower(tag); s != "" {
				out.Styles[s] += delta
			}
		}
	}
	return out
}

// preferenceScore sums the item's matches against the top positive weights of
// each dimension. Non-positive weights are not preferences and never count.
func preferenceScore(item domain.ClothingItem, prefs domain.UserPreferences) float64 {
	colors := topWeights(prefs.Colors, topPreferenceCount)
	styles := topWeights(prefs.Styles, topPreferenceCount)
	materials := topWeights(prefs.Materials, topPreferenceCount)

	score := colors[strings.ToLower(item.Color)]
	score += materials[strings.ToLower(item.Material)]
	for _, tag := range item.StyleTags {
		score += styles[strings.ToLower(tag)]
	}
	return score
}

// topWeights returns the n highest positively-weighted entries. Ties break on
// key order so scoring stays deterministic.
func topWeights(m map[string]float64, n int) map[string]float64 {
	type entry struct {
		key    string
		weight float64
	}
	entries := make([]entry, 0, len(m))
	for k, w := range m {
		if w > 0 {
			entries = append(entries, entry{k, w})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].key < entries[j].key
	})
	if len(entries) > n {
		entries = entries[:n]
	}

	out := make(map[string]float64, len(entries))
	for _, e := range entries {
		out[e.key] = e.weight
	}
	return out
}
