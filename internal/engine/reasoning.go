package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/stylecrate/outfit-service/internal/domain"
)

// buildReasoning renders the short natural-language summary plus the
// structured breakdown. It references the weather band, the binding layering
// constraint, occasion fit, and any preference matches.
func buildReasoning(picks []scoredItem, req Request, target float64, requireOuterwear bool, dressCode domain.DressCode) (string, *domain.ReasoningBreakdown) {
	var parts []string

	weatherPart := weatherSummary(req.Weather, target)
	parts = append(parts, weatherPart)

	layering := layeringSummary(picks, requireOuterwear, req.Weather)
	if layering != "" {
		parts = append(parts, layering)
	}

	matches := matchedPreferences(picks, req.Preferences)
	if len(matches) > 0 {
		parts = append(parts, "matches your liked "+strings.Join(matches, ", "))
	}

	occasionPart := "no dress code in play today"
	if dressCode != "" {
		occasionPart = fmt.Sprintf("dressed for the %s occasion", dressCodeLabel(dressCode))
		parts = append(parts, occasionPart)
	}

	varietyPart := varietySummary(picks)
	if varietyPart != "" {
		parts = append(parts, varietyPart)
	}

	breakdown := &domain.ReasoningBreakdown{
		StyleScore:   fmt.Sprintf("preference match %.2f across selected items", avgPreference(picks)),
		WeatherMatch: fmt.Sprintf("insulation target %.1f, average fit %.2f", target, avgInsulationFit(picks)),
		Layering:     layeringDetail(picks, requireOuterwear),
		OccasionFit:  occasionPart,
		VarietyCheck: varietyDetail(picks),
	}

	return strings.Join(parts, "; ") + ".", breakdown
}

func weatherSummary(w domain.WeatherContext, target float64) string {
	switch {
	case target >= 8:
		return fmt.Sprintf("cold conditions (feels like %.0f°C), picked warm pieces", w.FeelsLike)
	case target >= 6:
		return fmt.Sprintf("cool weather (feels like %.0f°C), picked medium-warm layers", w.FeelsLike)
	case target >= 4:
		return fmt.Sprintf("mild weather (%.0f°C), comfortable everyday layers", w.Temperature)
	default:
		return fmt.Sprintf("warm weather (%.0f°C), picked light breathable pieces", w.Temperature)
	}
}

func layeringSummary(picks []scoredItem, requireOuterwear bool, w domain.WeatherContext) string {
	hasOuterwear := false
	for _, p := range picks {
		if p.item.Type == domain.ItemOuterwear {
			hasOuterwear = true
		}
	}
	switch {
	case hasOuterwear && w.HasAlert(domain.AlertWind):
		return "added outerwear for the high-wind alert"
	case hasOuterwear && w.HasAlert(domain.AlertPrecipitation):
		return "added outerwear for expected precipitation"
	case hasOuterwear:
		return "added outerwear for extra warmth"
	case requireOuterwear:
		// Wardrobe has no outerwear; the warmest top carries the layer.
		return "no outerwear available, so the warmest top stands in for it"
	default:
		return ""
	}
}

func layeringDetail(picks []scoredItem, requireOuterwear bool) string {
	for _, p := range picks {
		if p.item.Type == domain.ItemOuterwear {
			return fmt.Sprintf("outerwear layer: %s %s", p.item.Color, p.item.Category)
		}
	}
	if requireOuterwear {
		return "outer layer wanted but none in wardrobe; top selected for maximum warmth"
	}
	return "single layer sufficient"
}

// matchedPreferences lists the colors, styles, and materials of the chosen
// items that carry positive learned weight, sorted for stable output.
func matchedPreferences(picks []scoredItem, prefs domain.UserPreferences) []string {
	colors := topWeights(prefs.Colors, topPreferenceCount)
	styles := topWeights(prefs.Styles, topPreferenceCount)
	materials := topWeights(prefs.Materials, topPreferenceCount)

	seen := map[string]bool{}
	var matches []string
	add := func(attr string) {
		if attr != "" && !seen[attr] {
			seen[attr] = true
			matches = append(matches, attr)
		}
	}
	for _, p := range picks {
		if _, ok := colors[strings.ToLower(p.item.Color)]; ok {
			add(strings.ToLower(p.item.Color))
		}
		if _, ok := materials[strings.ToLower(p.item.Material)]; ok {
			add(strings.ToLower(p.item.Material))
		}
		for _, tag := range p.item.StyleTags {
			if _, ok := styles[strings.ToLower(tag)]; ok {
				add(strings.ToLower(tag))
			}
		}
	}
	sort.Strings(matches)
	return matches
}

func varietySummary(picks []scoredItem) string {
	fresh := 0
	for _, p := range picks {
		if p.variety >= 1.0 {
			fresh++
		}
	}
	if fresh == len(picks) {
		return "all pieces freshly rotated in"
	}
	if fresh > 0 {
		return "rotated in rarely worn pieces"
	}
	return ""
}

func varietyDetail(picks []scoredItem) string {
	return fmt.Sprintf("average variety boost %.2f", avgVariety(picks))
}

func dressCodeLabel(code domain.DressCode) string {
	return strings.ReplaceAll(string(code), "_", " ")
}

func avgPreference(picks []scoredItem) float64 { return avg(picks, func(s scoredItem) float64 { return s.preference }) }

func avgInsulationFit(picks []scoredItem) float64 {
	return avg(picks, func(s scoredItem) float64 { return s.insulationFit })
}

func avgVariety(picks []scoredItem) float64 { return avg(picks, func(s scoredItem) float64 { return s.variety }) }

func avg(picks []scoredItem, f func(scoredItem) float64) float64 {
	if len(picks) == 0 {
		return 0
	}
	sum := 0.0
	for _, p := range picks {
		sum += f(p)
	}
	return sum / float64(len(picks))
}
