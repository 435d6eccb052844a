package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/stylecrate/outfit-service/internal/domain"
)

const (
	// Fixed combination weights for the per-item score.
	insulationWeight = 0.40
	preferenceWeight = 0.25
	varietyWeight    = 0.20
	dressCodeWeight  = 0.15

	// Band around the insulation target that still counts as a perfect fit.
	insulationTolerance = 1.5

	// Days after which an unworn item earns the maximal variety boost.
	varietyHorizonDays = 30

	// Optional slots join the outfit only above this combined score.
	optionalInclusionThreshold = 0.55

	// Sun protection nudge for headwear under strong UV.
	uvHeadwearBonus   = 0.15
	uvIndexThreshold  = 7.0
	coldAccessoryBias = 0.10
)

// Engine turns a wardrobe snapshot plus weather, occasion, and preference
// context into a ranked outfit. It is synchronous, performs no I/O, and only
// touches the diagnostics collector it is handed.
type Engine struct {
	resolver *Resolver
}

func New(resolver *Resolver) *Engine {
	return &Engine{resolver: resolver}
}

// Request is the full input set for one recommendation.
type Request struct {
	Items       []domain.ClothingItem
	Weather     domain.WeatherContext
	Occasion    domain.OccasionContext
	Preferences domain.UserPreferences
	Now         time.Time
}

type scoredItem struct {
	item          domain.ClothingItem
	insulationFit float64
	preference    float64
	variety       float64
	dressFit      float64
	combined      float64
}

// Recommend runs the full pipeline. Missing mandatory categories are reported
// through MissingItems on a zero-item result, never as an error; errors are
// reserved for an empty wardrobe and malformed input.
func (e *Engine) Recommend(req Request, diag *Collector) (domain.RecommendationResult, error) {
	if err := validate(req); err != nil {
		return domain.RecommendationResult{}, err
	}
	if len(req.Items) == 0 {
		return domain.RecommendationResult{}, domain.ErrEmptyWardrobe
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	if n := countMissingInsulation(req.Items); n > 0 {
		diag.Warn(fmt.Sprintf("%d items missing insulation data; used defaults", n))
	}
	diag.Stage("context", map[string]any{
		"items":       len(req.Items),
		"temperature": req.Weather.Temperature,
		"feels_like":  req.Weather.FeelsLike,
		"activity":    string(req.Occasion.Activity),
	})

	// Cooldown filter, relaxed entirely if it would empty a mandatory slot
	// the raw wardrobe can fill.
	pool := FilterByLastWorn(req.Items, req.Preferences.CooldownDays, now)
	if slotEmptied(req.Items, pool) {
		diag.Warn("cooldown filter would empty a mandatory slot; relaxed for this request")
		pool = req.Items
	}
	diag.Stage("cooldown_filter", map[string]any{"candidates": len(pool)})

	// Dress-code filter with the same full-fallback policy.
	dressCode := DressCodeFromEvents(req.Occasion.Events)
	if dressCode != "" {
		filtered := FilterByDressCode(pool, dressCode)
		if slotEmptied(pool, filtered) {
			diag.Warn(fmt.Sprintf("dress code %q would empty a mandatory slot; filter not applied", dressCode))
		} else {
			pool = filtered
		}
	}
	diag.Stage("dress_code_filter", map[string]any{
		"dress_code": string(dressCode),
		"candidates": len(pool),
	})

	slots := partition(pool)
	if missing := missingSlots(slots); len(missing) > 0 {
		result := domain.RecommendationResult{
			Reasoning:    remediationMessage(missing, req.Items),
			MissingItems: missing,
			Alerts:       req.Weather.Alerts,
		}
		diag.Stage("selection", map[string]any{"missing_items": missing})
		return result, nil
	}

	target, requireOuterwear := insulationTarget(req.Weather, req.Preferences.TemperatureSensitivity)
	diag.Stage("insulation_target", map[string]any{
		"target":            target,
		"require_outerwear": requireOuterwear,
	})

	topPool := slots.top
	if requireOuterwear {
		if outer := onlyType(topPool, domain.ItemOuterwear); len(outer) > 0 {
			topPool = outer
		}
	}

	topPick := e.pickBest(topPool, req, target, dressCode, now, 0)
	bottomPick := e.pickBest(slots.bottom, req, target, dressCode, now, 0)
	footPick := e.pickBest(slots.footwear, req, target, dressCode, now, 0)
	picks := []scoredItem{topPick, bottomPick, footPick}

	// Optional slots only join above the inclusion threshold.
	var accessoryBias, headwearBias float64
	if target >= 8 {
		accessoryBias = coldAccessoryBias
	}
	if req.Weather.UVIndex >= uvIndexThreshold {
		headwearBias = uvHeadwearBonus
	}
	if len(slots.accessory) > 0 {
		if pick := e.pickBest(slots.accessory, req, target, dressCode, now, accessoryBias); pick.combined >= optionalInclusionThreshold {
			picks = append(picks, pick)
		}
	}
	if len(slots.headwear) > 0 {
		if pick := e.pickBest(slots.headwear, req, target, dressCode, now, headwearBias); pick.combined >= optionalInclusionThreshold {
			picks = append(picks, pick)
		}
	}

	confidence := clamp((topPick.combined+bottomPick.combined+footPick.combined)/3, 0, 1)

	items := make([]domain.ClothingItem, len(picks))
	itemIDs := make([]int64, len(picks))
	for i, p := range picks {
		items[i] = p.item
		itemIDs[i] = p.item.ID
	}

	reasoning, breakdown := buildReasoning(picks, req, target, requireOuterwear, dressCode)

	diag.Stage("selection", map[string]any{
		"item_ids":   itemIDs,
		"confidence": confidence,
	})

	return domain.RecommendationResult{
		Items:             items,
		Confidence:        confidence,
		Reasoning:         reasoning,
		DetailedReasoning: breakdown,
		MissingItems:      []string{},
		Alerts:            req.Weather.Alerts,
	}, nil
}

func validate(req Request) error {
	w := req.Weather
	if !isFinite(w.Temperature) {
		return &domain.ValidationError{Field: "weather.temperature", Reason: "not a finite number"}
	}
	if !isFinite(w.FeelsLike) {
		return &domain.ValidationError{Field: "weather.feels_like", Reason: "not a finite number"}
	}
	if !isFinite(w.WindSpeed) {
		return &domain.ValidationError{Field: "weather.wind_speed", Reason: "not a finite number"}
	}
	if w.Humidity < 0 || w.Humidity > 100 {
		return &domain.ValidationError{Field: "weather.humidity", Reason: "outside [0,100]"}
	}
	if w.WindSpeed < 0 {
		return &domain.ValidationError{Field: "weather.wind_speed", Reason: "negative"}
	}
	if req.Preferences.CooldownDays < 0 {
		return &domain.ValidationError{Field: "preferences.cooldown_days", Reason: "negative"}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// insulationTarget bands the effective temperature into a 0-10 warmth target.
// Wind sharpens the chill beyond what feels-like carries, the user's
// sensitivity shifts the target, and severe-weather alerts raise it further.
// requireOuterwear is set when conditions call for an outer layer regardless
// of what the score would pick.
func insulationTarget(w domain.WeatherContext, sensitivity int) (float64, bool) {
	eff := w.FeelsLike
	switch {
	case w.WindSpeed >= 30:
		eff -= 2
	case w.WindSpeed >= 15:
		eff -= 1
	}

	var target float64
	switch {
	case eff <= -10:
		target = 10
	case eff <= -5:
		target = 9
	case eff <= 0:
		target = 8
	case eff <= 5:
		target = 7
	case eff <= 10:
		target = 6
	case eff <= 15:
		target = 5
	case eff <= 20:
		target = 4
	case eff <= 25:
		target = 2
	default:
		target = 1
	}

	target += float64(sensitivity)
	if w.HasAlert(domain.AlertCold) {
		target += 1
	}
	if w.HasAlert(domain.AlertWind) || w.HasAlert(domain.AlertPrecipitation) {
		target += 0.5
	}

	requireOuterwear := eff <= 5 ||
		w.HasAlert(domain.AlertWind) ||
		w.HasAlert(domain.AlertPrecipitation)

	return clamp(target, insulationMin, insulationMax), requireOuterwear
}

func (e *Engine) score(item domain.ClothingItem, req Request, target float64, dressCode domain.DressCode, now time.Time, bias float64) scoredItem {
	resolved := e.resolver.Resolve(item, req.Occasion.Activity)

	diff := math.Abs(resolved - target)
	insulationFit := 1.0
	if diff > insulationTolerance {
		insulationFit = 1.0 / (1.0 + diff - insulationTolerance)
	}

	raw := preferenceScore(item, req.Preferences)
	preference := raw / (raw + 1)

	variety := 1.0
	if item.LastWorn != nil {
		variety = math.Min(1.0, float64(daysSince(*item.LastWorn, now))/varietyHorizonDays)
	}

	var dressFit float64
	if dressCode != "" && item.HasDressCode(dressCode) {
		dressFit = 1.0
	}

	combined := insulationWeight*insulationFit +
		preferenceWeight*preference +
		varietyWeight*variety +
		dressCodeWeight*dressFit +
		bias

	return scoredItem{
		item:          item,
		insulationFit: insulationFit,
		preference:    preference,
		variety:       variety,
		dressFit:      dressFit,
		combined:      clamp(combined, 0, 1),
	}
}

// pickBest scores every candidate and returns the winner. Ties break on
// variety, then preference, then lowest item id, so selection is
// deterministic for identical inputs.
func (e *Engine) pickBest(candidates []domain.ClothingItem, req Request, target float64, dressCode domain.DressCode, now time.Time, bias float64) scoredItem {
	scored := make([]scoredItem, len(candidates))
	for i, item := range candidates {
		scored[i] = e.score(item, req, target, dressCode, now, bias)
	}
	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.combined != b.combined {
			return a.combined > b.combined
		}
		if a.variety != b.variety {
			return a.variety > b.variety
		}
		if a.preference != b.preference {
			return a.preference > b.preference
		}
		return a.item.ID < b.item.ID
	})
	return scored[0]
}

type slotPools struct {
	top       []domain.ClothingItem // tops and outerwear share the slot
	bottom    []domain.ClothingItem
	footwear  []domain.ClothingItem
	accessory []domain.ClothingItem
	headwear  []domain.ClothingItem
}

func partition(items []domain.ClothingItem) slotPools {
	var s slotPools
	for _, item := range items {
		switch item.Type {
		case domain.ItemTop, domain.ItemOuterwear:
			s.top = append(s.top, item)
		case domain.ItemBottom:
			s.bottom = append(s.bottom, item)
		case domain.ItemFootwear:
			s.footwear = append(s.footwear, item)
		case domain.ItemAccessory:
			s.accessory = append(s.accessory, item)
		case domain.ItemHeadwear:
			s.headwear = append(s.headwear, item)
		}
	}
	return s
}

func missingSlots(s slotPools) []string {
	var missing []string
	if len(s.top) == 0 {
		missing = append(missing, domain.SlotTop)
	}
	if len(s.bottom) == 0 {
		missing = append(missing, domain.SlotBottom)
	}
	if len(s.footwear) == 0 {
		missing = append(missing, domain.SlotFootwear)
	}
	return missing
}

// slotEmptied reports whether filtering emptied a mandatory slot that the
// unfiltered set could still fill.
func slotEmptied(before, after []domain.ClothingItem) bool {
	b, a := partition(before), partition(after)
	if len(b.top) > 0 && len(a.top) == 0 {
		return true
	}
	if len(b.bottom) > 0 && len(a.bottom) == 0 {
		return true
	}
	if len(b.footwear) > 0 && len(a.footwear) == 0 {
		return true
	}
	return false
}

func onlyType(items []domain.ClothingItem, t domain.ItemType) []domain.ClothingItem {
	var out []domain.ClothingItem
	for _, item := range items {
		if item.Type == t {
			out = append(out, item)
		}
	}
	return out
}

func countMissingInsulation(items []domain.ClothingItem) int {
	n := 0
	for _, item := range items {
		if item.Insulation == nil {
			n++
		}
	}
	return n
}

// remediationMessage tells the user what to add, enumerating the item types
// that were detected, including any unrecognized ones.
func remediationMessage(missing []string, items []domain.ClothingItem) string {
	counts := map[string]int{}
	order := []string{}
	for _, item := range items {
		key := string(item.Type)
		switch item.Type {
		case domain.ItemTop, domain.ItemBottom, domain.ItemFootwear,
			domain.ItemOuterwear, domain.ItemAccessory, domain.ItemHeadwear:
		default:
			key = fmt.Sprintf("%s (unrecognized)", item.Type)
		}
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}

	detected := make([]string, 0, len(order))
	for _, key := range order {
		detected = append(detected, fmt.Sprintf("%s: %d", key, counts[key]))
	}
	detectedMsg := "none"
	if len(detected) > 0 {
		detectedMsg = strings.Join(detected, ", ")
	}
	return fmt.Sprintf(
		"Can't build a full outfit: missing %s. Detected item types: %s. Add at least one item in each missing category.",
		strings.Join(missing, ", "), detectedMsg,
	)
}
