package engine

import (
	"math"
	"testing"

	"github.com/stylecrate/outfit-service/internal/domain"
)

func TestAdjustLikedRaisesWeights(t *testing.T) {
	prefs := domain.DefaultPreferences(1)
	prefs.Colors["navy"] = 0.3

	items := []domain.ClothingItem{
		{ID: 1, Color: "navy", Material: "wool", StyleTags: []string{"classic"}},
		{ID: 2, Color: "black", Material: "denim"},
	}

	got := Adjust(prefs, items, true)

	if got.Colors["navy"] <= prefs.Colors["navy"] {
		t.Errorf("liked feedback must raise navy, got %f", got.Colors["navy"])
	}
	if got.Colors["black"] != learningRate {
		t.Errorf("expected black = %f, got %f", learningRate, got.Colors["black"])
	}
	if got.Materials["wool"] != learningRate || got.Materials["denim"] != learningRate {
		t.Errorf("materials not adjusted: %v", got.Materials)
	}
	if got.Styles["classic"] != learningRate {
		t.Errorf("expected classic = %f, got %f", learningRate, got.Styles["classic"])
	}
}

func TestAdjustDislikedLowersWeights(t *testing.T) {
	prefs := domain.DefaultPreferences(1)
	prefs.Colors["navy"] = 0.3
	prefs.Materials["wool"] = 0.1

	items := []domain.ClothingItem{{ID: 1, Color: "navy", Material: "wool"}}

	got := Adjust(prefs, items, false)

	if got.Colors["navy"] >= prefs.Colors["navy"] {
		t.Errorf("disliked feedback must lower navy, got %f", got.Colors["navy"])
	}
	if got.Materials["wool"] >= prefs.Materials["wool"] {
		t.Errorf("disliked feedback must lower wool, got %f", got.Materials["wool"])
	}
}

func TestAdjustIsPure(t *testing.T) {
	prefs := domain.DefaultPreferences(1)
	prefs.Colors["navy"] = 0.5

	Adjust(prefs, []domain.ClothingItem{{ID: 1, Color: "navy"}}, true)

	if prefs.Colors["navy"] != 0.5 {
		t.Errorf("Adjust mutated its input: navy = %f", prefs.Colors["navy"])
	}
}

func TestTopWeightsIgnoresNonPositive(t *testing.T) {
	weights := map[string]float64{
		"navy":  0.5,
		"black": 0.0,
		"pink":  -0.4,
	}

	got := topWeights(weights, 5)

	if len(got) != 1 {
		t.Fatalf("expected only positive entries, got %v", got)
	}
	if _, ok := got["navy"]; !ok {
		t.Error("navy should survive")
	}
}

func TestTopWeightsCapsAtN(t *testing.T) {
	weights := map[string]float64{
		"a": 0.6, "b": 0.5, "c": 0.4, "d": 0.3, "e": 0.2, "f": 0.1,
	}

	got := topWeights(weights, 5)

	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
	if _, ok := got["f"]; ok {
		t.Error("lowest-weighted entry should be cut")
	}
}

func TestPreferenceScoreSumsMatches(t *testing.T) {
	prefs := domain.DefaultPreferences(1)
	prefs.Colors["navy"] = 0.5
	prefs.Styles["classic"] = 0.2
	prefs.Materials["wool"] = -0.3 // disliked, must not count

	item := domain.ClothingItem{Color: "Navy", Material: "wool", StyleTags: []string{"Classic"}}

	got := preferenceScore(item, prefs)
	want := 0.7
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, got)
	}
}
