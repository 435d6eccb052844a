package engine

import (
	"testing"

	"github.com/stylecrate/outfit-service/internal/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestResolveExplicitValue(t *testing.T) {
	r := NewResolver(DefaultInsulationTable())

	item := domain.ClothingItem{ID: 1, Type: domain.ItemTop, Material: "wool", Insulation: floatPtr(2)}
	got := r.Resolve(item, domain.ActivityMedium)

	// Explicit value wins over the wool lookup
	if got != 2 {
		t.Errorf("expected explicit insulation 2, got %f", got)
	}
}

func TestResolveTypeMaterialLookup(t *testing.T) {
	r := NewResolver(DefaultInsulationTable())

	item := domain.ClothingItem{ID: 1, Type: domain.ItemOuterwear, Material: "Down"}
	if got := r.Resolve(item, ""); got != 10 {
		t.Errorf("expected down outerwear = 10, got %f", got)
	}
}

func TestResolveTypeFallback(t *testing.T) {
	r := NewResolver(DefaultInsulationTable())

	// Unknown material falls back to the type default
	item := domain.ClothingItem{ID: 1, Type: domain.ItemOuterwear, Material: "vantablack"}
	if got := r.Resolve(item, ""); got != 8 {
		t.Errorf("expected outerwear type default 8, got %f", got)
	}
}

func TestResolveGlobalDefault(t *testing.T) {
	r := NewResolver(DefaultInsulationTable())

	item := domain.ClothingItem{ID: 1, Type: domain.ItemType("cape"), Material: "unknown"}
	if got := r.Resolve(item, ""); got != 5 {
		t.Errorf("expected global default 5, got %f", got)
	}
}

func TestResolveActivityAdjustment(t *testing.T) {
	r := NewResolver(DefaultInsulationTable())
	item := domain.ClothingItem{ID: 1, Type: domain.ItemTop, Insulation: floatPtr(5)}

	if got := r.Resolve(item, domain.ActivityHigh); got != 3 {
		t.Errorf("high activity: expected 3, got %f", got)
	}
	if got := r.Resolve(item, domain.ActivityLow); got != 6 {
		t.Errorf("low activity: expected 6, got %f", got)
	}
	if got := r.Resolve(item, domain.ActivityMedium); got != 5 {
		t.Errorf("medium activity: expected 5, got %f", got)
	}
}

func TestResolveClamping(t *testing.T) {
	r := NewResolver(DefaultInsulationTable())

	cold := domain.ClothingItem{ID: 1, Type: domain.ItemTop, Insulation: floatPtr(0.5)}
	if got := r.Resolve(cold, domain.ActivityHigh); got != 0 {
		t.Errorf("expected clamp to 0, got %f", got)
	}

	warm := domain.ClothingItem{ID: 2, Type: domain.ItemOuterwear, Insulation: floatPtr(10)}
	if got := r.Resolve(warm, domain.ActivityLow); got != 10 {
		t.Errorf("expected clamp to 10, got %f", got)
	}
}

func TestResolveDoesNotMutateItem(t *testing.T) {
	r := NewResolver(DefaultInsulationTable())

	item := domain.ClothingItem{ID: 1, Type: domain.ItemTop, Material: "wool"}
	r.Resolve(item, domain.ActivityLow)

	if item.Insulation != nil {
		t.Error("resolver must not write the derived value back onto the item")
	}
}
