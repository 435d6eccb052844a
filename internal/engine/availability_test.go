package engine

import (
	"testing"
	"time"

	"github.com/stylecrate/outfit-service/internal/domain"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestCooldownBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	cooldown := 3

	onBoundary := domain.ClothingItem{ID: 1, Type: domain.ItemTop, LastWorn: timePtr(now.AddDate(0, 0, -cooldown))}
	pastBoundary := domain.ClothingItem{ID: 2, Type: domain.ItemTop, LastWorn: timePtr(now.AddDate(0, 0, -cooldown-1))}

	got := FilterByLastWorn([]domain.ClothingItem{onBoundary, pastBoundary}, cooldown, now)

	// Worn exactly cooldown days ago is still excluded; one day further back is eligible
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only item 2 to survive, got %v", got)
	}
}

func TestCooldownNeverWornAlwaysEligible(t *testing.T) {
	now := time.Now()
	items := []domain.ClothingItem{
		{ID: 1, Type: domain.ItemTop},
		{ID: 2, Type: domain.ItemTop, LastWorn: timePtr(now.AddDate(0, 0, -1))},
	}

	got := FilterByLastWorn(items, 7, now)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only the never-worn item, got %v", got)
	}
}

func TestFilterByDressCode(t *testing.T) {
	items := []domain.ClothingItem{
		{ID: 1, DressCodes: []domain.DressCode{domain.DressCasual}},
		{ID: 2, DressCodes: []domain.DressCode{domain.DressFormal, domain.DressBusinessCasual}},
	}

	got := FilterByDressCode(items, domain.DressFormal)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected only the formal item, got %v", got)
	}

	// Empty code keeps everything
	if got := FilterByDressCode(items, ""); len(got) != 2 {
		t.Errorf("empty dress code should keep all items, got %d", len(got))
	}
}

func TestDressCodeFromEventsPriority(t *testing.T) {
	events := []domain.CalendarEvent{
		{Title: "gym", DressCode: domain.DressAthletic},
		{Title: "board meeting", DressCode: domain.DressFormal},
		{Title: "coffee", DressCode: domain.DressCasual},
	}

	if got := DressCodeFromEvents(events); got != domain.DressFormal {
		t.Errorf("expected formal to win, got %q", got)
	}
}

func TestDressCodeFromEventsEmpty(t *testing.T) {
	if got := DressCodeFromEvents(nil); got != "" {
		t.Errorf("expected no dress code for empty events, got %q", got)
	}
}
