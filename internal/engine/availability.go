package engine

import (
	"time"

	"github.com/stylecrate/outfit-service/internal/domain"
)

// Dress-code restrictiveness, most restrictive first. An event's code wins
// over a less restrictive event's code regardless of event order.
var dressCodePriority = map[domain.DressCode]int{
	domain.DressFormal:         5,
	domain.DressBusinessCasual: 4,
	domain.DressAthletic:       3,
	domain.DressCasual:         2,
	domain.DressLoungewear:     1,
}

// FilterByLastWorn drops items worn within the cooldown window. The boundary
// is inclusive: an item worn exactly cooldownDays ago is still excluded. Items
// never worn always pass.
func FilterByLastWorn(items []domain.ClothingItem, cooldownDays int, now time.Time) []domain.ClothingItem {
	out := make([]domain.ClothingItem, 0, len(items))
	for _, item := range items {
		if item.LastWorn == nil || daysSince(*item.LastWorn, now) > cooldownDays {
			out = append(out, item)
		}
	}
	return out
}

// FilterByDressCode keeps items whose dress-code tags include code. An empty
// code keeps everything.
func FilterByDressCode(items []domain.ClothingItem, code domain.DressCode) []domain.ClothingItem {
	if code == "" {
		return items
	}
	out := make([]domain.ClothingItem, 0, len(items))
	for _, item := range items {
		if item.HasDressCode(code) {
			out = append(out, item)
		}
	}
	return out
}

// DressCodeFromEvents picks the most restrictive dress code across the day's
// calendar events; "" when no event implies one.
func DressCodeFromEvents(events []domain.CalendarEvent) domain.DressCode {
	var best domain.DressCode
	for _, ev := range events {
		if dressCodePriority[ev.DressCode] > dressCodePriority[best] {
			best = ev.DressCode
		}
	}
	return best
}

func daysSince(t, now time.Time) int {
	if now.Before(t) {
		return 0
	}
	return int(now.Sub(t).Hours() / 24)
}
