package domain

import "time"

type CalendarEvent struct {
	Title     string    `json:"title"`
	DressCode DressCode `json:"dress_code"`
	StartsAt  time.Time `json:"starts_at"`
}

// OccasionContext carries optional calendar and activity hints. A zero value
// is valid: the engine runs with whatever optional context is available.
type OccasionContext struct {
	Events   []CalendarEvent `json:"events,omitempty"`
	Activity ActivityLevel   `json:"activity,omitempty"`
}
