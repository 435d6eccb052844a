package domain

import "time"

// StageEvent records one pipeline stage's outcome, for observability only.
type StageEvent struct {
	Stage string         `json:"stage"`
	At    time.Time      `json:"at"`
	Meta  map[string]any `json:"meta,omitempty"`
}

// DiagnosticsRecord is built fresh per request and discarded after the
// response; it never drives control flow.
type DiagnosticsRecord struct {
	Events   []StageEvent `json:"events"`
	Warnings []string     `json:"warnings"`
}
