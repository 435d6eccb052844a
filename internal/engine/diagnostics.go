package engine

import (
	"time"

	"github.com/stylecrate/outfit-service/internal/domain"
)

// Collector is an append-only diagnostics sink scoped to one recommendation
// request. It is passed down the pipeline by reference; a nil collector is
// valid and drops everything, so callers that don't care can pass nil.
type Collector struct {
	events   []domain.StageEvent
	warnings []string
}

func NewCollector() *Collector {
	return &Collector{}
}

// Stage appends one pipeline stage event.
func (c *Collector) Stage(name string, meta map[string]any) {
	if c == nil {
		return
	}
	c.events = append(c.events, domain.StageEvent{
		Stage: name,
		At:    time.Now().UTC(),
		Meta:  meta,
	})
}

// Warn appends a non-fatal warning.
func (c *Collector) Warn(msg string) {
	if c == nil {
		return
	}
	c.warnings = append(c.warnings, msg)
}

// Record snapshots the collected trail for the response.
func (c *Collector) Record() domain.DiagnosticsRecord {
	if c == nil {
		return domain.DiagnosticsRecord{}
	}
	events := make([]domain.StageEvent, len(c.events))
	copy(events, c.events)
	warnings := make([]string, len(c.warnings))
	copy(warnings, c.warnings)
	return domain.DiagnosticsRecord{Events: events, Warnings: warnings}
}
