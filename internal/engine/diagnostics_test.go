package engine

import "testing"

func TestCollectorOrdering(t *testing.T) {
	c := NewCollector()
	c.Stage("context", map[string]any{"items": 3})
	c.Warn("calendar unavailable")
	c.Stage("selection", nil)

	rec := c.Record()

	if len(rec.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(rec.Events))
	}
	if rec.Events[0].Stage != "context" || rec.Events[1].Stage != "selection" {
		t.Errorf("events out of order: %v", rec.Events)
	}
	if len(rec.Warnings) != 1 || rec.Warnings[0] != "calendar unavailable" {
		t.Errorf("unexpected warnings: %v", rec.Warnings)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.Stage("context", nil)
	c.Warn("ignored")

	rec := c.Record()
	if len(rec.Events) != 0 || len(rec.Warnings) != 0 {
		t.Errorf("nil collector must record nothing, got %v", rec)
	}
}

func TestRecordSnapshots(t *testing.T) {
	c := NewCollector()
	c.Stage("context", nil)

	rec := c.Record()
	c.Stage("selection", nil)

	if len(rec.Events) != 1 {
		t.Errorf("earlier snapshot must not grow, got %d events", len(rec.Events))
	}
}
