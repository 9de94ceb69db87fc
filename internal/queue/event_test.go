package queue

import (
	"testing"
	"time"
)

func TestNewCatalogEvent(t *testing.T) {
	ev := NewCatalogEvent("album", "created", 11, 7, "Kind of Blue")
	if ev.Resource != "album" || ev.Action != "created" {
		t.Errorf("resource/action = %s/%s", ev.Resource, ev.Action)
	}
	if ev.ID != 11 || ev.UserID != 7 {
		t.Errorf("id/user_id = %d/%d", ev.ID, ev.UserID)
	}
	if ev.Title != "Kind of Blue" {
		t.Errorf("title = %q", ev.Title)
	}
	ts, err := time.Parse(time.RFC3339, ev.OccurredAt)
	if err != nil {
		t.Fatalf("occurred_at %q is not RFC3339: %v", ev.OccurredAt, err)
	}
	if d := time.Since(ts); d < 0 || d > time.Minute {
		t.Errorf("occurred_at %v not near now", ts)
	}
}
