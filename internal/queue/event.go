// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// CatalogEvent is published whenever a catalog record is created, updated
// or deleted. It carries enough information for downstream consumers to
// log, notify, or trigger analytics without querying the primary database.
type CatalogEvent struct {
	Resource   string `json:"resource"` // "artist", "album" or "song"
	Action     string `json:"action"`   // "created", "updated" or "deleted"
	ID         uint64 `json:"id"`
	UserID     uint64 `json:"user_id"`
	Title      string `json:"title"`
	OccurredAt string `json:"occurred_at"`
}

// NewCatalogEvent builds a CatalogEvent stamped with the current UTC time.
func NewCatalogEvent(resource, action string, id, userID uint64, title string) CatalogEvent {
	return CatalogEvent{
		Resource:   resource,
		Action:     action,
		ID:         id,
		UserID:     userID,
		Title:      title,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
}
