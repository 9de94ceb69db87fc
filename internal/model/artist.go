package model

import "time"

// Artist represents a music artist in the catalog. Each artist is
// owned by the user who created it and may have many albums. This
// struct corresponds to a row in the `artists` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – artist name (max 255 chars).
//  Genre     – musical genre (max 255 chars).
//  Country   – country of origin (max 255 chars).
//  UserID    – ID of the creating user; nil for unowned legacy rows.
//  CreatedAt – timestamp when the artist was created.
//  UpdatedAt – timestamp of last update.
//  Albums    – albums belonging to the artist, loaded on list/show.
type Artist struct {
	ID        uint64    `json:"id"`         // artists.id
	Name      string    `json:"name"`       // artists.name
	Genre     string    `json:"genre"`      // artists.genre
	Country   string    `json:"country"`    // artists.country
	UserID    *uint64   `json:"user_id"`    // artists.user_id (nullable)
	CreatedAt time.Time `json:"created_at"` // artists.created_at
	UpdatedAt time.Time `json:"updated_at"` // artists.updated_at

	Albums []*Album `json:"albums,omitempty"` // eager-loaded relation
}
