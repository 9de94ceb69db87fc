package model

import "time"

// Album represents a record in the `albums` table. Every album
// references an existing artist and is owned by the user who
// created it. An album may have many songs.
//
// Fields:
//  ID        – primary key identifier.
//  Title     – album title (max 255 chars).
//  Year      – release year.
//  ArtistID  – ID of the parent artist (validated at creation).
//  UserID    – ID of the creating user; nil for unowned legacy rows.
//  CreatedAt – timestamp when the album was created.
//  UpdatedAt – timestamp of last update.
//  Artist    – parent artist, loaded on list/show.
//  Songs     – songs on the album, loaded on list/show.
type Album struct {
	ID        uint64    `json:"id"`         // albums.id
	Title     string    `json:"title"`      // albums.title
	Year      int       `json:"year"`       // albums.year
	ArtistID  uint64    `json:"artist_id"`  // albums.artist_id
	UserID    *uint64   `json:"user_id"`    // albums.user_id (nullable)
	CreatedAt time.Time `json:"created_at"` // albums.created_at
	UpdatedAt time.Time `json:"updated_at"` // albums.updated_at

	Artist *Artist `json:"artist,omitempty"` // eager-loaded relation
	Songs  []*Song `json:"songs,omitempty"`  // eager-loaded relation
}
