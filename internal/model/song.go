package model

import "time"

// Song represents a record in the `songs` table. Every song
// references an existing album and is owned by the user who
// created it.
//
// Fields:
//  ID        – primary key identifier.
//  Title     – song title (max 255 chars).
//  Duration  – playing time in seconds, at least 1.
//  AlbumID   – ID of the parent album (validated at creation).
//  UserID    – ID of the creating user; nil for unowned legacy rows.
//  CreatedAt – timestamp when the song was created.
//  UpdatedAt – timestamp of last update.
//  Album     – parent album (with its artist), loaded on list/show.
type Song struct {
	ID        uint64    `json:"id"`         // songs.id
	Title     string    `json:"title"`      // songs.title
	Duration  int       `json:"duration"`   // songs.duration (seconds)
	AlbumID   uint64    `json:"album_id"`   // songs.album_id
	UserID    *uint64   `json:"user_id"`    // songs.user_id (nullable)
	CreatedAt time.Time `json:"created_at"` // songs.created_at
	UpdatedAt time.Time `json:"updated_at"` // songs.updated_at

	Album *Album `json:"album,omitempty"` // eager-loaded relation
}
