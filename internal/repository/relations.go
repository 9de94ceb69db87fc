package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/musicbox/musicbox-api/internal/model"
)

// Relation loading helpers shared by the resource repositories. The
// original ORM-style eager loads (artists with albums.songs, albums
// with songs and artist, songs with album.artist) become explicit
// batched IN (...) queries here so a page of records costs a fixed
// number of round trips.

// placeholders returns a "?, ?, ?" fragment for n bound values.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// loadAlbumsForArtists fills the Albums slice of every artist, then
// loads the songs of those albums. Artists without albums keep a nil
// slice so the relation is omitted from JSON only when truly absent.
func loadAlbumsForArtists(ctx context.Context, db *sql.DB, artists []*model.Artist) error {
	if len(artists) == 0 {
		return nil
	}
	byID := make(map[uint64]*model.Artist, len(artists))
	args := make([]any, 0, len(artists))
	for _, a := range artists {
		byID[a.ID] = a
		args = append(args, a.ID)
	}

	q := `SELECT id, title, year, artist_id, user_id, created_at, updated_at
	      FROM albums WHERE artist_id IN (` + placeholders(len(args)) + `) ORDER BY id`
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	var albums []*model.Album
	for rows.Next() {
		al := new(model.Album)
		if err := rows.Scan(&al.ID, &al.Title, &al.Year, &al.ArtistID, &al.UserID, &al.CreatedAt, &al.UpdatedAt); err != nil {
			return err
		}
		albums = append(albums, al)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if err := loadSongsForAlbums(ctx, db, albums); err != nil {
		return err
	}
	for _, al := range albums {
		if parent, ok := byID[al.ArtistID]; ok {
			parent.Albums = append(parent.Albums, al)
		}
	}
	return nil
}

// loadSongsForAlbums fills the Songs slice of every album.
func loadSongsForAlbums(ctx context.Context, db *sql.DB, albums []*model.Album) error {
	if len(albums) == 0 {
		return nil
	}
	byID := make(map[uint64]*model.Album, len(albums))
	args := make([]any, 0, len(albums))
	for _, al := range albums {
		byID[al.ID] = al
		args = append(args, al.ID)
	}

	q := `SELECT id, title, duration, album_id, user_id, created_at, updated_at
	      FROM songs WHERE album_id IN (` + placeholders(len(args)) + `) ORDER BY id`
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		s := new(model.Song)
		if err := rows.Scan(&s.ID, &s.Title, &s.Duration, &s.AlbumID, &s.UserID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return err
		}
		if parent, ok := byID[s.AlbumID]; ok {
			parent.Songs = append(parent.Songs, s)
		}
	}
	return rows.Err()
}

// loadArtistsForAlbums sets the Artist field of every album. Albums
// sharing an artist point at the same loaded struct.
func loadArtistsForAlbums(ctx context.Context, db *sql.DB, albums []*model.Album) error {
	if len(albums) == 0 {
		return nil
	}
	seen := make(map[uint64]bool, len(albums))
	args := make([]any, 0, len(albums))
	for _, al := range albums {
		if !seen[al.ArtistID] {
			seen[al.ArtistID] = true
			args = append(args, al.ArtistID)
		}
	}

	q := `SELECT id, name, genre, country, user_id, created_at, updated_at
	      FROM artists WHERE id IN (` + placeholders(len(args)) + `)`
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byID := make(map[uint64]*model.Artist, len(args))
	for rows.Next() {
		a := new(model.Artist)
		if err := rows.Scan(&a.ID, &a.Name, &a.Genre, &a.Country, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return err
		}
		byID[a.ID] = a
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for _, al := range albums {
		al.Artist = byID[al.ArtistID]
	}
	return nil
}

// loadAlbumsForSongs sets the Album field of every song, including
// each album's parent artist.
func loadAlbumsForSongs(ctx context.Context, db *sql.DB, songs []*model.Song) error {
	if len(songs) == 0 {
		return nil
	}
	seen := make(map[uint64]bool, len(songs))
	args := make([]any, 0, len(songs))
	for _, s := range songs {
		if !seen[s.AlbumID] {
			seen[s.AlbumID] = true
			args = append(args, s.AlbumID)
		}
	}

	q := `SELECT id, title, year, artist_id, user_id, created_at, updated_at
	      FROM albums WHERE id IN (` + placeholders(len(args)) + `)`
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	byID := make(map[uint64]*model.Album, len(args))
	albums := make([]*model.Album, 0, len(args))
	for rows.Next() {
		al := new(model.Album)
		if err := rows.Scan(&al.ID, &al.Title, &al.Year, &al.ArtistID, &al.UserID, &al.CreatedAt, &al.UpdatedAt); err != nil {
			return err
		}
		byID[al.ID] = al
		albums = append(albums, al)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if err := loadArtistsForAlbums(ctx, db, albums); err != nil {
		return err
	}
	for _, s := range songs {
		s.Album = byID[s.AlbumID]
	}
	return nil
}
