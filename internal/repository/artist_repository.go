// Package repository contains data access logic separated from HTTP
// handlers. This file defines repository methods for artist CRUD and
// lookup operations.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/musicbox/musicbox-api/internal/model"
)

// ArtistRepo encapsulates all database queries related to artists. It
// depends on a sql.DB connection which should be configured elsewhere.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
// This allows dependency injection of the database in tests and at
// startup.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

// Create inserts a new artist. On success the ID field is populated
// with the auto-generated value and a follow-up SELECT fills the
// timestamp fields so callers receive a fully populated record.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const qInsert = "INSERT INTO artists (name, genre, country, user_id) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, a.Name, a.Genre, a.Country, a.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)

	const qSelect = "SELECT name, genre, country, user_id, created_at, updated_at FROM artists WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, a.ID).
		Scan(&a.Name, &a.Genre, &a.Country, &a.UserID, &a.CreatedAt, &a.UpdatedAt)
}

// GetByID fetches an artist by its ID together with its albums and
// their songs. It returns ErrArtistNotFound if no row is found.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	const q = "SELECT id, name, genre, country, user_id, created_at, updated_at FROM artists WHERE id = ?"
	var a model.Artist
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&a.ID, &a.Name, &a.Genre, &a.Country, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	if err := loadAlbumsForArtists(ctx, r.db, []*model.Artist{&a}); err != nil {
		return nil, err
	}
	return &a, nil
}

// ExistsByID reports whether an artist row with the given id exists.
// Handlers use it to validate foreign keys before inserting albums.
func (r *ArtistRepo) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	const q = "SELECT 1 FROM artists WHERE id = ? LIMIT 1"
	var one int
	err := r.db.QueryRowContext(ctx, q, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List returns one page of artists ordered by id ascending, together
// with the total row count for the same filter. When genre is
// non-empty only artists with that exact genre are returned. Albums
// and their songs are batch-loaded for the page.
func (r *ArtistRepo) List(ctx context.Context, genre string, page, pageSize int) ([]*model.Artist, int64, error) {
	where := "1=1"
	args := []any{}
	if genre != "" {
		where = "genre = ?"
		args = append(args, genre)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM artists WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT id, name, genre, country, user_id, created_at, updated_at
	      FROM artists WHERE ` + where + ` ORDER BY id LIMIT ? OFFSET ?`
	argsData := append(append([]any{}, args...), pageSize, (page-1)*pageSize)
	rows, err := r.db.QueryContext(ctx, q, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]*model.Artist, 0, pageSize)
	for rows.Next() {
		a := new(model.Artist)
		if err := rows.Scan(&a.ID, &a.Name, &a.Genre, &a.Country, &a.UserID, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := loadAlbumsForArtists(ctx, r.db, out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Update persists the artist's recognized fields. It returns
// sql.ErrNoRows when no row matches the id. The updated_at column is
// refreshed and read back so callers return current timestamps.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists
	           SET name = ?, genre = ?, country = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, a.Name, a.Genre, a.Country, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return r.db.QueryRowContext(ctx, "SELECT updated_at FROM artists WHERE id = ?", a.ID).Scan(&a.UpdatedAt)
}

// Delete removes an artist. Deletion is restricted: when the artist
// still has albums, ErrConflict is returned and nothing is deleted.
// sql.ErrNoRows is returned when the id does not exist.
func (r *ArtistRepo) Delete(ctx context.Context, id uint64) error {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM albums WHERE artist_id = ?", id).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM artists WHERE id = ?", id)
	if err != nil {
		// 1451: row is referenced by a foreign key (raced with an insert)
		if strings.Contains(err.Error(), "1451") {
			return ErrConflict
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
