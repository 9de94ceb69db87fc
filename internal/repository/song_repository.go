package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/musicbox/musicbox-api/internal/model"
)

// SongRepo provides methods to create and retrieve songs.
type SongRepo struct {
	db *sql.DB
}

// NewSongRepo constructs a SongRepo with the given DB handle.
func NewSongRepo(db *sql.DB) *SongRepo {
	return &SongRepo{db: db}
}

// Create inserts a new song. The caller is responsible for having
// validated that the album exists. After insert the ID and timestamp
// fields are populated.
func (r *SongRepo) Create(ctx context.Context, s *model.Song) error {
	const qInsert = "INSERT INTO songs (title, duration, album_id, user_id) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, s.Title, s.Duration, s.AlbumID, s.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	const qSelect = "SELECT title, duration, album_id, user_id, created_at, updated_at FROM songs WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, s.ID).
		Scan(&s.Title, &s.Duration, &s.AlbumID, &s.UserID, &s.CreatedAt, &s.UpdatedAt)
}

// GetByID fetches a song by its ID together with its album and that
// album's artist. It returns ErrSongNotFound when no row is found.
func (r *SongRepo) GetByID(ctx context.Context, id uint64) (*model.Song, error) {
	const q = "SELECT id, title, duration, album_id, user_id, created_at, updated_at FROM songs WHERE id = ?"
	var s model.Song
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.Title, &s.Duration, &s.AlbumID, &s.UserID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSongNotFound
		}
		return nil, err
	}
	if err := loadAlbumsForSongs(ctx, r.db, []*model.Song{&s}); err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns one page of songs ordered by id ascending plus the
// total count. Albums and their artists are batch-loaded for the
// page. Songs have no resource-specific filter.
func (r *SongRepo) List(ctx context.Context, page, pageSize int) ([]*model.Song, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM songs").Scan(&total); err != nil {
		return nil, 0, err
	}

	const q = `SELECT id, title, duration, album_id, user_id, created_at, updated_at
	           FROM songs ORDER BY id LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, q, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]*model.Song, 0, pageSize)
	for rows.Next() {
		s := new(model.Song)
		if err := rows.Scan(&s.ID, &s.Title, &s.Duration, &s.AlbumID, &s.UserID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := loadAlbumsForSongs(ctx, r.db, out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Update persists the song's recognized fields and refreshes
// updated_at. It returns sql.ErrNoRows when no row matches the id.
func (r *SongRepo) Update(ctx context.Context, s *model.Song) error {
	const q = `UPDATE songs
	           SET title = ?, duration = ?, album_id = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.Title, s.Duration, s.AlbumID, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return r.db.QueryRowContext(ctx, "SELECT updated_at FROM songs WHERE id = ?", s.ID).Scan(&s.UpdatedAt)
}

// Delete removes a song. sql.ErrNoRows is returned when the id does
// not exist. Songs have no dependent records, so no conflict check
// is needed.
func (r *SongRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM songs WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
