package repository // repository holds data access logic for catalog entities

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/musicbox/musicbox-api/internal/model"
)

// AlbumRepo provides methods to create and retrieve albums. It embeds
// a database handle to perform queries and commands.
type AlbumRepo struct {
	db *sql.DB
}

// NewAlbumRepo constructs an AlbumRepo with the given DB handle.
func NewAlbumRepo(db *sql.DB) *AlbumRepo {
	return &AlbumRepo{db: db}
}

// Create inserts a new album. The album must have Title, Year,
// ArtistID and UserID set; the caller is responsible for having
// validated that the artist exists. After insert the ID and
// timestamp fields are populated.
func (r *AlbumRepo) Create(ctx context.Context, al *model.Album) error {
	const qInsert = "INSERT INTO albums (title, year, artist_id, user_id) VALUES (?, ?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, al.Title, al.Year, al.ArtistID, al.UserID)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	al.ID = uint64(id)

	const qSelect = "SELECT title, year, artist_id, user_id, created_at, updated_at FROM albums WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, al.ID).
		Scan(&al.Title, &al.Year, &al.ArtistID, &al.UserID, &al.CreatedAt, &al.UpdatedAt)
}

// GetByID fetches an album by its ID together with its songs and
// parent artist. It returns ErrAlbumNotFound when no row is found.
func (r *AlbumRepo) GetByID(ctx context.Context, id uint64) (*model.Album, error) {
	const q = "SELECT id, title, year, artist_id, user_id, created_at, updated_at FROM albums WHERE id = ?"
	var al model.Album
	if err := r.db.QueryRowContext(ctx, q, id).
		Scan(&al.ID, &al.Title, &al.Year, &al.ArtistID, &al.UserID, &al.CreatedAt, &al.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAlbumNotFound
		}
		return nil, err
	}
	albums := []*model.Album{&al}
	if err := loadSongsForAlbums(ctx, r.db, albums); err != nil {
		return nil, err
	}
	if err := loadArtistsForAlbums(ctx, r.db, albums); err != nil {
		return nil, err
	}
	return &al, nil
}

// ExistsByID reports whether an album row with the given id exists.
func (r *AlbumRepo) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	const q = "SELECT 1 FROM albums WHERE id = ? LIMIT 1"
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

// List returns one page of albums ordered by id ascending plus the
// total count for the same filter. When year is non-nil only albums
// released that exact year are returned. Songs and parent artists
// are batch-loaded for the page.
func (r *AlbumRepo) List(ctx context.Context, year *int, page, pageSize int) ([]*model.Album, int64, error) {
	where := "1=1"
	args := []any{}
	if year != nil {
		where = "year = ?"
		args = append(args, *year)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM albums WHERE "+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	q := `SELECT id, title, year, artist_id, user_id, created_at, updated_at
	      FROM albums WHERE ` + where + ` ORDER BY id LIMIT ? OFFSET ?`
	argsData := append(append([]any{}, args...), pageSize, (page-1)*pageSize)
	rows, err := r.db.QueryContext(ctx, q, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]*model.Album, 0, pageSize)
	for rows.Next() {
		al := new(model.Album)
		if err := rows.Scan(&al.ID, &al.Title, &al.Year, &al.ArtistID, &al.UserID, &al.CreatedAt, &al.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, al)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if err := loadSongsForAlbums(ctx, r.db, out); err != nil {
		return nil, 0, err
	}
	if err := loadArtistsForAlbums(ctx, r.db, out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// Update persists the album's recognized fields and refreshes
// updated_at. It returns sql.ErrNoRows when no row matches the id.
func (r *AlbumRepo) Update(ctx context.Context, al *model.Album) error {
	const q = `UPDATE albums
	           SET title = ?, year = ?, artist_id = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, al.Title, al.Year, al.ArtistID, al.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return r.db.QueryRowContext(ctx, "SELECT updated_at FROM albums WHERE id = ?", al.ID).Scan(&al.UpdatedAt)
}

// Delete removes an album. Deletion is restricted: when the album
// still has songs, ErrConflict is returned and nothing is deleted.
// sql.ErrNoRows is returned when the id does not exist.
func (r *AlbumRepo) Delete(ctx context.Context, id uint64) error {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM songs WHERE album_id = ?", id).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrConflict
	}
	res, err := r.db.ExecContext(ctx, "DELETE FROM albums WHERE id = ?", id)
	if err != nil {
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
