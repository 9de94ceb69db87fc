package internal

import (
	"context"
	"time"

	"github.com/musicbox/musicbox-api/internal/model"
)

// Store interfaces consumed by the HTTP handlers. The repository
// package provides the MySQL implementations; internal/mock provides
// func-field fakes for handler tests.

type ArtistStore interface {
	Create(ctx context.Context, a *model.Artist) error
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	List(ctx context.Context, genre string, page, pageSize int) ([]*model.Artist, int64, error)
	Update(ctx context.Context, a *model.Artist) error
	Delete(ctx context.Context, id uint64) error
}

type AlbumStore interface {
	Create(ctx context.Context, al *model.Album) error
	GetByID(ctx context.Context, id uint64) (*model.Album, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	List(ctx context.Context, year *int, page, pageSize int) ([]*model.Album, int64, error)
	Update(ctx context.Context, al *model.Album) error
	Delete(ctx context.Context, id uint64) error
}

type SongStore interface {
	Create(ctx context.Context, s *model.Song) error
	GetByID(ctx context.Context, id uint64) (*model.Song, error)
	List(ctx context.Context, page, pageSize int) ([]*model.Song, int64, error)
	Update(ctx context.Context, s *model.Song) error
	Delete(ctx context.Context, id uint64) error
}

type UserStore interface {
	Create(ctx context.Context, name, email, password string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

type TokenStore interface {
	StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error
	ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error)
	RevokeByHash(ctx context.Context, tokenHash string) error
	RevokeAllForUser(ctx context.Context, userID uint64) error
}
