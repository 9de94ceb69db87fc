package mock

import (
	"context"
	"time"

	"github.com/musicbox/musicbox-api/internal/model"
)

// Func-field fakes for the store interfaces. Tests inject only the
// functions a case needs; calling an unset function panics, which
// doubles as an assertion that the handler short-circuited earlier.

type ArtistStore struct {
	CreateFn     func(ctx context.Context, a *model.Artist) error
	GetByIDFn    func(ctx context.Context, id uint64) (*model.Artist, error)
	ExistsByIDFn func(ctx context.Context, id uint64) (bool, error)
	ListFn       func(ctx context.Context, genre string, page, pageSize int) ([]*model.Artist, int64, error)
	UpdateFn     func(ctx context.Context, a *model.Artist) error
	DeleteFn     func(ctx context.Context, id uint64) error
}

func (s *ArtistStore) Create(ctx context.Context, a *model.Artist) error {
	return s.CreateFn(ctx, a)
}

func (s *ArtistStore) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	return s.GetByIDFn(ctx, id)
}

func (s *ArtistStore) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	return s.ExistsByIDFn(ctx, id)
}

func (s *ArtistStore) List(ctx context.Context, genre string, page, pageSize int) ([]*model.Artist, int64, error) {
	return s.ListFn(ctx, genre, page, pageSize)
}

func (s *ArtistStore) Update(ctx context.Context, a *model.Artist) error {
	return s.UpdateFn(ctx, a)
}

func (s *ArtistStore) Delete(ctx context.Context, id uint64) error {
	return s.DeleteFn(ctx, id)
}

type AlbumStore struct {
	CreateFn     func(ctx context.Context, al *model.Album) error
	GetByIDFn    func(ctx context.Context, id uint64) (*model.Album, error)
	ExistsByIDFn func(ctx context.Context, id uint64) (bool, error)
	ListFn       func(ctx context.Context, year *int, page, pageSize int) ([]*model.Album, int64, error)
	UpdateFn     func(ctx context.Context, al *model.Album) error
	DeleteFn     func(ctx context.Context, id uint64) error
}

func (s *AlbumStore) Create(ctx context.Context, al *model.Album) error {
	return s.CreateFn(ctx, al)
}

func (s *AlbumStore) GetByID(ctx context.Context, id uint64) (*model.Album, error) {
	return s.GetByIDFn(ctx, id)
}

func (s *AlbumStore) ExistsByID(ctx context.Context, id uint64) (bool, error) {
	return s.ExistsByIDFn(ctx, id)
}

func (s *AlbumStore) List(ctx context.Context, year *int, page, pageSize int) ([]*model.Album, int64, error) {
	return s.ListFn(ctx, year, page, pageSize)
}

func (s *AlbumStore) Update(ctx context.Context, al *model.Album) error {
	return s.UpdateFn(ctx, al)
}

func (s *AlbumStore) Delete(ctx context.Context, id uint64) error {
	return s.DeleteFn(ctx, id)
}

type SongStore struct {
	CreateFn  func(ctx context.Context, s *model.Song) error
	GetByIDFn func(ctx context.Context, id uint64) (*model.Song, error)
	ListFn    func(ctx context.Context, page, pageSize int) ([]*model.Song, int64, error)
	UpdateFn  func(ctx context.Context, s *model.Song) error
	DeleteFn  func(ctx context.Context, id uint64) error
}

func (s *SongStore) Create(ctx context.Context, sg *model.Song) error {
	return s.CreateFn(ctx, sg)
}

func (s *SongStore) GetByID(ctx context.Context, id uint64) (*model.Song, error) {
	return s.GetByIDFn(ctx, id)
}

func (s *SongStore) List(ctx context.Context, page, pageSize int) ([]*model.Song, int64, error) {
	return s.ListFn(ctx, page, pageSize)
}

func (s *SongStore) Update(ctx context.Context, sg *model.Song) error {
	return s.UpdateFn(ctx, sg)
}

func (s *SongStore) Delete(ctx context.Context, id uint64) error {
	return s.DeleteFn(ctx, id)
}

type UserStore struct {
	CreateFn     func(ctx context.Context, name, email, password string, cost int) (uint64, error)
	GetByEmailFn func(ctx context.Context, email string) (model.User, error)
	GetByIDFn    func(ctx context.Context, id uint64) (model.User, error)
}

func (s *UserStore) Create(ctx context.Context, name, email, password string, cost int) (uint64, error) {
	return s.CreateFn(ctx, name, email, password, cost)
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return s.GetByEmailFn(ctx, email)
}

func (s *UserStore) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return s.GetByIDFn(ctx, id)
}

type TokenStore struct {
	StoreRefreshFn     func(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error
	ValidateRefreshFn  func(ctx context.Context, tokenHash string) (uint64, error)
	RevokeByHashFn     func(ctx context.Context, tokenHash string) error
	RevokeAllForUserFn func(ctx context.Context, userID uint64) error
}

func (s *TokenStore) StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error {
	return s.StoreRefreshFn(ctx, userID, tokenHash, exp)
}

func (s *TokenStore) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
	return s.ValidateRefreshFn(ctx, tokenHash)
}

func (s *TokenStore) RevokeByHash(ctx context.Context, tokenHash string) error {
	return s.RevokeByHashFn(ctx, tokenHash)
}

func (s *TokenStore) RevokeAllForUser(ctx context.Context, userID uint64) error {
	return s.RevokeAllForUserFn(ctx, userID)
}
