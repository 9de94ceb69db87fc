package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/musicbox/musicbox-api/internal/config"
	"github.com/musicbox/musicbox-api/internal/handler"
	"github.com/musicbox/musicbox-api/internal/mock"
	"github.com/musicbox/musicbox-api/internal/model"
	"github.com/musicbox/musicbox-api/internal/utils"
)

const testSecret = "router-test-secret"

// newTestServer wires the full route table against mock stores and a
// miniredis-backed cache, mirroring what main does.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cacheCfg := config.CacheConfig{
		Enabled:      true,
		Methods:      map[string]bool{http.MethodGet: true},
		TTL:          time.Minute,
		KeyStrategy:  "route_query",
		Prefix:       "cache",
		MaxBodyBytes: 1 << 20,
	}
	rlCfg := config.RateLimitConfig{Enabled: false}

	cat := handler.NewCatalogHandler(
		&mock.ArtistStore{
			ListFn: func(ctx context.Context, genre string, page, pageSize int) ([]*model.Artist, int64, error) {
				return []*model.Artist{{ID: 1, Name: "Portishead", Genre: "Trip Hop"}}, 1, nil
			},
		},
		&mock.AlbumStore{},
		&mock.SongStore{},
		nil,
	)
	auth := handler.NewAuthHandler(
		config.Config{JWTSecret: testSecret, AccessTTLMin: 15, RefreshTTLDays: 30},
		&mock.UserStore{
			GetByIDFn: func(ctx context.Context, id uint64) (model.User, error) {
				// Each user gets a distinct profile body.
				switch id {
				case 1:
					return model.User{ID: 1, Name: "Alice", Email: "alice@example.com", Role: "user"}, nil
				case 2:
					return model.User{ID: 2, Name: "Bob", Email: "bob@example.com", Role: "user"}, nil
				}
				return model.User{}, context.Canceled
			},
		},
		&mock.TokenStore{},
	)

	e := echo.New()
	RegisterRoutes(e, cat, auth, testSecret, cacheCfg, rlCfg, rdb)
	return e
}

func bearerFor(t *testing.T, userID uint64) string {
	t.Helper()
	tok, err := utils.NewAccessToken(testSecret, userID, "user", 15)
	if err != nil {
		t.Fatalf("NewAccessToken failed: %v", err)
	}
	return "Bearer " + tok.Token
}

func doGet(e *echo.Echo, target, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", auth)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// The profile route must never be served from the shared response
// cache: its body differs per authenticated user while the cache key
// only covers route and query.
func TestUserProfileIsNeverCached(t *testing.T) {
	e := newTestServer(t)

	alice := doGet(e, "/api/user", bearerFor(t, 1))
	if alice.Code != http.StatusOK {
		t.Fatalf("alice status = %d\nbody: %s", alice.Code, alice.Body.String())
	}
	if !strings.Contains(alice.Body.String(), "alice@example.com") {
		t.Fatalf("alice body = %s", alice.Body.String())
	}

	bob := doGet(e, "/api/user", bearerFor(t, 2))
	if bob.Code != http.StatusOK {
		t.Fatalf("bob status = %d\nbody: %s", bob.Code, bob.Body.String())
	}
	if bob.Header().Get("X-Cache") == "HIT" {
		t.Error("profile response served from the shared cache")
	}
	if strings.Contains(bob.Body.String(), "alice@example.com") {
		t.Errorf("bob received alice's profile: %s", bob.Body.String())
	}
	if !strings.Contains(bob.Body.String(), "bob@example.com") {
		t.Errorf("bob body = %s", bob.Body.String())
	}
}

// The shared catalog reads are where the cache belongs; a repeated
// list request is served from Redis regardless of which user asks.
func TestCatalogListIsCached(t *testing.T) {
	e := newTestServer(t)

	first := doGet(e, "/api/artists", bearerFor(t, 1))
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d\nbody: %s", first.Code, first.Body.String())
	}
	if first.Header().Get("X-Cache") == "HIT" {
		t.Fatal("first request unexpectedly served from cache")
	}

	second := doGet(e, "/api/artists", bearerFor(t, 2))
	if second.Code != http.StatusOK {
		t.Fatalf("second status = %d\nbody: %s", second.Code, second.Body.String())
	}
	if second.Header().Get("X-Cache") != "HIT" {
		t.Error("repeated catalog list was not served from cache")
	}
	if second.Body.String() != first.Body.String() {
		t.Errorf("cached body differs:\nfirst:  %s\nsecond: %s", first.Body.String(), second.Body.String())
	}
}
