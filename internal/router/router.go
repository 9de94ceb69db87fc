package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/musicbox/musicbox-api/internal/config"
	"github.com/musicbox/musicbox-api/internal/handler"
	"github.com/musicbox/musicbox-api/internal/middleware"
)

// RegisterRoutes wires every endpoint onto the provided Echo instance.
//
// The health check lives at the root so load balancers can probe the
// service without a token. Registration, login and token exchange live
// under /api/auth and are open. Everything else lives under /api and
// requires a valid access token; the rate limiter and response cache
// run on that group when enabled.
func RegisterRoutes(
	e *echo.Echo,
	cat *handler.CatalogHandler,
	auth *handler.AuthHandler,
	jwtSecret string,
	cacheCfg config.CacheConfig,
	rlCfg config.RateLimitConfig,
	rdb *redis.Client,
) {
	e.GET("/healthz", handler.Health)

	// Unauthenticated session endpoints.
	ag := e.Group("/api/auth")
	ag.POST("/register", auth.Register)
	ag.POST("/login", auth.Login)
	// Refresh rotates the refresh token; logout revokes it. Neither
	// requires an access token, only the refresh token in the body.
	ag.POST("/refresh", auth.Refresh)
	ag.POST("/logout", auth.Logout)

	// Everything below requires a valid access token.
	api := e.Group("/api")
	api.Use(middleware.JWTAuth(jwtSecret))
	api.Use(middleware.NewTokenBucket(rlCfg, rdb))

	// The response cache is keyed by route and query only, so it may
	// serve one caller's body to another. That is fine for the shared
	// catalog reads and wrong for anything per-user, so it is attached
	// per route instead of to the whole group.
	cache := middleware.NewRedisCache(cacheCfg, rdb)

	api.GET("/user", auth.Me)

	api.GET("/artists", cat.ListArtists, cache)
	api.POST("/artists", cat.CreateArtist)
	api.GET("/artists/:id", cat.ShowArtist, cache)
	api.PUT("/artists/:id", cat.UpdateArtist)
	api.DELETE("/artists/:id", cat.DestroyArtist)

	api.GET("/albums", cat.ListAlbums, cache)
	api.POST("/albums", cat.CreateAlbum)
	api.GET("/albums/:id", cat.ShowAlbum, cache)
	api.PUT("/albums/:id", cat.UpdateAlbum)
	api.DELETE("/albums/:id", cat.DestroyAlbum)

	api.GET("/songs", cat.ListSongs, cache)
	api.POST("/songs", cat.CreateSong)
	api.GET("/songs/:id", cat.ShowSong, cache)
	api.PUT("/songs/:id", cat.UpdateSong)
	api.DELETE("/songs/:id", cat.DestroySong)
}
