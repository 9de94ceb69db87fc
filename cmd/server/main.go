package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/musicbox/musicbox-api/internal/config"
	"github.com/musicbox/musicbox-api/internal/database"
	"github.com/musicbox/musicbox-api/internal/handler"
	"github.com/musicbox/musicbox-api/internal/queue"
	"github.com/musicbox/musicbox-api/internal/repository"
	"github.com/musicbox/musicbox-api/internal/router"
	queuepublisher "github.com/musicbox/musicbox-api/internal/service"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	// Redis is optional. A nil client disables caching and rate limiting.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}
	cacheCfg := config.LoadCacheConfig()
	rlCfg := config.LoadRateLimitConfig()

	// Background consumer that appends catalog events to logs/catalog.log.
	go func() {
		if err := queue.StartCatalogConsumer(); err != nil {
			log.Printf("catalog consumer stopped: %v", err)
		}
	}()

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	artists := repository.NewArtistRepo(db)
	albums := repository.NewAlbumRepo(db)
	songs := repository.NewSongRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users, tokens)
	catalogHandler := handler.NewCatalogHandler(artists, albums, songs, queuepublisher.Publisher{})

	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e, catalogHandler, authHandler, cfg.JWTSecret, cacheCfg, rlCfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
