package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "filmwiki/internal/adapters/http_server"
	"filmwiki/internal/adapters/observability"
	redisad "filmwiki/internal/adapters/redis"
	"filmwiki/internal/app"
	"filmwiki/internal/content"
	"filmwiki/internal/shared"
	mysqlrepo "filmwiki/internal/storage/mysql"
	"filmwiki/internal/wiki/dokuwiki"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cache.Close()

	preview := app.NewPreviewService(mysqlrepo.New(db), dokuwiki.New(), cache, cfg.CacheTTL, content.WithAuthor(cfg.Author))
	handler := server.NewPreviewAPI(preview, observability.MetricsHandler(observability.InitRegistry()))

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	if err := server.Run(ctx, cfg.HTTPAddr, handler); err != nil {
		log.Error().Err(err).Msg("http server failed")
		return
	}
	log.Info().Msg("API stopped")
}
