package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	server "filmwiki/internal/adapters/http_server"
	"filmwiki/internal/adapters/observability"
	redisad "filmwiki/internal/adapters/redis"
	"filmwiki/internal/app"
	"filmwiki/internal/content"
	"filmwiki/internal/wiki/dokuwiki"
)

var (
	serveAddr    string
	serveNoCache bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendered pages over HTTP for preview",
	Long: `Starts the preview API:

  GET    /v1/{kind}/{id}/page?lang=de   rendered page as text/plain
  DELETE /v1/{kind}/{id}/page           drop cached previews
  GET    /healthz, /metrics`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $HTTP_ADDR)")
	serveCmd.Flags().BoolVar(&serveNoCache, "no-cache", false, "render every request without redis")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepo(ctx)
	if err != nil {
		return err
	}
	defer closeRepo()

	var preview *app.PreviewService
	if serveNoCache {
		preview = app.NewPreviewService(repo, dokuwiki.New(), nil, 0, content.WithAuthor(cfg.Author))
	} else {
		cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		defer cache.Close()
		if err := cache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, previews are rendered uncached until it is back")
		}
		preview = app.NewPreviewService(repo, dokuwiki.New(), cache, cfg.CacheTTL, content.WithAuthor(cfg.Author))
	}

	addr := pick(serveAddr, cfg.HTTPAddr)
	handler := server.NewPreviewAPI(preview, observability.MetricsHandler(observability.InitRegistry()))
	log.Info().Str("addr", addr).Msg("preview API listening")
	return server.Run(ctx, addr, handler)
}
