package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jihun2da/newmatch/internal/catalog"
	"github.com/jihun2da/newmatch/internal/config"
	"github.com/jihun2da/newmatch/internal/fileio"
	"github.com/jihun2da/newmatch/internal/match/engine"
	matchHnd "github.com/jihun2da/newmatch/internal/match/handler"
	serverhttp "github.com/jihun2da/newmatch/server/http"
)

func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	keywords := engine.DefaultNoiseKeywords()
	if _, err := os.Stat(cfg.KeywordFile); err == nil {
		kw, err := fileio.ReadKeywordColumn(cfg.KeywordFile)
		if err != nil {
			logger.Warn().Err(err).Str("file", cfg.KeywordFile).Msg("keyword file unreadable, using built-in list")
		} else if len(kw) > 0 {
			logger.Info().Int("keywords", len(kw)).Str("file", cfg.KeywordFile).Msg("noise keywords loaded")
			keywords = kw
		}
	}

	eng := engine.New(logger, keywords, engine.DefaultConfig())

	cat := catalog.NewClient(logger, cfg.CatalogURL, cfg.CatalogTimeout, true)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.CatalogTimeout)
	eng.SetCatalog(cat.Fetch(ctx))
	cancel()

	h := matchHnd.New(cfg, logger, eng, cat)
	r := serverhttp.NewRouter(cfg, logger, h, eng.Stats)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)
	logger.Info().Msg("bye")
}
