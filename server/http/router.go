package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/jihun2da/newmatch/internal/config"
	matchHnd "github.com/jihun2da/newmatch/internal/match/handler"
	"github.com/jihun2da/newmatch/internal/middleware"
	"github.com/jihun2da/newmatch/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger, h *matchHnd.Handler, stats func() map[string]any) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health(stats))

	r.Post("/match", h.Match)
	r.Post("/match/export", h.Export)
	r.Post("/catalog/reload", h.ReloadCatalog)

	return r
}
