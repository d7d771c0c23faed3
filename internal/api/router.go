package api

import (
	"net/http"

	"github.com/dom/rift-companion/internal/api/handlers"
	"github.com/dom/rift-companion/internal/api/middleware"
	"github.com/dom/rift-companion/internal/config"
	"github.com/dom/rift-companion/internal/live"
	"github.com/dom/rift-companion/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *live.Hub, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	catalogHandler := handlers.NewCatalogHandler(services.Catalog)
	advisorHandler := handlers.NewAdvisorHandler(services.Advisor)
	liveHandler := handlers.NewLiveHandler(hub)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/champions", func(r chi.Router) {
			r.Get("/", catalogHandler.ListChampions)
			r.Get("/{id}", catalogHandler.GetChampion)
		})

		r.Route("/items", func(r chi.Router) {
			r.Get("/", catalogHandler.ListItems)
			r.Get("/{id}", catalogHandler.GetItem)
		})

		r.Get("/runes", catalogHandler.ListRunes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.AdminJWTSecret))
			r.Post("/catalog/sync", catalogHandler.Sync)
		})

		r.Post("/threats", advisorHandler.AnalyzeThreats)
		r.Post("/builds/recommend", advisorHandler.RecommendBuild)
		r.Post("/compositions/simulate", advisorHandler.SimulateComposition)

		// WebSocket endpoint
		r.Get("/live", liveHandler.Handle)
	})

	return r
}
