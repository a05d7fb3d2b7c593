package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"worldforge/internal/handlers"
	"worldforge/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	WorldService service.WorldService
	DB           handlers.Pinger
	// SearchRateLimit throttles the search endpoint per client.
	SearchRateLimit RateLimitConfig
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	healthHandler := handlers.NewHealthHandler(deps.DB)
	searchHandler := handlers.NewSearchHandler(deps.WorldService)
	tagHandler := handlers.NewTagHandler(deps.WorldService)
	connectionHandler := handlers.NewConnectionHandler(deps.WorldService)
	projectHandler := handlers.NewProjectHandler(deps.WorldService)
	noteHandler := handlers.NewNoteHandler(deps.WorldService)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)

		r.Post("/tags/analyze", tagHandler.Analyze)
		r.Get("/tags/categories/{category}", tagHandler.CategoryTags)
		r.Get("/connection-types", connectionHandler.Types)

		r.Get("/projects", projectHandler.List)
		r.Post("/projects", projectHandler.Create)

		r.Route("/projects/{projectID}", func(r chi.Router) {
			r.With(RateLimit(deps.SearchRateLimit)).Method(http.MethodGet, "/search", searchHandler)

			r.Post("/entities/{kind}", projectHandler.CreateEntity)
			r.Delete("/entities/{kind}/{entityID}", projectHandler.DeleteEntity)
			r.Post("/relations/{table}", projectHandler.CreateRelation)

			r.Get("/connections", connectionHandler.List)
			r.Post("/connections", connectionHandler.Create)
			r.Delete("/connections/{connectionID}", connectionHandler.Delete)

			r.Get("/characters/{characterID}/connections", connectionHandler.CharacterConnections)
			r.Get("/network", connectionHandler.Network)
			r.Get("/path", connectionHandler.Path)
		})
	})

	// Rendered notes
	r.Method(http.MethodGet, "/notes/{projectID}/{noteID}", noteHandler)

	return r
}
