package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-todos-api/internal/application/discover"
	todoapp "github.com/go-todos-api/internal/application/todo"
	"github.com/go-todos-api/internal/config"
	"github.com/go-todos-api/internal/transport/http/handler"
	appmiddleware "github.com/go-todos-api/internal/transport/http/middleware"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		// Credentialed CORS cannot use the * wildcard, so origins are echoed
		// back when they match the configured list.
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			for _, allowed := range cfg.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authMw := appmiddleware.Auth(deps.JWTProvider)

	// 10 requests/second, burst of 20 — applied to the public discover endpoint.
	searchRL := appmiddleware.NewRateLimiter(rate.Limit(10), 20)

	todoSvc := todoapp.NewService(deps.TodoRepo, deps.Attachments, cfg.UploadURLExpiry)
	discoverSvc := discover.NewService(deps.SearchIndex)

	healthH := handler.NewHealthHandler()
	todoH := handler.NewTodoHandler(todoSvc)
	searchH := handler.NewSearchHandler(discoverSvc)

	r.Route("/v1", func(r chi.Router) {
		// ── Public routes (no auth) ──────────────────────────────────────────
		r.Get("/health-check", healthH.Ping)
		r.With(searchRL.Limit).Get("/search", searchH.Search)

		// ── Authenticated routes ─────────────────────────────────────────────
		r.Group(func(r chi.Router) {
			r.Use(authMw)

			r.Get("/todos", todoH.List)
			r.Post("/todos", todoH.Create)
			r.Patch("/todos/{todoId}", todoH.Update)
			r.Delete("/todos/{todoId}", todoH.Delete)
			r.Post("/todos/{todoId}/attachment", todoH.Attachment)
		})
	})

	return r
}
