package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// projectIDParam matches integer ids only, so /project/abc is a plain 404.
const projectIDParam = "{" + projectIDKey + ":[0-9]+}"

// Init builds the router. requestTimeout bounds every request context; zero
// disables the limit.
func (h *Handler) Init(requestTimeout time.Duration) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withMetrics)
	if requestTimeout > 0 {
		router.Use(middleware.Timeout(requestTimeout))
	}

	router.Get("/metrics", promhttp.Handler().ServeHTTP)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/version/build", h.getBuildInfo)

		r.Route("/api/v0/project", func(r chi.Router) {
			r.Put("/", h.createProject)
			r.Get("/", h.listProjects)

			r.Get("/"+projectIDParam, h.getProject)
			r.Post("/"+projectIDParam, h.updateProject)
			r.Delete("/"+projectIDParam, h.deleteProject)
			r.Post("/"+projectIDParam+"/reopen", h.reopenProject)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
