package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baechuer/real-time-ressys/services/resource-service/internal/config"
	"github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/handlers"
	appmw "github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/middleware"
)

// crudRoutes is satisfied by every handlers.ResourceHandler instantiation.
type crudRoutes interface {
	IDParam() string
	List(http.ResponseWriter, *http.Request)
	Get(http.ResponseWriter, *http.Request)
	Create(http.ResponseWriter, *http.Request)
	Update(http.ResponseWriter, *http.Request)
	Delete(http.ResponseWriter, *http.Request)
}

func New(
	todos *handlers.TodosHandler,
	users *handlers.UsersHandler,
	z *handlers.HealthHandler,
	cfg *config.Config,
) http.Handler {
	r := chi.NewRouter()

	r.Use(appmw.RequestID)
	r.Use(appmw.SecurityHeaders)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(appmw.AccessLog)
	if cfg.MetricsEnabled {
		r.Use(appmw.Metrics)
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{appmw.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", z.Healthz)
	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// health stays outside the rate limit
	var limit func(http.Handler) http.Handler
	if cfg.RLEnabled {
		limit = httprate.LimitByIP(cfg.RLLimit, cfg.RLWindow)
	}
	mountAPI := func(r chi.Router) {
		r.Get("/", z.Healthz)
		r.Group(func(r chi.Router) {
			if limit != nil {
				r.Use(limit)
			}
			mountResource(r, "/todos", todos)
			mountResource(r, "/users", users)
		})
	}
	if cfg.APIPrefix == "" {
		mountAPI(r)
	} else {
		r.Route(cfg.APIPrefix, mountAPI)
	}

	return r
}

func mountResource(r chi.Router, path string, h crudRoutes) {
	item := "/{" + h.IDParam() + "}"
	r.Route(path, func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get(item, h.Get)
		r.Patch(item, h.Update)
		r.Delete(item, h.Delete)
	})
}
