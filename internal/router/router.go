package router

import (
	"net/http"
	"time"

	_ "dog-playdate-matcher/docs"
	"dog-playdate-matcher/internal/domain/matching"
	"dog-playdate-matcher/internal/middleware"
	"dog-playdate-matcher/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => nop

	// Opcional: si viene, se usa cuando el request no trae users_data.
	Source     matching.CandidateSource
	SourceName string

	// Opcional: habilita POST /generate_users.
	Generator matching.OwnerGenerator

	Match matching.Options

	// RateLimitPerMinute <= 0 desactiva el rate limit de matching.
	RateLimitPerMinute int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svc := matching.NewService(opts.Source, opts.SourceName, opts.Match, log)

	r.Group(func(gr chi.Router) {
		gr.Use(chimw.RequestSize(matching.MaxRequestBytes))
		if opts.RateLimitPerMinute > 0 {
			gr.Use(httprate.LimitByIP(opts.RateLimitPerMinute, time.Minute))
		}
		matching.RegisterRoutes(gr, svc, opts.Generator)
	})

	return r
}
