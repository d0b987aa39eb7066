package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/fundflow/crowdfund-backend/internal/api/handlers"
	"github.com/fundflow/crowdfund-backend/internal/config"
	"github.com/fundflow/crowdfund-backend/internal/metrics"
	"github.com/fundflow/crowdfund-backend/internal/middleware"
	"github.com/fundflow/crowdfund-backend/internal/services"
)

// NewRouter wires the HTTP surface. accountSvc may be nil, in which case the
// signup/login routes are not mounted.
func NewRouter(cfg config.Config, campaignSvc *services.CampaignService, accountSvc *services.AccountService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// liveness, health & metrics
	r.Get("/", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("Server is running")) })
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	ch := handlers.NewCampaignHandler(campaignSvc)
	r.Route("/api/campaigns", func(r chi.Router) {
		r.Post("/", ch.Create)
		r.Get("/", ch.List)
		r.Get("/{id}", ch.Get)
		r.Post("/{id}/donate", ch.Donate)
		r.Put("/{id}", ch.Update)
		r.Delete("/{id}", ch.Delete)
	})

	if accountSvc != nil {
		ah := handlers.NewAuthHandler(accountSvc)
		r.Post("/signup", ah.Signup)
		r.Post("/login", ah.Login)
	}

	return r
}
