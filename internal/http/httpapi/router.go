package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"donation/internal/http/handlers"
	"donation/internal/infra"
	"donation/internal/middleware"
)

func NewRouter(app *handlers.App, cfg *infra.Config, logger infra.Logger) stdhttp.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(logger),
		middleware.CORS(cfg.AllowedOrigins),
	)

	// Health
	r.Get("/v1/healthz", app.Health)

	r.Route("/donation", func(r chi.Router) {
		r.With(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute)).
			Post("/checkout", app.DonationsCheckout)
		r.Get("/checkout/{sessionID}", app.DonationsCheckoutStatus)
	})

	return r
}
