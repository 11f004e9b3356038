package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/samson623/Prompt-Pro/internal/http/handlers"
	"github.com/samson623/Prompt-Pro/internal/infra"
	"github.com/samson623/Prompt-Pro/internal/middleware"
)

// NewRouter assembles the HTTP surface. The Stripe webhook stays outside the
// auth group: Stripe signs its requests instead of carrying a bearer token.
func NewRouter(app *handlers.App, cfg *infra.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		middleware.RequestID,
		middleware.Logger(app.Logger),
		chimw.Recoverer,
		middleware.CORS(cfg.CORSOrigins),
		middleware.RateLimit(cfg.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Post("/api/stripe-webhook", app.StripeWebhook)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(cfg.JWTSecret))
		r.Post("/api/generate-questions", app.GenerateQuestions)
		r.Post("/api/enhance-prompt", app.EnhancePrompt)
		r.Get("/api/prompts", app.ListPrompts)
		r.Get("/api/auth/user", app.AuthUser)
		r.Post("/api/create-subscription", app.CreateSubscription)
	})

	return r
}
