package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/samson623/Prompt-Pro/internal/billing"
	"github.com/samson623/Prompt-Pro/internal/domain"
	"github.com/samson623/Prompt-Pro/internal/enhance"
	"github.com/samson623/Prompt-Pro/internal/infra"
	"github.com/samson623/Prompt-Pro/internal/infra/geoip"
	"github.com/samson623/Prompt-Pro/internal/middleware"
	"github.com/samson623/Prompt-Pro/internal/sqlinline"
)

// EnhanceService is the slice of the enhancement workflow the HTTP layer
// needs.
type EnhanceService interface {
	GenerateQuestions(ctx context.Context, userID, originalPrompt string, opts domain.EnhancementOptions) (*enhance.QuestionsOutcome, error)
	EnhancePrompt(ctx context.Context, userID, questionnaireID string, answers []string, opts domain.EnhancementOptions) (*enhance.EnhanceOutcome, error)
	ListPrompts(ctx context.Context, userID string, limit int) ([]domain.Prompt, error)
}

// BillingService is the slice of the billing subsystem the HTTP layer needs.
type BillingService interface {
	CreateSubscription(ctx context.Context, userID string, plan domain.Plan) (*billing.SubscriptionResult, error)
	HandleWebhook(payload []byte, sigHeader string) error
}

// App carries the handlers' dependencies.
type App struct {
	Logger       zerolog.Logger
	SQL          infra.SQLExecutor
	Enhance      EnhanceService
	Billing      BillingService
	Users        domain.UserRepository
	GeoIP        geoip.CountryResolver
	HistoryLimit int
}

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, errorResponse{Error: code, Message: message})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

// workflowError maps domain sentinels onto HTTP responses. Quota refusals
// carry the upgrade hint the client renders verbatim.
func (a *App) workflowError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		a.error(w, http.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, domain.ErrQuotaExceeded):
		a.error(w, http.StatusForbidden, "quota_exceeded", "Usage limit reached. Please upgrade your plan.")
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "questionnaire not found")
	default:
		a.Logger.Error().Err(err).Msg("workflow failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

// logUsage records an analytics event. Failures are logged and swallowed;
// analytics never block a response.
func (a *App) logUsage(r *http.Request, userID, eventType string, success bool, started time.Time, props map[string]any) {
	if a.SQL == nil {
		return
	}
	if props == nil {
		props = map[string]any{}
	}
	if a.GeoIP != nil {
		if country, err := a.GeoIP.CountryCode(middleware.ClientIP(r)); err == nil && country != "" {
			props["country"] = country
		}
	}
	payload, _ := json.Marshal(props)
	latency := time.Since(started).Milliseconds()
	_, err := a.SQL.Exec(r.Context(), sqlinline.QInsertUsageEvent, userID, eventType, success, latency, payload)
	if err != nil && !errors.Is(err, context.Canceled) {
		a.Logger.Warn().Err(err).Str("event_type", eventType).Msg("log usage failed")
	}
}
