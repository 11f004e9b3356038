package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samson623/Prompt-Pro/internal/adapter/repo"
	"github.com/samson623/Prompt-Pro/internal/billing"
	"github.com/samson623/Prompt-Pro/internal/enhance"
	"github.com/samson623/Prompt-Pro/internal/http/handlers"
	"github.com/samson623/Prompt-Pro/internal/http/httpapi"
	"github.com/samson623/Prompt-Pro/internal/infra"
	"github.com/samson623/Prompt-Pro/internal/infra/geoip"
	"github.com/samson623/Prompt-Pro/internal/providers/prompt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)
	users := repo.NewUserRepository(runner)
	questionnaires := repo.NewQuestionnaireRepository(runner)
	prompts := repo.NewPromptRepository(runner)

	generator := buildGenerator(cfg, logger)
	enhanceSvc := enhance.NewService(users, questionnaires, prompts, generator, logger)
	billingSvc := billing.NewService(users, cfg.StripeSecretKey, cfg.StripeWebhookSecret, logger)
	if !billingSvc.Configured() {
		logger.Warn().Msg("stripe not configured, subscriptions run in preview mode")
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip disabled")
	}
	if resolver != nil {
		defer func() {
			if closer, ok := resolver.(*geoip.Resolver); ok {
				_ = closer.Close()
			}
		}()
	}

	app := &handlers.App{
		Logger:       logger,
		SQL:          runner,
		Enhance:      enhanceSvc,
		Billing:      billingSvc,
		Users:        users,
		GeoIP:        resolver,
		HistoryLimit: cfg.PromptHistoryLimit,
	}

	router := httpapi.NewRouter(app, cfg)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

func buildGenerator(cfg *infra.Config, logger infra.Logger) prompt.Generator {
	static := prompt.NewStaticGenerator()
	if cfg.OpenRouterAPIKey == "" {
		logger.Warn().Msg("OPENROUTER_API_KEY not set, using deterministic enhancement")
		return static
	}
	return prompt.NewOpenRouterGenerator(prompt.OpenRouterOptions{
		APIKey:   cfg.OpenRouterAPIKey,
		Model:    cfg.OpenRouterModel,
		BaseURL:  cfg.OpenRouterBaseURL,
		Fallback: static,
		OnFallback: func(reason string, err error) {
			logger.Warn().Err(err).Str("reason", reason).Msg("openrouter fallback")
		},
	})
}
