package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/samson623/Prompt-Pro/internal/adapter/repo"
	"github.com/samson623/Prompt-Pro/internal/billing"
	"github.com/samson623/Prompt-Pro/internal/domain"
	"github.com/samson623/Prompt-Pro/internal/infra"
	"github.com/samson623/Prompt-Pro/internal/sqlinline"
)

// Operator tool for plan changes outside Stripe, usage resets and stuck
// questionnaire cleanup. Cancelling is deliberately unreachable from the API;
// this command is the only path to the cancelled state.
func main() {
	var (
		idFlag       string
		emailFlag    string
		planFlag     string
		resetFlag    bool
		cancelQnFlag string
	)

	flag.StringVar(&idFlag, "id", "", "user ID to update (UUID)")
	flag.StringVar(&emailFlag, "email", "", "user email to update")
	flag.StringVar(&planFlag, "plan", "", "plan to assign (free, basic, plus, pro)")
	flag.BoolVar(&resetFlag, "reset-usage", false, "reset prompts_used to 0")
	flag.StringVar(&cancelQnFlag, "cancel-questionnaire", "", "cancel a pending questionnaire by ID")
	flag.Parse()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "userplan").Logger()
	runner := infra.NewSQLRunner(pool, logger)

	if cancelQnFlag != "" {
		questionnaires := repo.NewQuestionnaireRepository(runner)
		if err := questionnaires.Cancel(ctx, cancelQnFlag); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				exitWithError(fmt.Errorf("questionnaire %s not found or not pending", cancelQnFlag))
			}
			exitWithError(fmt.Errorf("failed to cancel questionnaire: %w", err))
		}
		fmt.Printf("Questionnaire %s cancelled\n", cancelQnFlag)
		return
	}

	userID := strings.TrimSpace(idFlag)
	email := strings.TrimSpace(emailFlag)
	if userID == "" && email == "" {
		exitWithError(errors.New("either -id or -email must be provided"))
	}
	if planFlag == "" && !resetFlag {
		exitWithError(errors.New("nothing to do: pass -plan and/or -reset-usage"))
	}

	if userID == "" {
		row := runner.QueryRow(ctx, sqlinline.QSelectUserIDByEmail, email)
		if err := row.Scan(&userID); err != nil {
			exitWithError(fmt.Errorf("failed to find user by email: %w", err))
		}
	}

	if planFlag != "" {
		plan := domain.Plan(strings.ToLower(strings.TrimSpace(planFlag)))
		cfg, ok := billing.PlanConfigs[plan]
		if !ok {
			exitWithError(fmt.Errorf("unsupported plan %q", planFlag))
		}
		users := repo.NewUserRepository(runner)
		updated, err := users.UpdatePlan(ctx, userID, plan, cfg.PromptsLimit)
		if err != nil {
			exitWithError(fmt.Errorf("failed to update user plan: %w", err))
		}
		fmt.Printf("User %s (%s) updated to plan %s, prompts_limit=%d\n",
			updated.ID, updated.Email, updated.CurrentPlan, updated.PromptsLimit)
	}

	if resetFlag {
		var limit int
		row := runner.QueryRow(ctx, sqlinline.QResetUserUsage, userID)
		if err := row.Scan(&limit); err != nil {
			exitWithError(fmt.Errorf("failed to reset usage: %w", err))
		}
		fmt.Printf("User %s usage reset, prompts_used=0/%d\n", userID, limit)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
