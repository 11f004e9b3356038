package enhance

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/samson623/Prompt-Pro/internal/domain"
	"github.com/samson623/Prompt-Pro/internal/providers/prompt"
)

// Service orchestrates the two-phase enhancement workflow: question
// generation against a pending questionnaire, then quota-gated completion.
type Service struct {
	users          domain.UserRepository
	questionnaires domain.QuestionnaireRepository
	prompts        domain.PromptRepository
	generator      prompt.Generator
	logger         zerolog.Logger
}

// NewService wires the workflow with its collaborators.
func NewService(
	users domain.UserRepository,
	questionnaires domain.QuestionnaireRepository,
	prompts domain.PromptRepository,
	generator prompt.Generator,
	logger zerolog.Logger,
) *Service {
	return &Service{
		users:          users,
		questionnaires: questionnaires,
		prompts:        prompts,
		generator:      generator,
		logger:         logger,
	}
}

// QuestionsOutcome is the result of the first workflow phase.
type QuestionsOutcome struct {
	QuestionnaireID string
	Questions       []domain.Question
	Provider        string
}

// EnhanceOutcome is the result of the second workflow phase.
type EnhanceOutcome struct {
	EnhancedPrompt string
	OriginalPrompt string
	Provider       string
}

// GenerateQuestions validates the input, creates a pending questionnaire and
// populates it with clarifying questions. The generator absorbs external
// provider failures, so the only error sources here are validation and
// persistence.
func (s *Service) GenerateQuestions(ctx context.Context, userID, originalPrompt string, opts domain.EnhancementOptions) (*QuestionsOutcome, error) {
	if strings.TrimSpace(originalPrompt) == "" {
		return nil, fmt.Errorf("%w: originalPrompt is required", domain.ErrValidation)
	}
	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	questionnaire, err := s.questionnaires.Create(ctx, userID, originalPrompt)
	if err != nil {
		return nil, fmt.Errorf("create questionnaire: %w", err)
	}

	res, err := s.generator.GenerateQuestions(ctx, originalPrompt, opts)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	if err := s.questionnaires.SetQuestions(ctx, questionnaire.ID, res.Questions); err != nil {
		return nil, fmt.Errorf("store questions: %w", err)
	}

	s.logger.Debug().
		Str("questionnaire_id", questionnaire.ID).
		Str("provider", res.Provider).
		Int("questions", len(res.Questions)).
		Msg("questions generated")

	return &QuestionsOutcome{
		QuestionnaireID: questionnaire.ID,
		Questions:       res.Questions,
		Provider:        res.Provider,
	}, nil
}

// EnhancePrompt consumes one unit of the user's quota, completes the
// questionnaire with the submitted answers and persists the enhancement
// record. The quota check always runs before the (potentially costly)
// generator call, so a denied user never triggers an external request.
// A short answers slice is accepted; unanswered questions are substituted
// by the generator.
func (s *Service) EnhancePrompt(ctx context.Context, userID, questionnaireID string, answers []string, opts domain.EnhancementOptions) (*EnhanceOutcome, error) {
	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	allowed, err := s.users.TryConsumePrompt(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("consume quota: %w", err)
	}
	if !allowed {
		return nil, domain.ErrQuotaExceeded
	}

	questionnaire, err := s.questionnaires.GetForUser(ctx, questionnaireID, userID)
	if err != nil {
		return nil, err
	}
	if questionnaire.Status != domain.QuestionnaireStatusPending {
		return nil, domain.ErrNotFound
	}

	res, err := s.generator.EnhancePrompt(ctx, prompt.EnhanceRequest{
		OriginalPrompt: questionnaire.OriginalPrompt,
		Questions:      questionnaire.Questions,
		Answers:        answers,
		Options:        opts,
	})
	if err != nil {
		return nil, fmt.Errorf("enhance prompt: %w", err)
	}

	record := &domain.Prompt{
		UserID:         userID,
		OriginalPrompt: questionnaire.OriginalPrompt,
		EnhancedPrompt: res.Text,
		QuestionnaireData: domain.QuestionnaireData{
			Questions: questionnaire.Questions,
			Answers:   answers,
		},
		EnhancementOptions: opts,
	}
	if _, err := s.prompts.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("persist prompt: %w", err)
	}

	if err := s.questionnaires.Complete(ctx, questionnaireID, userID, answers); err != nil {
		return nil, fmt.Errorf("complete questionnaire: %w", err)
	}

	s.logger.Debug().
		Str("questionnaire_id", questionnaireID).
		Str("provider", res.Provider).
		Msg("prompt enhanced")

	return &EnhanceOutcome{
		EnhancedPrompt: res.Text,
		OriginalPrompt: questionnaire.OriginalPrompt,
		Provider:       res.Provider,
	}, nil
}

// ListPrompts returns the user's most recent enhancement records.
func (s *Service) ListPrompts(ctx context.Context, userID string, limit int) ([]domain.Prompt, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.prompts.ListRecent(ctx, userID, limit)
}
