package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

const (
	staticProviderName     = "static"
	openRouterProviderName = "openrouter"
)

// EnhanceRequest carries everything the generator needs to rewrite a prompt.
// Answers are index-aligned with Questions; missing entries are rendered as
// unanswered.
type EnhanceRequest struct {
	OriginalPrompt string
	Questions      []domain.Question
	Answers        []string
	Options        domain.EnhancementOptions
}

// QuestionsResult is the outcome of question generation.
type QuestionsResult struct {
	Questions []domain.Question
	Provider  string
}

// EnhanceResult is the outcome of prompt enhancement.
type EnhanceResult struct {
	Text     string
	Provider string
}

// Generator produces clarifying questions and enhanced prompts. External
// implementations must absorb their own failures: both operations are
// expected to succeed whenever the fallback can serve the request.
type Generator interface {
	GenerateQuestions(ctx context.Context, originalPrompt string, opts domain.EnhancementOptions) (*QuestionsResult, error)
	EnhancePrompt(ctx context.Context, req EnhanceRequest) (*EnhanceResult, error)
}

// StaticGenerator is the deterministic local substitute used whenever no
// external completion provider is configured or the provider fails. Its
// output depends only on its input, so the workflow stays usable (and
// testable by exact string match) in preview mode.
type StaticGenerator struct{}

func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

func (s *StaticGenerator) GenerateQuestions(ctx context.Context, originalPrompt string, opts domain.EnhancementOptions) (*QuestionsResult, error) {
	questions := []domain.Question{
		{
			ID:       "purpose",
			Question: "What is the primary purpose of this task?",
			Type:     domain.QuestionTypeMultipleChoice,
			Options:  []string{"Problem solving", "Creative writing", "Analysis", "Code development", "Other"},
		},
		{
			ID:       "audience",
			Question: "Who is the target audience?",
			Type:     domain.QuestionTypeMultipleChoice,
			Options:  []string{"Beginners", "Intermediate", "Experts", "General audience"},
		},
		{
			ID:       "context",
			Question: "What additional context would be helpful?",
			Type:     domain.QuestionTypeText,
		},
	}
	return &QuestionsResult{Questions: questions, Provider: staticProviderName}, nil
}

func (s *StaticGenerator) EnhancePrompt(ctx context.Context, req EnhanceRequest) (*EnhanceResult, error) {
	parts := make([]string, 0, len(req.Questions))
	for i, q := range req.Questions {
		answer := "Not specified"
		if i < len(req.Answers) && strings.TrimSpace(req.Answers[i]) != "" {
			answer = req.Answers[i]
		}
		parts = append(parts, fmt.Sprintf("%s: %s", q.Question, answer))
	}
	qaContext := strings.Join(parts, ". ")

	text := fmt.Sprintf(`Enhanced version of your prompt: %q

Based on your answers (%s), here's a refined prompt that provides better context and specificity:

You are a Senior Software Engineer specializing in Web Apps. %s

Please provide a detailed, step-by-step response that considers the specific context and requirements mentioned. Include practical examples where relevant and ensure the solution is production-ready.`,
		req.OriginalPrompt, qaContext, req.OriginalPrompt)

	return &EnhanceResult{Text: text, Provider: staticProviderName}, nil
}

var _ Generator = (*StaticGenerator)(nil)
