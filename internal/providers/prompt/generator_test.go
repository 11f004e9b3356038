package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

func TestStaticGeneratorQuestions(t *testing.T) {
	t.Parallel()
	gen := NewStaticGenerator()

	res, err := gen.GenerateQuestions(context.Background(), "Test", domain.EnhancementOptions{})
	if err != nil {
		t.Fatalf("GenerateQuestions returned error: %v", err)
	}
	if res.Provider != staticProviderName {
		t.Fatalf("Provider = %q, want %q", res.Provider, staticProviderName)
	}
	if len(res.Questions) != 3 {
		t.Fatalf("expected 3 fallback questions, got %d", len(res.Questions))
	}
	wantIDs := []string{"purpose", "audience", "context"}
	for i, id := range wantIDs {
		if res.Questions[i].ID != id {
			t.Fatalf("question[%d].ID = %q, want %q", i, res.Questions[i].ID, id)
		}
	}
	if res.Questions[0].Type != domain.QuestionTypeMultipleChoice || len(res.Questions[0].Options) != 5 {
		t.Fatalf("purpose question malformed: %+v", res.Questions[0])
	}
	if res.Questions[1].Type != domain.QuestionTypeMultipleChoice || len(res.Questions[1].Options) != 4 {
		t.Fatalf("audience question malformed: %+v", res.Questions[1])
	}
	if res.Questions[2].Type != domain.QuestionTypeText || len(res.Questions[2].Options) != 0 {
		t.Fatalf("context question malformed: %+v", res.Questions[2])
	}
}

func TestStaticGeneratorEnhanceDeterministic(t *testing.T) {
	t.Parallel()
	gen := NewStaticGenerator()

	req := EnhanceRequest{
		OriginalPrompt: "Write a blog post",
		Questions: []domain.Question{
			{ID: "purpose", Question: "What is the primary purpose of this task?", Type: domain.QuestionTypeMultipleChoice, Options: []string{"Creative writing"}},
			{ID: "context", Question: "What additional context would be helpful?", Type: domain.QuestionTypeText},
		},
		Answers: []string{"Creative writing"},
	}

	first, err := gen.EnhancePrompt(context.Background(), req)
	if err != nil {
		t.Fatalf("EnhancePrompt returned error: %v", err)
	}
	second, err := gen.EnhancePrompt(context.Background(), req)
	if err != nil {
		t.Fatalf("EnhancePrompt returned error: %v", err)
	}
	if first.Text != second.Text {
		t.Fatal("fallback enhancement is not deterministic")
	}
	if !strings.Contains(first.Text, "Write a blog post") {
		t.Fatalf("enhanced text missing original prompt: %q", first.Text)
	}
	if !strings.Contains(first.Text, "You are a Senior Software Engineer specializing in Web Apps.") {
		t.Fatalf("enhanced text missing persona preamble: %q", first.Text)
	}
	if !strings.Contains(first.Text, "What is the primary purpose of this task?: Creative writing") {
		t.Fatalf("enhanced text missing answered question: %q", first.Text)
	}
	// The context question has no answer at index 1.
	if !strings.Contains(first.Text, "What additional context would be helpful?: Not specified") {
		t.Fatalf("enhanced text missing unanswered substitution: %q", first.Text)
	}
}
