package prompt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

const enhanceSystemMessage = `You are an expert prompt engineer. Enhance the given prompt based on the questionnaire answers. Create a detailed, well-structured prompt that incorporates all the context and requirements. Return only the enhanced prompt text, no additional formatting or explanation.`

func buildQuestionSystemMessage(opts domain.EnhancementOptions) string {
	prefs, _ := json.Marshal(opts)
	sb := &strings.Builder{}
	sb.WriteString("You are an AI assistant that generates clarifying questions to enhance user prompts. ")
	sb.WriteString("Generate 3-5 specific, contextual questions that will help improve the given prompt. ")
	sb.WriteString(`Return the response as a JSON array of question objects with "id", "question", "type" (multiple-choice, text, or boolean), and "options" (for multiple-choice questions).`)
	fmt.Fprintf(sb, "\n\nEnhancement preferences: %s\n\n", prefs)
	sb.WriteString("Make questions specific to the prompt content and purpose.")
	return sb.String()
}

func buildEnhanceUserMessage(req EnhanceRequest) string {
	sb := &strings.Builder{}
	fmt.Fprintf(sb, "Original prompt: %q\n\nQuestionnaire Q&A:\n", req.OriginalPrompt)
	for i, q := range req.Questions {
		answer := "Not answered"
		if i < len(req.Answers) && strings.TrimSpace(req.Answers[i]) != "" {
			answer = req.Answers[i]
		}
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(sb, "Q: %s\nA: %s", q.Question, answer)
	}
	sb.WriteString("\n\nPlease enhance this prompt based on the answers provided.")
	return sb.String()
}

// parseQuestionPayload strictly parses then validates the model's question
// array. Anything short of a fully well-formed question set is an error, so
// the caller falls back instead of trusting the external shape.
func parseQuestionPayload(raw string) ([]domain.Question, error) {
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return nil, errors.New("empty payload")
	}
	var questions []domain.Question
	if err := json.Unmarshal([]byte(cleaned), &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, errors.New("no questions")
	}
	seen := make(map[string]struct{}, len(questions))
	for i, q := range questions {
		if strings.TrimSpace(q.ID) == "" {
			return nil, fmt.Errorf("question %d: missing id", i)
		}
		if _, dup := seen[q.ID]; dup {
			return nil, fmt.Errorf("question %d: duplicate id %q", i, q.ID)
		}
		seen[q.ID] = struct{}{}
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("question %d: missing text", i)
		}
		switch q.Type {
		case domain.QuestionTypeMultipleChoice:
			if len(q.Options) == 0 {
				return nil, fmt.Errorf("question %d: multiple-choice without options", i)
			}
		case domain.QuestionTypeText, domain.QuestionTypeBoolean:
			if len(q.Options) > 0 {
				return nil, fmt.Errorf("question %d: options on %s question", i, q.Type)
			}
		default:
			return nil, fmt.Errorf("question %d: unknown type %q", i, q.Type)
		}
	}
	return questions, nil
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.IndexAny(text, "{[")
	end := strings.LastIndexAny(text, "]}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
