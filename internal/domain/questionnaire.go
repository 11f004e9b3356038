package domain

import "time"

// QuestionType enumerates the supported clarifying question shapes.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeText           QuestionType = "text"
	QuestionTypeBoolean        QuestionType = "boolean"
)

// Question is a single clarifying question inside a questionnaire.
// Options is non-empty iff Type is multiple-choice.
type Question struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
}

// QuestionnaireStatus enumerates questionnaire lifecycle states.
type QuestionnaireStatus string

const (
	QuestionnaireStatusPending   QuestionnaireStatus = "pending"
	QuestionnaireStatusCompleted QuestionnaireStatus = "completed"
	QuestionnaireStatusCancelled QuestionnaireStatus = "cancelled"
)

// Questionnaire pairs an original prompt with generated clarifying questions
// and, once submitted, the user's answers. Answers are index-aligned with
// Questions. A questionnaire is immutable once it leaves the pending state.
type Questionnaire struct {
	ID             string
	UserID         string
	OriginalPrompt string
	Questions      []Question
	Answers        []string
	Status         QuestionnaireStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
