package domain

import "context"

// UserRepository defines access methods for users and their usage counters.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	// TryConsumePrompt atomically increments prompts_used by one when the
	// user is still under prompts_limit. It returns false without mutation
	// when the quota is exhausted, and ErrNotFound for unknown users.
	TryConsumePrompt(ctx context.Context, userID string) (bool, error)
	UpdatePlan(ctx context.Context, userID string, plan Plan, promptsLimit int) (*User, error)
	UpdateStripeInfo(ctx context.Context, userID, customerID, subscriptionID string) error
}

// QuestionnaireRepository persists questionnaire records and enforces the
// pending -> completed/cancelled lifecycle at the SQL layer.
type QuestionnaireRepository interface {
	Create(ctx context.Context, userID, originalPrompt string) (*Questionnaire, error)
	SetQuestions(ctx context.Context, id string, questions []Question) error
	// GetForUser returns ErrNotFound for missing records and for records
	// owned by a different user, indistinguishably.
	GetForUser(ctx context.Context, id, userID string) (*Questionnaire, error)
	// Complete stores answers and transitions pending -> completed in one
	// statement. ErrNotFound when the record is missing, foreign, or no
	// longer pending.
	Complete(ctx context.Context, id, userID string, answers []string) error
	// Cancel transitions pending -> cancelled. Administrative use only.
	Cancel(ctx context.Context, id string) error
}

// PromptRepository appends and lists completed enhancement records.
type PromptRepository interface {
	Create(ctx context.Context, prompt *Prompt) (*Prompt, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]Prompt, error)
}
