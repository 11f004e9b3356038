package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/samson623/Prompt-Pro/internal/domain"
	"github.com/samson623/Prompt-Pro/internal/infra"
	"github.com/samson623/Prompt-Pro/internal/sqlinline"
)

// PromptRepositoryPG implements domain.PromptRepository backed by PostgreSQL.
type PromptRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewPromptRepository creates a new PromptRepositoryPG.
func NewPromptRepository(sql infra.SQLExecutor) *PromptRepositoryPG {
	return &PromptRepositoryPG{sql: sql}
}

// Create appends a completed enhancement record.
func (r *PromptRepositoryPG) Create(ctx context.Context, prompt *domain.Prompt) (*domain.Prompt, error) {
	qaData, err := json.Marshal(prompt.QuestionnaireData)
	if err != nil {
		return nil, fmt.Errorf("encode questionnaire data: %w", err)
	}
	opts, err := json.Marshal(prompt.EnhancementOptions)
	if err != nil {
		return nil, fmt.Errorf("encode enhancement options: %w", err)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertPrompt,
		prompt.UserID, prompt.OriginalPrompt, prompt.EnhancedPrompt, qaData, opts)
	if err := row.Scan(&prompt.ID, &prompt.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert prompt: %w", err)
	}
	return prompt, nil
}

// ListRecent returns the user's newest prompt records, newest first.
func (r *PromptRepositoryPG) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Prompt, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListRecentPrompts, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	var out []domain.Prompt
	for rows.Next() {
		var p domain.Prompt
		var qaRaw, optsRaw []byte
		if err := rows.Scan(&p.ID, &p.UserID, &p.OriginalPrompt, &p.EnhancedPrompt, &qaRaw, &optsRaw, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		if len(qaRaw) > 0 {
			if err := json.Unmarshal(qaRaw, &p.QuestionnaireData); err != nil {
				return nil, fmt.Errorf("decode questionnaire data: %w", err)
			}
		}
		if len(optsRaw) > 0 {
			if err := json.Unmarshal(optsRaw, &p.EnhancementOptions); err != nil {
				return nil, fmt.Errorf("decode enhancement options: %w", err)
			}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ domain.PromptRepository = (*PromptRepositoryPG)(nil)
