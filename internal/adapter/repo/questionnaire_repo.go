package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/samson623/Prompt-Pro/internal/domain"
	"github.com/samson623/Prompt-Pro/internal/infra"
	"github.com/samson623/Prompt-Pro/internal/sqlinline"
)

// QuestionnaireRepositoryPG implements domain.QuestionnaireRepository backed by PostgreSQL.
type QuestionnaireRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewQuestionnaireRepository creates a new QuestionnaireRepositoryPG.
func NewQuestionnaireRepository(sql infra.SQLExecutor) *QuestionnaireRepositoryPG {
	return &QuestionnaireRepositoryPG{sql: sql}
}

// Create inserts a pending questionnaire with an empty question list.
func (r *QuestionnaireRepositoryPG) Create(ctx context.Context, userID, originalPrompt string) (*domain.Questionnaire, error) {
	q := &domain.Questionnaire{
		UserID:         userID,
		OriginalPrompt: originalPrompt,
		Status:         domain.QuestionnaireStatusPending,
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertQuestionnaire, userID, originalPrompt)
	if err := row.Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert questionnaire: %w", err)
	}
	return q, nil
}

// SetQuestions stores the generated question list on a pending record.
func (r *QuestionnaireRepositoryPG) SetQuestions(ctx context.Context, id string, questions []domain.Question) error {
	payload, err := json.Marshal(questions)
	if err != nil {
		return fmt.Errorf("encode questions: %w", err)
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QSetQuestionnaireQuestions, id, payload)
	if err != nil {
		return fmt.Errorf("set questions: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetForUser loads a questionnaire scoped to its owner. Foreign and missing
// ids are indistinguishable to the caller.
func (r *QuestionnaireRepositoryPG) GetForUser(ctx context.Context, id, userID string) (*domain.Questionnaire, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectQuestionnaireForUser, id, userID)
	var q domain.Questionnaire
	var status string
	var questionsRaw, answersRaw []byte
	err := row.Scan(&q.ID, &q.UserID, &q.OriginalPrompt, &questionsRaw, &answersRaw, &status, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(questionsRaw, &q.Questions); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}
	if err := json.Unmarshal(answersRaw, &q.Answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	q.Status = domain.QuestionnaireStatus(status)
	return &q, nil
}

// Complete stores answers and transitions the record out of pending.
// ErrNotFound covers missing, foreign and already-terminal records alike.
func (r *QuestionnaireRepositoryPG) Complete(ctx context.Context, id, userID string, answers []string) error {
	if answers == nil {
		answers = []string{}
	}
	payload, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	tag, err := r.sql.Exec(ctx, sqlinline.QCompleteQuestionnaire, id, userID, payload)
	if err != nil {
		return fmt.Errorf("complete questionnaire: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Cancel abandons a pending questionnaire. No server endpoint triggers this;
// it exists for administrative tooling.
func (r *QuestionnaireRepositoryPG) Cancel(ctx context.Context, id string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QCancelQuestionnaire, id)
	if err != nil {
		return fmt.Errorf("cancel questionnaire: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.QuestionnaireRepository = (*QuestionnaireRepositoryPG)(nil)
