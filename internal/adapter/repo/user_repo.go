package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/samson623/Prompt-Pro/internal/domain"
	"github.com/samson623/Prompt-Pro/internal/infra"
	"github.com/samson623/Prompt-Pro/internal/sqlinline"
)

// UserRepositoryPG implements domain.UserRepository backed by PostgreSQL.
type UserRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewUserRepository creates a new UserRepositoryPG.
func NewUserRepository(sql infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{sql: sql}
}

// GetByID fetches a user by UUID.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QSelectUserByID, id)
	return scanUser(row)
}

// TryConsumePrompt performs the quota check-and-increment in a single
// conditional UPDATE. It returns false without mutation when prompts_used
// has reached prompts_limit.
func (r *UserRepositoryPG) TryConsumePrompt(ctx context.Context, userID string) (bool, error) {
	tag, err := r.sql.Exec(ctx, sqlinline.QConsumePrompt, userID)
	if err != nil {
		return false, fmt.Errorf("consume prompt: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return true, nil
	}
	var exists bool
	if err := r.sql.QueryRow(ctx, sqlinline.QUserExists, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return false, domain.ErrNotFound
	}
	return false, nil
}

// UpdatePlan sets the user's subscription tier and monthly prompt limit.
func (r *UserRepositoryPG) UpdatePlan(ctx context.Context, userID string, plan domain.Plan, promptsLimit int) (*domain.User, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QUpdateUserPlan, userID, string(plan), promptsLimit)
	return scanUser(row)
}

// UpdateStripeInfo records the Stripe customer and subscription identifiers.
func (r *UserRepositoryPG) UpdateStripeInfo(ctx context.Context, userID, customerID, subscriptionID string) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QUpdateUserStripeInfo, userID, customerID, subscriptionID)
	if err != nil {
		return fmt.Errorf("update stripe info: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var plan string
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL,
		&u.StripeCustomerID, &u.StripeSubscriptionID,
		&plan, &u.PromptsUsed, &u.PromptsLimit, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	u.CurrentPlan = domain.Plan(plan)
	return &u, nil
}

var _ domain.UserRepository = (*UserRepositoryPG)(nil)
