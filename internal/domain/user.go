package domain

import "time"

// Plan enumerates subscription tiers.
type Plan string

const (
	PlanFree  Plan = "free"
	PlanBasic Plan = "basic"
	PlanPlus  Plan = "plus"
	PlanPro   Plan = "pro"
)

// Valid reports whether the plan is one of the supported tiers.
func (p Plan) Valid() bool {
	switch p {
	case PlanFree, PlanBasic, PlanPlus, PlanPro:
		return true
	}
	return false
}

// User represents an authenticated account. The auth and billing subsystems
// own every field except the usage counters, which the enhancement workflow
// conditionally increments through TryConsumePrompt.
type User struct {
	ID                   string
	Email                string
	FirstName            string
	LastName             string
	ProfileImageURL      string
	StripeCustomerID     string
	StripeSubscriptionID string
	CurrentPlan          Plan
	PromptsUsed          int
	PromptsLimit         int
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// PromptsRemaining returns how many enhancements the user may still run
// in the current billing cycle.
func (u User) PromptsRemaining() int {
	remaining := u.PromptsLimit - u.PromptsUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}
