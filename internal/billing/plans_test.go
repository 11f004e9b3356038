package billing

import (
	"testing"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

func TestPlanConfigs(t *testing.T) {
	t.Parallel()
	cases := []struct {
		plan  domain.Plan
		limit int
		price int64
	}{
		{domain.PlanFree, 10, 0},
		{domain.PlanBasic, 75, 100},
		{domain.PlanPlus, 300, 300},
		{domain.PlanPro, 500, 500},
	}
	for _, tc := range cases {
		cfg, ok := PlanConfigs[tc.plan]
		if !ok {
			t.Fatalf("plan %q missing from PlanConfigs", tc.plan)
		}
		if cfg.PromptsLimit != tc.limit {
			t.Fatalf("%s: PromptsLimit = %d, want %d", tc.plan, cfg.PromptsLimit, tc.limit)
		}
		if cfg.PriceCents != tc.price {
			t.Fatalf("%s: PriceCents = %d, want %d", tc.plan, cfg.PriceCents, tc.price)
		}
	}
}

func TestPlanDisplayName(t *testing.T) {
	t.Parallel()
	if got := PlanDisplayName(domain.PlanBasic); got != "Basic Plan" {
		t.Fatalf("PlanDisplayName = %q, want %q", got, "Basic Plan")
	}
	if got := PlanDisplayName(domain.PlanPro); got != "Pro Plan" {
		t.Fatalf("PlanDisplayName = %q, want %q", got, "Pro Plan")
	}
}
