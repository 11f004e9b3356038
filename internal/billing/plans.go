package billing

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/samson623/Prompt-Pro/internal/domain"
)

// PlanConfig describes a subscription tier: the monthly enhancement quota it
// grants and its price in USD cents.
type PlanConfig struct {
	PromptsLimit int
	PriceCents   int64
}

// PlanConfigs maps every supported tier to its quota and monthly price.
var PlanConfigs = map[domain.Plan]PlanConfig{
	domain.PlanFree:  {PromptsLimit: 10, PriceCents: 0},
	domain.PlanBasic: {PromptsLimit: 75, PriceCents: 100},
	domain.PlanPlus:  {PromptsLimit: 300, PriceCents: 300},
	domain.PlanPro:   {PromptsLimit: 500, PriceCents: 500},
}

var titleCaser = cases.Title(language.English)

// PlanDisplayName renders the tier name used on Stripe products and
// invoices, e.g. "Basic Plan".
func PlanDisplayName(plan domain.Plan) string {
	return titleCaser.String(string(plan)) + " Plan"
}
