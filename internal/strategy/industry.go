package strategy

import (
	"strings"

	"github.com/atelierlabs/atelier/internal/model"
)

// industryRule maps product-idea keywords to an industry. Rules are evaluated
// in order; the first rule with a matching keyword wins.
type industryRule struct {
	industry model.Industry
	keywords []string
}

var industryRules = []industryRule{
	{model.IndustryHealthcare, []string{"health", "medical", "patient", "clinic", "hospital", "doctor", "nurse", "diagnosis", "treatment"}},
	{model.IndustryFinance, []string{"finance", "banking", "payment", "transaction", "investment", "trading", "wallet", "credit", "loan"}},
	{model.IndustryEcommerce, []string{"shop", "store", "cart", "checkout", "inventory", "retail", "ecommerce", "e-commerce", "purchase", "buy"}},
	// Dashboard must be probed before the generic saas keywords, otherwise
	// "analytics dashboard" classifies as saas.
	{model.IndustryDashboard, []string{"dashboard", "analytics", "metrics", "monitoring", "reporting"}},
	{model.IndustrySaaS, []string{"saas", "software", "platform", "tool", "app", "crm", "management"}},
	{model.IndustryEducation, []string{"education", "learning", "course", "student", "teacher", "school", "university", "tutorial", "lesson"}},
	{model.IndustryMarketing, []string{"marketing", "landing", "campaign", "promotion", "advertising", "brand", "social media"}},
	{model.IndustryEnterprise, []string{"enterprise", "b2b", "business", "corporate", "organization", "company"}},
	{model.IndustryConsumer, []string{"consumer", "b2c", "personal", "individual"}},
}

// DetectIndustry classifies a product idea by keyword. Unmatched ideas fall
// through to IndustryUnknown.
func DetectIndustry(productIdea string) model.Industry {
	idea := strings.ToLower(productIdea)
	for _, rule := range industryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(idea, keyword) {
				return rule.industry
			}
		}
	}
	return model.IndustryUnknown
}

// baseline holds the per-industry starting point for principle derivation.
type baseline struct {
	philosophy model.Philosophy
	density    model.Density
	warmth     int
	clarity    int
	speed      int
}

var industryBaselines = map[model.Industry]baseline{
	model.IndustryHealthcare: {model.PhilosophyUtilityFirst, model.DensitySpacious, 4, 10, 9},
	model.IndustryFinance:    {model.PhilosophyUtilityFirst, model.DensitySpacious, 3, 10, 9},
	model.IndustryEcommerce:  {model.PhilosophyBrandLed, model.DensityBalanced, 7, 8, 7},
	model.IndustryDashboard:  {model.PhilosophyUtilityFirst, model.DensityDense, 4, 9, 9},
	model.IndustrySaaS:       {model.PhilosophyComponentFirst, model.DensityBalanced, 6, 8, 8},
	model.IndustryEducation:  {model.PhilosophyComponentFirst, model.DensityBalanced, 6, 9, 7},
	model.IndustryMarketing:  {model.PhilosophyBrandLed, model.DensitySpacious, 8, 7, 6},
	model.IndustryEnterprise: {model.PhilosophyUtilityFirst, model.DensitySpacious, 3, 9, 8},
	model.IndustryConsumer:   {model.PhilosophyBrandLed, model.DensityBalanced, 7, 8, 7},
	model.IndustryUnknown:    {model.PhilosophyComponentFirst, model.DensityBalanced, 5, 8, 7},
}

// PrimaryColorSuggestion returns the conventional primary brand color for an
// industry, or empty when there is no convention.
func PrimaryColorSuggestion(industry model.Industry) string {
	return industryPrimaries[industry]
}

var industryPrimaries = map[model.Industry]string{
	model.IndustryHealthcare: "#2563eb",
	model.IndustryFinance:    "#1e40af",
	model.IndustryEcommerce:  "#dc2626",
	model.IndustryDashboard:  "#3b82f6",
	model.IndustrySaaS:       "#6366f1",
	model.IndustryEducation:  "#0284c7",
	model.IndustryMarketing:  "#ec4899",
	model.IndustryEnterprise: "#1e40af",
	model.IndustryConsumer:   "#dc2626",
}

// AccessibilityRequirements returns the review bar for an industry. Every
// industry carries at least WCAG 2.1 AA.
func AccessibilityRequirements(industry model.Industry) []string {
	if reqs, ok := accessibilityRequirements[industry]; ok {
		return reqs
	}
	return []string{"WCAG 2.1 AA"}
}

var accessibilityRequirements = map[model.Industry][]string{
	model.IndustryHealthcare: {"WCAG 2.1 AAA", "High contrast", "Screen reader optimized"},
	model.IndustryFinance:    {"WCAG 2.1 AA", "Keyboard navigation", "High contrast"},
	model.IndustryEnterprise: {"WCAG 2.1 AA", "Keyboard navigation"},
	model.IndustryDashboard:  {"WCAG 2.1 AA", "Color blind friendly"},
	model.IndustryEcommerce:  {"WCAG 2.1 AA", "Keyboard navigation"},
	model.IndustryEducation:  {"WCAG 2.1 AA", "Screen reader optimized"},
}
