// Package model defines the records flowing through the generation pipeline:
// the normalized brief, derived design principles, tokens, component
// specifications, and the assembled output.
package model

import "time"

// Brief is the normalized generation input. It is created once by the caller
// (config loading or the interactive wizard) and never mutated afterwards.
type Brief struct {
	ProductIdea  string       `json:"product_idea" yaml:"product_idea"`
	TargetUsers  []TargetUser `json:"target_users" yaml:"target_users"`
	BrandTraits  []BrandTrait `json:"brand_traits,omitempty" yaml:"brand_traits,omitempty"`
	Platforms    []Platform   `json:"platforms" yaml:"platforms"`
	PrimaryColor string       `json:"primary_color,omitempty" yaml:"primary_color,omitempty"`
	DarkMode     bool         `json:"dark_mode,omitempty" yaml:"dark_mode,omitempty"`
}

// HasUser reports whether the brief targets the given user class.
func (b Brief) HasUser(user TargetUser) bool {
	for _, u := range b.TargetUsers {
		if u == user {
			return true
		}
	}
	return false
}

// HasTrait reports whether the brief carries the given brand trait.
func (b Brief) HasTrait(trait BrandTrait) bool {
	for _, t := range b.BrandTraits {
		if t == trait {
			return true
		}
	}
	return false
}

// HasPlatform reports whether the brief targets the given platform.
func (b Brief) HasPlatform(platform Platform) bool {
	for _, p := range b.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// OnlyPlatform reports whether the brief targets exactly the given platform.
func (b Brief) OnlyPlatform(platform Platform) bool {
	return len(b.Platforms) == 1 && b.Platforms[0] == platform
}

// Principles is the qualitative design contract derived from a brief. All
// scale fields stay within [1, 10]; the strategy stage fails with a
// RangeError rather than emit an out-of-bounds value.
type Principles struct {
	Clarity    int        `json:"clarity" yaml:"clarity"`
	Density    Density    `json:"density" yaml:"density"`
	Warmth     int        `json:"warmth" yaml:"warmth"`
	Speed      int        `json:"speed" yaml:"speed"`
	Philosophy Philosophy `json:"philosophy" yaml:"philosophy"`
	Industry   Industry   `json:"industry" yaml:"industry"`
}

// Industry is the product domain detected from the brief's product idea.
type Industry string

const (
	IndustryHealthcare Industry = "healthcare"
	IndustryFinance    Industry = "finance"
	IndustryEcommerce  Industry = "ecommerce"
	IndustryDashboard  Industry = "dashboard"
	IndustrySaaS       Industry = "saas"
	IndustryEducation  Industry = "education"
	IndustryMarketing  Industry = "marketing"
	IndustryEnterprise Industry = "enterprise"
	IndustryConsumer   Industry = "consumer"
	IndustryUnknown    Industry = "unknown"
)

// ColorToken is a single named color value.
type ColorToken struct {
	Name  string    `json:"name" yaml:"name"`
	Value string    `json:"value" yaml:"value"`
	Role  ColorRole `json:"role" yaml:"role"`
}

// TypographyToken is a single named type style.
type TypographyToken struct {
	Name       string  `json:"name" yaml:"name"`
	Family     string  `json:"family" yaml:"family"`
	Size       string  `json:"size" yaml:"size"`
	Weight     int     `json:"weight" yaml:"weight"`
	LineHeight float64 `json:"line_height" yaml:"line_height"`
	Role       string  `json:"role" yaml:"role"`
}

// SpacingToken is one step of the spacing ramp.
type SpacingToken struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
	Scale int    `json:"scale" yaml:"scale"`
}

// Tokens is the complete generated token set.
type Tokens struct {
	Colors     []ColorToken      `json:"colors" yaml:"colors"`
	DarkColors []ColorToken      `json:"dark_colors,omitempty" yaml:"dark_colors,omitempty"`
	Typography []TypographyToken `json:"typography" yaml:"typography"`
	Spacing    []SpacingToken    `json:"spacing" yaml:"spacing"`
	Radii      []RadiusToken     `json:"radii" yaml:"radii"`
	Shadows    []ShadowToken     `json:"shadows" yaml:"shadows"`
}

// RadiusToken is a named border radius.
type RadiusToken struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// ShadowToken is a named box shadow.
type ShadowToken struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Color returns the value of the named color token and whether it exists.
func (t Tokens) Color(name string) (string, bool) {
	for _, c := range t.Colors {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// ComponentSpec describes one reusable UI component: its variants, states,
// and the platforms it applies to. Specs come from the static catalog; the
// selector only filters and annotates, it never invents components.
type ComponentSpec struct {
	Name          string     `json:"name" yaml:"name"`
	Category      Category   `json:"category" yaml:"category"`
	Variants      []string   `json:"variants" yaml:"variants"`
	States        []string   `json:"states" yaml:"states"`
	Description   string     `json:"description" yaml:"description"`
	Accessibility string     `json:"accessibility_notes,omitempty" yaml:"accessibility_notes,omitempty"`
	Platforms     []Platform `json:"platforms" yaml:"platforms"`
	Reusable      bool       `json:"reusable" yaml:"reusable"`
}

// AppliesTo reports whether the spec is tagged for the given platform.
func (s ComponentSpec) AppliesTo(platform Platform) bool {
	for _, p := range s.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

// Inventory is the set of components selected for a brief, in catalog order.
type Inventory struct {
	Components []ComponentSpec `json:"components" yaml:"components"`
	Reusable   []string        `json:"reusable_components" yaml:"reusable_components"`
	Contextual []string        `json:"contextual_components" yaml:"contextual_components"`
}

// Contains reports whether the inventory includes the named component.
func (inv Inventory) Contains(name string) bool {
	for _, c := range inv.Components {
		if c.Name == name {
			return true
		}
	}
	return false
}

// Artifact is one rendered output file.
type Artifact struct {
	Name    string `json:"name" yaml:"name"`
	Path    string `json:"path" yaml:"path"`
	Content string `json:"content" yaml:"content"`
}

// Library is the full set of rendered artifacts for a design system.
type Library struct {
	Components     []Artifact `json:"components" yaml:"components"`
	Stories        []Artifact `json:"stories" yaml:"stories"`
	Tests          []Artifact `json:"tests" yaml:"tests"`
	CSSVariables   string     `json:"css_variables" yaml:"css_variables"`
	TailwindConfig string     `json:"tailwind_config" yaml:"tailwind_config"`
	PackageJSON    string     `json:"package_json" yaml:"package_json"`
	FigmaTokens    string     `json:"figma_tokens" yaml:"figma_tokens"`
	IndexFile      string     `json:"index_file" yaml:"index_file"`
	Readme         string     `json:"readme" yaml:"readme"`
}

// ReviewReport is the outcome of one quality check over the generated system.
type ReviewReport struct {
	Valid    bool     `json:"valid" yaml:"valid"`
	Issues   []string `json:"issues,omitempty" yaml:"issues,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Score    float64  `json:"score" yaml:"score"`
}

// Output aggregates everything produced for one generation request. It is
// assembled once and never mutated; each request owns its own graph.
type Output struct {
	Brief       Brief                   `json:"input" yaml:"input"`
	Principles  Principles              `json:"principles" yaml:"principles"`
	Tokens      Tokens                  `json:"tokens" yaml:"tokens"`
	Inventory   Inventory               `json:"components" yaml:"components"`
	Library     Library                 `json:"component_library" yaml:"component_library"`
	Guidelines  map[string]string       `json:"guidelines" yaml:"guidelines"`
	Review      map[string]ReviewReport `json:"review,omitempty" yaml:"review,omitempty"`
	GeneratedAt time.Time               `json:"generated_at" yaml:"generated_at"`
}
