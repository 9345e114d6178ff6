// Package catalog holds the static component catalog and the selector that
// filters it down to an inventory for one brief. Selection only ever removes
// or annotates; the catalog is the single source of component definitions.
package catalog

import "github.com/atelierlabs/atelier/internal/model"

// allPlatforms tags a component that applies everywhere.
var allPlatforms = []model.Platform{
	model.PlatformWeb, model.PlatformMobile,
	model.PlatformDashboard, model.PlatformMarketing,
}

var appPlatforms = []model.Platform{
	model.PlatformWeb, model.PlatformMobile, model.PlatformDashboard,
}

var screenPlatforms = []model.Platform{
	model.PlatformWeb, model.PlatformDashboard, model.PlatformMarketing,
}

// components is the full catalog in canonical order. The order is part of
// the output contract: inventories, rendered files, and docs all list
// components in this sequence.
var components = []model.ComponentSpec{
	{
		Name:          "Button",
		Category:      model.CategoryAction,
		Variants:      []string{"primary", "secondary", "outline", "ghost", "destructive"},
		States:        []string{"default", "hover", "active", "focus", "disabled", "loading"},
		Description:   "Triggers an action or event.",
		Accessibility: "Focus ring must meet 3:1 contrast against adjacent colors. Loading state keeps the accessible name.",
		Platforms:     allPlatforms,
		Reusable:      true,
	},
	{
		Name:          "Input",
		Category:      model.CategoryInput,
		Variants:      []string{"default", "with-icon", "with-addon"},
		States:        []string{"default", "focus", "error", "disabled", "readonly"},
		Description:   "Single-line text entry field.",
		Accessibility: "Every input needs a programmatically associated label. Error text is linked via aria-describedby.",
		Platforms:     allPlatforms,
		Reusable:      true,
	},
	{
		Name:          "Select",
		Category:      model.CategoryInput,
		Variants:      []string{"default", "multi", "searchable"},
		States:        []string{"default", "open", "focus", "error", "disabled"},
		Description:   "Picks one or more options from a list.",
		Accessibility: "Keyboard navigation with arrow keys and type-ahead. Announce selection changes.",
		Platforms:     appPlatforms,
		Reusable:      true,
	},
	{
		Name:        "Textarea",
		Category:    model.CategoryInput,
		Variants:    []string{"default", "auto-grow"},
		States:      []string{"default", "focus", "error", "disabled"},
		Description: "Multi-line text entry field.",
		Platforms:   appPlatforms,
		Reusable:    true,
	},
	{
		Name:          "Checkbox",
		Category:      model.CategoryInput,
		Variants:      []string{"default", "indeterminate"},
		States:        []string{"unchecked", "checked", "indeterminate", "focus", "disabled"},
		Description:   "Toggles an independent boolean choice.",
		Accessibility: "Indeterminate state must be conveyed with aria-checked=\"mixed\".",
		Platforms:     appPlatforms,
		Reusable:      true,
	},
	{
		Name:        "Radio",
		Category:    model.CategoryInput,
		Variants:    []string{"default", "card"},
		States:      []string{"unchecked", "checked", "focus", "disabled"},
		Description: "Picks exactly one option from a small group.",
		Platforms:   appPlatforms,
		Reusable:    true,
	},
	{
		Name:          "Switch",
		Category:      model.CategoryInput,
		Variants:      []string{"default", "with-label"},
		States:        []string{"off", "on", "focus", "disabled"},
		Description:   "Toggles a setting with immediate effect.",
		Accessibility: "Use role=\"switch\"; state changes apply without a separate submit.",
		Platforms:     appPlatforms,
		Reusable:      true,
	},
	{
		Name:        "Badge",
		Category:    model.CategoryFeedback,
		Variants:    []string{"default", "success", "warning", "error", "info"},
		States:      []string{"default"},
		Description: "Compact status or count label.",
		Platforms:   allPlatforms,
		Reusable:    true,
	},
	{
		Name:          "Tooltip",
		Category:      model.CategoryFeedback,
		Variants:      []string{"default", "rich"},
		States:        []string{"hidden", "visible"},
		Description:   "Reveals short contextual help on hover or focus.",
		Accessibility: "Must be dismissible with Escape and must not trap focus.",
		Platforms:     []model.Platform{model.PlatformWeb, model.PlatformDashboard, model.PlatformMarketing},
		Reusable:      true,
	},
	{
		Name:          "Modal",
		Category:      model.CategoryLayout,
		Variants:      []string{"default", "fullscreen", "drawer"},
		States:        []string{"closed", "open"},
		Description:   "Blocks the page for a focused task.",
		Accessibility: "Focus is trapped while open and returned to the trigger on close.",
		Platforms:     appPlatforms,
		Reusable:      true,
	},
	{
		Name:          "Alert",
		Category:      model.CategoryFeedback,
		Variants:      []string{"info", "success", "warning", "error"},
		States:        []string{"default", "dismissible"},
		Description:   "Prominent inline message about system state.",
		Accessibility: "Error alerts use role=\"alert\" so they are announced immediately.",
		Platforms:     allPlatforms,
		Reusable:      true,
	},
	{
		Name:        "Card",
		Category:    model.CategoryLayout,
		Variants:    []string{"default", "interactive", "media"},
		States:      []string{"default", "hover", "selected"},
		Description: "Groups related content on one surface.",
		Platforms:   allPlatforms,
		Reusable:    true,
	},
	{
		Name:          "Table",
		Category:      model.CategoryData,
		Variants:      []string{"default", "striped", "compact", "sortable"},
		States:        []string{"default", "loading", "empty"},
		Description:   "Displays structured rows and columns.",
		Accessibility: "Column headers use th with scope. Sort state is exposed via aria-sort.",
		Platforms:     []model.Platform{model.PlatformWeb, model.PlatformDashboard},
		Reusable:      true,
	},
	{
		Name:        "Pagination",
		Category:    model.CategoryNavigation,
		Variants:    []string{"default", "compact"},
		States:      []string{"default", "disabled"},
		Description: "Splits long result sets into pages.",
		Platforms:   []model.Platform{model.PlatformWeb, model.PlatformDashboard},
		Reusable:    true,
	},
	{
		Name:        "Tabs",
		Category:    model.CategoryNavigation,
		Variants:    []string{"default", "pills", "underline"},
		States:      []string{"inactive", "active", "focus", "disabled"},
		Description: "Switches between peer views in place.",
		Platforms:   appPlatforms,
		Reusable:    true,
	},
	{
		Name:        "Breadcrumb",
		Category:    model.CategoryNavigation,
		Variants:    []string{"default", "with-icons"},
		States:      []string{"default"},
		Description: "Shows the current location in a hierarchy.",
		Platforms:   []model.Platform{model.PlatformWeb, model.PlatformDashboard},
		Reusable:    true,
	},
	{
		Name:          "Navigation",
		Category:      model.CategoryNavigation,
		Variants:      []string{"horizontal", "vertical", "collapsible"},
		States:        []string{"default", "active", "expanded"},
		Description:   "Primary navigation between product areas.",
		Accessibility: "Wrap in a nav landmark; mark the current page with aria-current.",
		Platforms:     allPlatforms,
		Reusable:      true,
	},
	{
		Name:        "Sidebar",
		Category:    model.CategoryLayout,
		Variants:    []string{"default", "collapsible", "mini"},
		States:      []string{"expanded", "collapsed"},
		Description: "Persistent side panel for navigation or filters.",
		Platforms:   []model.Platform{model.PlatformWeb, model.PlatformDashboard},
		Reusable:    true,
	},
	{
		Name:        "Header",
		Category:    model.CategoryLayout,
		Variants:    []string{"default", "with-search", "minimal"},
		States:      []string{"default", "scrolled"},
		Description: "Top-of-page bar with branding and global actions.",
		Platforms:   allPlatforms,
		Reusable:    true,
	},
	{
		Name:        "Footer",
		Category:    model.CategoryLayout,
		Variants:    []string{"default", "minimal", "rich"},
		States:      []string{"default"},
		Description: "Bottom-of-page links and legal text.",
		Platforms:   screenPlatforms,
		Reusable:    true,
	},
	{
		Name:        "Hero",
		Category:    model.CategoryContextual,
		Variants:    []string{"default", "split", "centered"},
		States:      []string{"default"},
		Description: "Large opening section for a marketing page.",
		Platforms:   []model.Platform{model.PlatformWeb, model.PlatformMarketing},
		Reusable:    false,
	},
	{
		Name:          "Progress",
		Category:      model.CategoryFeedback,
		Variants:      []string{"bar", "circle", "indeterminate"},
		States:        []string{"default", "complete"},
		Description:   "Shows how far a long-running task has advanced.",
		Accessibility: "Expose current value with aria-valuenow unless indeterminate.",
		Platforms:     appPlatforms,
		Reusable:      true,
	},
	{
		Name:        "Skeleton",
		Category:    model.CategoryFeedback,
		Variants:    []string{"text", "rect", "circle"},
		States:      []string{"default"},
		Description: "Placeholder shown while content loads.",
		Platforms:   appPlatforms,
		Reusable:    true,
	},
	{
		Name:          "Accordion",
		Category:      model.CategoryLayout,
		Variants:      []string{"default", "bordered"},
		States:        []string{"collapsed", "expanded", "focus", "disabled"},
		Description:   "Expands and collapses stacked content sections.",
		Accessibility: "Trigger buttons expose aria-expanded and control their panels.",
		Platforms:     allPlatforms,
		Reusable:      true,
	},
}

// dependencies lists components that must accompany another when selected.
// Closure over this map keeps rendered imports resolvable.
var dependencies = map[string][]string{
	"Table":      {"Pagination"},
	"Sidebar":    {"Navigation"},
	"Navigation": {"Header"},
	"Hero":       {"Button"},
}

// All returns the full catalog in canonical order. Callers receive a copy
// of the slice header only; specs themselves are shared and treated as
// immutable.
func All() []model.ComponentSpec {
	out := make([]model.ComponentSpec, len(components))
	copy(out, components)
	return out
}

// Lookup returns the catalog spec with the given name.
func Lookup(name string) (model.ComponentSpec, bool) {
	for _, c := range components {
		if c.Name == name {
			return c, true
		}
	}
	return model.ComponentSpec{}, false
}
