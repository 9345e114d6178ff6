// Package review runs quality checks over a generated system and produces
// scored reports. Checks are pure; they read the generated data and never
// modify it.
package review

import (
	"fmt"
	"strings"

	"github.com/atelierlabs/atelier/internal/model"
	"github.com/atelierlabs/atelier/pkg/color"
)

const (
	white       = "#ffffff"
	minContrast = 4.5

	issuePenalty   = 0.2
	warningPenalty = 0.05
)

// Run executes every check and returns the reports keyed by check name.
func Run(principles model.Principles, tokens model.Tokens, inv model.Inventory) map[string]model.ReviewReport {
	return map[string]model.ReviewReport{
		"accessibility": Accessibility(tokens),
		"consistency":   Consistency(principles, tokens),
		"completeness":  Completeness(inv),
	}
}

// Accessibility verifies that text-bearing colors clear WCAG AA on white.
func Accessibility(tokens model.Tokens) model.ReviewReport {
	var issues, warnings []string

	for _, name := range []string{"primary-500", "neutral-700"} {
		checkContrastOnWhite(tokens, name, &issues)
	}
	for _, name := range []string{"success-500", "warning-500", "error-500", "info-500"} {
		checkContrastOnWhite(tokens, name, &issues)
	}

	if _, ok := tokens.Color("neutral-50"); !ok {
		warnings = append(warnings, "no neutral-50 surface color defined")
	}

	return report(issues, warnings)
}

func checkContrastOnWhite(tokens model.Tokens, name string, issues *[]string) {
	value, ok := tokens.Color(name)
	if !ok {
		*issues = append(*issues, fmt.Sprintf("missing required color token %s", name))
		return
	}
	ratio, err := color.ContrastRatio(value, white)
	if err != nil {
		*issues = append(*issues, fmt.Sprintf("color token %s is not a valid hex value", name))
		return
	}
	if ratio < minContrast {
		*issues = append(*issues, fmt.Sprintf("%s contrast on white is %.2f, below %.1f", name, ratio, minContrast))
	}
}

// expected spacing unit and minimum body size per density.
var densityExpectations = map[model.Density]struct {
	unit    string
	minBody float64
}{
	model.DensityDense:    {unit: "4px", minBody: 14},
	model.DensityBalanced: {unit: "6px", minBody: 15},
	model.DensitySpacious: {unit: "8px", minBody: 16},
}

// Consistency verifies that tokens agree with the principles that produced
// them: spacing grid matches density, body type is large enough for the
// clarity score, and the primary hue matches the warmth score.
func Consistency(principles model.Principles, tokens model.Tokens) model.ReviewReport {
	var issues, warnings []string

	if expect, ok := densityExpectations[principles.Density]; ok {
		if len(tokens.Spacing) == 0 {
			issues = append(issues, "no spacing tokens generated")
		} else if tokens.Spacing[0].Value != expect.unit {
			issues = append(issues, fmt.Sprintf("spacing unit %s does not match %s density (want %s)",
				tokens.Spacing[0].Value, principles.Density, expect.unit))
		}

		if principles.Clarity >= 7 {
			body := bodySize(tokens)
			if body > 0 && body < expect.minBody {
				warnings = append(warnings, fmt.Sprintf("body size %.1fpx is small for clarity %d", body, principles.Clarity))
			}
		}
	}

	if value, ok := tokens.Color("primary-500"); ok {
		hue, _, _, err := color.HexToHSL(value)
		if err == nil {
			warmHue := hue < 0.17 || hue > 0.92
			if principles.Warmth >= 8 && !warmHue {
				warnings = append(warnings, "primary hue reads cool for a high warmth score")
			}
			if principles.Warmth <= 2 && warmHue {
				warnings = append(warnings, "primary hue reads warm for a low warmth score")
			}
		}
	}

	return report(issues, warnings)
}

func bodySize(tokens model.Tokens) float64 {
	for _, t := range tokens.Typography {
		if t.Name != "body-0" {
			continue
		}
		var v float64
		if _, err := fmt.Sscanf(strings.TrimSuffix(t.Size, "px"), "%f", &v); err == nil {
			return v
		}
	}
	return 0
}

// criticalComponents must appear in every inventory.
var criticalComponents = []string{"Button", "Input"}

// requiredCompanions mirrors the selector's dependency table.
var requiredCompanions = map[string][]string{
	"Table":      {"Pagination"},
	"Sidebar":    {"Navigation"},
	"Navigation": {"Header"},
	"Hero":       {"Button"},
}

// Completeness verifies the inventory is internally coherent: critical
// components present, dependencies satisfied, and key variants and states
// defined.
func Completeness(inv model.Inventory) model.ReviewReport {
	var issues, warnings []string

	for _, name := range criticalComponents {
		if !inv.Contains(name) {
			issues = append(issues, fmt.Sprintf("critical component %s missing from inventory", name))
		}
	}

	for name, deps := range requiredCompanions {
		if !inv.Contains(name) {
			continue
		}
		for _, dep := range deps {
			if !inv.Contains(dep) {
				issues = append(issues, fmt.Sprintf("%s is selected but its dependency %s is not", name, dep))
			}
		}
	}

	for _, spec := range inv.Components {
		switch spec.Name {
		case "Button":
			if !hasString(spec.Variants, "primary") {
				issues = append(issues, "Button has no primary variant")
			}
		case "Input":
			if !hasString(spec.States, "error") {
				issues = append(issues, "Input has no error state")
			}
		}
		if len(spec.States) == 0 {
			warnings = append(warnings, fmt.Sprintf("%s defines no states", spec.Name))
		}
	}

	return report(issues, warnings)
}

func hasString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

// report assembles a scored report. The score starts at 1.0 and loses 0.2
// per issue and 0.05 per warning, floored at zero.
func report(issues, warnings []string) model.ReviewReport {
	score := 1.0 - issuePenalty*float64(len(issues)) - warningPenalty*float64(len(warnings))
	if score < 0 {
		score = 0
	}
	return model.ReviewReport{
		Valid:    len(issues) == 0,
		Issues:   issues,
		Warnings: warnings,
		Score:    score,
	}
}
