// Package ui renders generation results for the terminal. Styled output is
// for humans on a tty; a plain variant serves pipes and CI logs.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atelierlabs/atelier/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	swatchStyle  = lipgloss.NewStyle()
)

// Summary renders a styled overview of the generated system.
func Summary(out *model.Output) string {
	if out == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Design system generated"))
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Principles"))
	b.WriteString("\n")
	writeField(&b, "industry", string(out.Principles.Industry))
	writeField(&b, "philosophy", string(out.Principles.Philosophy))
	writeField(&b, "density", string(out.Principles.Density))
	writeField(&b, "clarity", fmt.Sprintf("%d/10", out.Principles.Clarity))
	writeField(&b, "warmth", fmt.Sprintf("%d/10", out.Principles.Warmth))
	writeField(&b, "speed", fmt.Sprintf("%d/10", out.Principles.Speed))

	b.WriteString(sectionStyle.Render("Tokens"))
	b.WriteString("\n")
	writeField(&b, "colors", fmt.Sprintf("%d", len(out.Tokens.Colors)))
	if len(out.Tokens.DarkColors) > 0 {
		writeField(&b, "dark colors", fmt.Sprintf("%d", len(out.Tokens.DarkColors)))
	}
	writeField(&b, "typography", fmt.Sprintf("%d", len(out.Tokens.Typography)))
	writeField(&b, "spacing", fmt.Sprintf("%d", len(out.Tokens.Spacing)))
	if value, ok := out.Tokens.Color("primary-500"); ok {
		swatch := swatchStyle.Foreground(lipgloss.Color(value)).Render("██")
		writeField(&b, "primary", swatch+" "+value)
	}

	b.WriteString(sectionStyle.Render("Components"))
	b.WriteString("\n")
	writeField(&b, "selected", fmt.Sprintf("%d (%d reusable, %d contextual)",
		len(out.Inventory.Components), len(out.Inventory.Reusable), len(out.Inventory.Contextual)))

	if len(out.Review) > 0 {
		b.WriteString(sectionStyle.Render("Review"))
		b.WriteString("\n")
		for _, check := range reviewOrder(out.Review) {
			report := out.Review[check]
			status := okStyle.Render("pass")
			if !report.Valid {
				status = failStyle.Render("fail")
			}
			fmt.Fprintf(&b, "  %s %s (%.2f)\n", labelStyle.Render(fmt.Sprintf("%-14s", check)), status, report.Score)
			for _, issue := range report.Issues {
				fmt.Fprintf(&b, "    %s %s\n", failStyle.Render("✗"), issue)
			}
		}
	}

	return b.String()
}

// PlainSummary renders the same overview without styling.
func PlainSummary(out *model.Output) string {
	if out == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "design system generated\n")
	fmt.Fprintf(&b, "industry=%s philosophy=%s density=%s\n",
		out.Principles.Industry, out.Principles.Philosophy, out.Principles.Density)
	fmt.Fprintf(&b, "colors=%d typography=%d spacing=%d components=%d\n",
		len(out.Tokens.Colors), len(out.Tokens.Typography), len(out.Tokens.Spacing), len(out.Inventory.Components))
	for _, check := range reviewOrder(out.Review) {
		report := out.Review[check]
		status := "pass"
		if !report.Valid {
			status = "fail"
		}
		fmt.Fprintf(&b, "review %s=%s score=%.2f\n", check, status, report.Score)
		for _, issue := range report.Issues {
			fmt.Fprintf(&b, "  issue: %s\n", issue)
		}
	}
	return b.String()
}

// ComponentList renders the catalog or an inventory as an aligned listing.
func ComponentList(specs []model.ComponentSpec) string {
	var b strings.Builder
	for _, spec := range specs {
		fmt.Fprintf(&b, "%-12s %-12s %s\n", spec.Name, spec.Category, spec.Description)
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-12s", label)), value)
}

// reviewOrder returns check names in a fixed presentation order.
func reviewOrder(reports map[string]model.ReviewReport) []string {
	preferred := []string{"accessibility", "consistency", "completeness"}
	out := make([]string, 0, len(reports))
	for _, name := range preferred {
		if _, ok := reports[name]; ok {
			out = append(out, name)
		}
	}
	for name := range reports {
		known := false
		for _, p := range preferred {
			if name == p {
				known = true
				break
			}
		}
		if !known {
			out = append(out, name)
		}
	}
	return out
}
