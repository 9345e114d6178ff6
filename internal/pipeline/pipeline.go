// Package pipeline orchestrates the full generation sequence: principles,
// tokens, inventory, rendered library, review, and guidelines. Stages run
// strictly in order and each failure aborts the run; no partial Output is
// ever returned alongside an error.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/atelierlabs/atelier/internal/catalog"
	"github.com/atelierlabs/atelier/internal/logger"
	"github.com/atelierlabs/atelier/internal/model"
	"github.com/atelierlabs/atelier/internal/render"
	"github.com/atelierlabs/atelier/internal/review"
	"github.com/atelierlabs/atelier/internal/strategy"
	"github.com/atelierlabs/atelier/internal/tokens"
	"github.com/atelierlabs/atelier/pkg/errors"
)

const defaultName = "design-system"

// Options carries per-run settings. GeneratedAt is supplied by the caller so
// that equal briefs with an equal timestamp yield byte-identical output.
type Options struct {
	// Name is the npm package name for the rendered library. Defaults to
	// "design-system".
	Name string
	// GeneratedAt stamps the output. Zero means the stamp stays zero; the
	// pipeline never reads the clock itself.
	GeneratedAt time.Time
	// Logger receives per-stage progress. Nil disables logging.
	Logger *logger.Logger
}

// Generate runs every stage for the brief and assembles the Output. Each
// call builds a fresh object graph; nothing is shared between runs.
func Generate(brief model.Brief, opts Options) (*model.Output, error) {
	if err := validate(brief); err != nil {
		return nil, err
	}

	name := opts.Name
	if name == "" {
		name = defaultName
	}
	log := opts.Logger

	log.Stage("strategy").Info("deriving design principles")
	principles, err := strategy.Derive(brief)
	if err != nil {
		log.Stage("strategy").Error(err, "principle derivation failed")
		return nil, err
	}
	log.Stage("strategy").With("industry", principles.Industry).Info("principles derived")

	log.Stage("tokens").Info("generating design tokens")
	toks, err := tokens.Generate(principles, tokens.Options{
		PrimaryColor: brief.PrimaryColor,
		DarkMode:     brief.DarkMode,
	})
	if err != nil {
		log.Stage("tokens").Error(err, "token generation failed")
		return nil, err
	}

	log.Stage("catalog").Info("selecting component inventory")
	inv, err := catalog.Select(brief)
	if err != nil {
		log.Stage("catalog").Error(err, "component selection failed")
		return nil, err
	}
	inv = catalog.TuneDefaults(inv, principles.Density)
	log.Stage("catalog").With("components", len(inv.Components)).Info("inventory selected")

	log.Stage("render").Info("rendering component library")
	lib, err := render.Library(render.Input{
		Name:       name,
		Brief:      brief,
		Principles: principles,
		Tokens:     toks,
		Inventory:  inv,
	})
	if err != nil {
		log.Stage("render").Error(err, "rendering failed")
		return nil, err
	}

	log.Stage("review").Info("reviewing generated system")
	reports := review.Run(principles, toks, inv)
	for check, report := range reports {
		if !report.Valid {
			log.Stage("review").With("check", check).Warn("review check reported issues")
		}
	}

	return &model.Output{
		Brief:       brief,
		Principles:  principles,
		Tokens:      toks,
		Inventory:   inv,
		Library:     lib,
		Guidelines:  guidelines(principles, inv),
		Review:      reports,
		GeneratedAt: opts.GeneratedAt,
	}, nil
}

// Preview runs the analysis stages only: principles, tokens, and inventory.
// Nothing is rendered and nothing touches disk.
func Preview(brief model.Brief, opts Options) (*model.Output, error) {
	if err := validate(brief); err != nil {
		return nil, err
	}

	principles, err := strategy.Derive(brief)
	if err != nil {
		return nil, err
	}
	toks, err := tokens.Generate(principles, tokens.Options{
		PrimaryColor: brief.PrimaryColor,
		DarkMode:     brief.DarkMode,
	})
	if err != nil {
		return nil, err
	}
	inv, err := catalog.Select(brief)
	if err != nil {
		return nil, err
	}
	inv = catalog.TuneDefaults(inv, principles.Density)

	return &model.Output{
		Brief:       brief,
		Principles:  principles,
		Tokens:      toks,
		Inventory:   inv,
		Review:      review.Run(principles, toks, inv),
		GeneratedAt: opts.GeneratedAt,
	}, nil
}

// validate rejects briefs that cannot produce a meaningful system before
// any stage runs.
func validate(brief model.Brief) error {
	if strings.TrimSpace(brief.ProductIdea) == "" {
		return errors.NewValidationError("product_idea", "product idea is required", nil)
	}
	if len(brief.TargetUsers) == 0 {
		return errors.NewValidationError("target_users", "at least one target user is required", nil)
	}
	if len(brief.Platforms) == 0 {
		return errors.NewValidationError("platforms", "at least one platform is required", nil)
	}
	return nil
}

// guidelines writes the short usage documents that accompany the library.
// Content derives only from principles and inventory, keeping output
// deterministic.
func guidelines(principles model.Principles, inv model.Inventory) map[string]string {
	var access strings.Builder
	access.WriteString("## Accessibility\n\n")
	access.WriteString("- Body text and interactive labels must meet WCAG AA (4.5:1) on their background.\n")
	access.WriteString("- Focus indicators must be visible on every interactive component.\n")
	for _, req := range strategy.AccessibilityRequirements(principles.Industry) {
		fmt.Fprintf(&access, "- %s\n", req)
	}

	var spacing strings.Builder
	spacing.WriteString("## Spacing\n\n")
	fmt.Fprintf(&spacing, "The system uses a %s spacing grid. Compose layouts from the space-1 through space-16 steps; never use raw pixel values.\n", principles.Density)

	var colors strings.Builder
	colors.WriteString("## Color usage\n\n")
	colors.WriteString("- primary-500 is the reference brand shade; use 600 and 700 for hover and active states.\n")
	colors.WriteString("- neutral shades carry text and surfaces; semantic colors are reserved for status.\n")
	if principles.Warmth >= 7 {
		colors.WriteString("- Neutrals carry a warm undertone; avoid mixing in cool grays from outside the palette.\n")
	}

	var comps strings.Builder
	comps.WriteString("## Components\n\n")
	fmt.Fprintf(&comps, "The library ships %d components (%d reusable, %d contextual). ", len(inv.Components), len(inv.Reusable), len(inv.Contextual))
	comps.WriteString("Compose screens from reusable components first; contextual ones are page-specific and not general building blocks.\n")

	return map[string]string{
		"accessibility": access.String(),
		"spacing":       spacing.String(),
		"color":         colors.String(),
		"components":    comps.String(),
	}
}
