// Package tokens turns design principles into a concrete token set: color
// scales, typography, spacing, radii, and shadows. Generation is fully
// deterministic; identical inputs produce byte-identical tokens.
package tokens

import (
	"github.com/atelierlabs/atelier/internal/model"
)

// Options carries the brief-level inputs that tune generation beyond the
// principles themselves.
type Options struct {
	// PrimaryColor overrides the derived primary hue. Must already be a
	// validated hex string; empty means derive from industry and warmth.
	PrimaryColor string
	// DarkMode additionally emits a dark-mode color set.
	DarkMode bool
}

// Generate produces the complete token set for the given principles.
func Generate(principles model.Principles, opts Options) (model.Tokens, error) {
	colors, err := generateColors(principles, opts.PrimaryColor)
	if err != nil {
		return model.Tokens{}, err
	}

	var darkColors []model.ColorToken
	if opts.DarkMode {
		darkColors, err = generateDarkColors(principles, opts.PrimaryColor)
		if err != nil {
			return model.Tokens{}, err
		}
	}

	return model.Tokens{
		Colors:     colors,
		DarkColors: darkColors,
		Typography: generateTypography(principles),
		Spacing:    generateSpacing(principles),
		Radii:      generateRadii(principles),
		Shadows:    generateShadows(principles),
	}, nil
}
