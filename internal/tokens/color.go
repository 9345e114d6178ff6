package tokens

import (
	"fmt"

	"github.com/atelierlabs/atelier/internal/model"
	"github.com/atelierlabs/atelier/internal/strategy"
	"github.com/atelierlabs/atelier/pkg/color"
)

// shadeNames is the fixed shade ordering for every color scale, lightest
// first.
var shadeNames = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// scaleLightness is the lightness per shade. The steps are deliberately not
// linear: they drop faster near both ends to mimic hand-tuned design-system
// ramps. Strictly decreasing, which gives the monotonicity invariant.
var scaleLightness = map[int]float64{
	50:  0.97,
	100: 0.92,
	200: 0.83,
	300: 0.72,
	400: 0.60,
	500: 0.50,
	600: 0.40,
	700: 0.31,
	800: 0.21,
	900: 0.10,
}

// darkScaleLightness is the inverse ramp used for dark-mode scales: 50 is the
// darkest surface shade and 900 the lightest text shade.
var darkScaleLightness = map[int]float64{
	50:  0.11,
	100: 0.16,
	200: 0.24,
	300: 0.33,
	400: 0.45,
	500: 0.55,
	600: 0.66,
	700: 0.76,
	800: 0.85,
	900: 0.93,
}

// scaleSaturation eases saturation off toward the scale extremes so midtones
// stay the most vibrant shades.
var scaleSaturation = map[int]float64{
	50:  0.75,
	100: 0.85,
	200: 0.92,
	300: 0.97,
	400: 1.00,
	500: 1.00,
	600: 1.00,
	700: 0.97,
	800: 0.92,
	900: 0.85,
}

// semanticAnchor fixes the hue and shape of one semantic color family.
type semanticAnchor struct {
	role       model.ColorRole
	hue        float64
	saturation float64
	lightness  float64
}

// Semantic hues are anchored to conventional green/amber/red/blue and only
// nudged by warmth; lightness values are dark enough to clear 4.5:1 on white
// without adjustment in the common case.
var semanticAnchors = []semanticAnchor{
	{model.RoleSuccess, 0.40, 0.65, 0.33},
	{model.RoleWarning, 0.11, 0.80, 0.34},
	{model.RoleError, 0.00, 0.70, 0.41},
	{model.RoleInfo, 0.58, 0.70, 0.40},
}

const (
	white           = "#ffffff"
	minTextContrast = 4.5
	// warmNeutralHue/coolNeutralHue pick the gray undertone by warmth.
	warmNeutralHue = 0.08
	coolNeutralHue = 0.58
	warmThreshold  = 7
)

// generateColors builds the light-mode color set: primary and neutral
// 50-900 scales plus semantic families.
func generateColors(principles model.Principles, primaryOverride string) ([]model.ColorToken, error) {
	primaryHue, primarySat, err := primarySeed(principles, primaryOverride)
	if err != nil {
		return nil, err
	}

	primary := buildScale(model.RolePrimary, primaryHue, primarySat, scaleLightness)
	// The 500 reference shade doubles as a text color and is darkened toward
	// AA contrast on white. Darkening stops above the 600 shade's lightness
	// so the scale stays monotonic; a bright user-forced hue can therefore
	// land short of 4.5:1, which the review stage reports rather than the
	// generator silently recoloring the brand.
	for i, token := range primary {
		if token.Name != "primary-500" {
			continue
		}
		adjusted, err := color.EnsureContrast(token.Value, white, minTextContrast)
		if err != nil {
			return nil, err
		}
		_, _, adjustedL, err := color.HexToHSL(adjusted)
		if err != nil {
			return nil, err
		}
		if floor := scaleLightness[600] + 0.02; adjustedL < floor {
			adjusted = color.HSLToHex(primaryHue, primarySat*scaleSaturation[500], floor)
		}
		primary[i].Value = adjusted
	}

	out := make([]model.ColorToken, 0, 2*len(shadeNames)+3*len(semanticAnchors))
	out = append(out, primary...)
	out = append(out, buildScale(model.RoleNeutral, neutralHue(principles), neutralSaturation, scaleLightness)...)

	semantic, err := semanticColors(principles, scaleLightness)
	if err != nil {
		return nil, err
	}
	out = append(out, semantic...)

	return out, nil
}

// generateDarkColors builds the dark-mode set with the inverse lightness
// ramp. Shade 50 serves as the darkest surface.
func generateDarkColors(principles model.Principles, primaryOverride string) ([]model.ColorToken, error) {
	primaryHue, primarySat, err := primarySeed(principles, primaryOverride)
	if err != nil {
		return nil, err
	}

	// Dark surfaces want slightly muted chroma.
	primarySat *= 0.85

	out := make([]model.ColorToken, 0, 2*len(shadeNames)+3*len(semanticAnchors))
	out = append(out, buildScale(model.RolePrimary, primaryHue, primarySat, darkScaleLightness)...)
	out = append(out, buildScale(model.RoleNeutral, neutralHue(principles), neutralSaturation, darkScaleLightness)...)

	semantic, err := semanticColors(principles, darkScaleLightness)
	if err != nil {
		return nil, err
	}
	out = append(out, semantic...)

	return out, nil
}

const neutralSaturation = 0.06

// primarySeed resolves the primary hue and saturation: explicit override,
// then industry convention, then a warmth-derived fallback.
func primarySeed(principles model.Principles, override string) (hue, sat float64, err error) {
	seed := override
	if seed == "" {
		seed = strategy.PrimaryColorSuggestion(principles.Industry)
	}

	if seed != "" {
		h, s, _, err := color.HexToHSL(seed)
		if err != nil {
			return 0, 0, err
		}
		return h, s, nil
	}

	switch {
	case principles.Warmth <= 3:
		hue = 0.60
	case principles.Warmth >= warmThreshold:
		hue = 0.05
	default:
		hue = 0.55
	}
	return hue, 0.70, nil
}

func neutralHue(principles model.Principles) float64 {
	if principles.Warmth >= warmThreshold {
		return warmNeutralHue
	}
	return coolNeutralHue
}

// buildScale emits one token per shade name, in shade order, from the given
// lightness table.
func buildScale(role model.ColorRole, hue, saturation float64, lightness map[int]float64) []model.ColorToken {
	out := make([]model.ColorToken, 0, len(shadeNames))
	for _, shade := range shadeNames {
		sat := saturation * scaleSaturation[shade]
		out = append(out, model.ColorToken{
			Name:  fmt.Sprintf("%s-%d", role, shade),
			Value: color.HSLToHex(hue, sat, lightness[shade]),
			Role:  role,
		})
	}
	return out
}

// semanticColors emits a 500 reference shade per family plus a 50 background
// tint and a 700 text shade. The 500 shade is contrast-forced onto white in
// light mode.
func semanticColors(principles model.Principles, lightness map[int]float64) ([]model.ColorToken, error) {
	warmthShift := float64(principles.Warmth-5) * 0.005
	lightMode := lightness[50] > lightness[900]

	out := make([]model.ColorToken, 0, 3*len(semanticAnchors))
	for _, anchor := range semanticAnchors {
		hue := anchor.hue + warmthShift
		if hue < 0 {
			hue++
		}

		mid := color.HSLToHex(hue, anchor.saturation, anchor.lightness)
		if lightMode {
			adjusted, err := color.EnsureContrast(mid, white, minTextContrast)
			if err != nil {
				return nil, err
			}
			mid = adjusted
		}

		tintL, textL := 0.95, 0.27
		if !lightMode {
			tintL, textL = 0.16, 0.80
		}

		out = append(out,
			model.ColorToken{Name: fmt.Sprintf("%s-50", anchor.role), Value: color.HSLToHex(hue, anchor.saturation*0.55, tintL), Role: anchor.role},
			model.ColorToken{Name: fmt.Sprintf("%s-500", anchor.role), Value: mid, Role: anchor.role},
			model.ColorToken{Name: fmt.Sprintf("%s-700", anchor.role), Value: color.HSLToHex(hue, anchor.saturation, textL), Role: anchor.role},
		)
	}

	return out, nil
}
