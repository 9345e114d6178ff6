package tokens

import (
	"fmt"
	"math"

	"github.com/atelierlabs/atelier/internal/model"
)

// typeSetting holds the density-dependent knobs of the type ramp.
type typeSetting struct {
	baseSize float64
	ratio    float64
}

var typeSettings = map[model.Density]typeSetting{
	model.DensityDense:    {baseSize: 14, ratio: 1.20},
	model.DensityBalanced: {baseSize: 15, ratio: 1.22},
	model.DensitySpacious: {baseSize: 16, ratio: 1.25},
}

const (
	fontStackSans = `"Inter", system-ui, -apple-system, sans-serif`
	fontStackMono = `"JetBrains Mono", ui-monospace, monospace`
)

// generateTypography emits body-0 through body-5 (shrinking), heading-1
// through heading-6 (growing), and the fixed ui-small style. Sizes come from
// a modular scale seeded by density.
func generateTypography(principles model.Principles) []model.TypographyToken {
	setting, ok := typeSettings[principles.Density]
	if !ok {
		setting = typeSettings[model.DensityBalanced]
	}
	// Clarity 9+ floors the base at 15px even when density would go smaller.
	if principles.Clarity >= 9 && setting.baseSize < 15 {
		setting.baseSize = 15
	}

	out := make([]model.TypographyToken, 0, 13)

	for i := 0; i < 6; i++ {
		size := setting.baseSize / math.Pow(setting.ratio, float64(i)*0.5)
		out = append(out, model.TypographyToken{
			Name:       fmt.Sprintf("body-%d", i),
			Family:     fontStackSans,
			Size:       formatPx(size),
			Weight:     400,
			LineHeight: 1.5,
			Role:       "body",
		})
	}

	for i := 1; i <= 6; i++ {
		// heading-1 is the largest; the exponent shrinks with the level.
		size := setting.baseSize * math.Pow(setting.ratio, float64(7-i))
		weight := 600
		if i > 3 {
			weight = 500
		}
		out = append(out, model.TypographyToken{
			Name:       fmt.Sprintf("heading-%d", i),
			Family:     fontStackSans,
			Size:       formatPx(size),
			Weight:     weight,
			LineHeight: 1.2,
			Role:       "heading",
		})
	}

	out = append(out, model.TypographyToken{
		Name:       "ui-small",
		Family:     fontStackSans,
		Size:       "12.0px",
		Weight:     500,
		LineHeight: 1.4,
		Role:       "ui",
	})

	return out
}

// spacingBase is the grid unit in px per density.
var spacingBase = map[model.Density]int{
	model.DensityDense:    4,
	model.DensityBalanced: 6,
	model.DensitySpacious: 8,
}

// spacingMultipliers covers steps 1 through 16: linear for the first eight,
// then widening gaps for layout-scale spacing.
var spacingMultipliers = []int{1, 2, 3, 4, 5, 6, 7, 8, 10, 12, 14, 16, 20, 24, 28, 32}

// generateSpacing emits space-1 through space-16 on the density grid.
func generateSpacing(principles model.Principles) []model.SpacingToken {
	base, ok := spacingBase[principles.Density]
	if !ok {
		base = spacingBase[model.DensityBalanced]
	}

	out := make([]model.SpacingToken, 0, len(spacingMultipliers))
	for i, mult := range spacingMultipliers {
		out = append(out, model.SpacingToken{
			Name:  fmt.Sprintf("space-%d", i+1),
			Value: fmt.Sprintf("%dpx", base*mult),
			Scale: i + 1,
		})
	}
	return out
}

// radiusValues maps each philosophy to its sm/md/lg radii in px.
var radiusValues = map[model.Philosophy][3]int{
	model.PhilosophyUtilityFirst:   {2, 4, 6},
	model.PhilosophyBrandLed:       {4, 8, 16},
	model.PhilosophyComponentFirst: {6, 12, 24},
}

// generateRadii emits radius-sm, radius-md, radius-lg per philosophy plus
// the fixed radius-round pill value.
func generateRadii(principles model.Principles) []model.RadiusToken {
	values, ok := radiusValues[principles.Philosophy]
	if !ok {
		values = radiusValues[model.PhilosophyUtilityFirst]
	}

	return []model.RadiusToken{
		{Name: "radius-sm", Value: fmt.Sprintf("%dpx", values[0])},
		{Name: "radius-md", Value: fmt.Sprintf("%dpx", values[1])},
		{Name: "radius-lg", Value: fmt.Sprintf("%dpx", values[2])},
		{Name: "radius-round", Value: "9999px"},
	}
}

// shadowShape is the unscaled geometry of one elevation level.
type shadowShape struct {
	name    string
	offsetY int
	blur    int
	spread  int
	alpha   float64
}

var shadowShapes = []shadowShape{
	{"shadow-sm", 1, 2, 0, 0.05},
	{"shadow-md", 4, 6, -1, 0.10},
	{"shadow-lg", 10, 15, -3, 0.10},
	{"shadow-xl", 20, 25, -5, 0.10},
}

// generateShadows emits four elevation levels. Warmer systems soften
// shadows by growing blur; cooler systems tighten them.
func generateShadows(principles model.Principles) []model.ShadowToken {
	softness := 1.0 + float64(principles.Warmth-5)*0.06

	out := make([]model.ShadowToken, 0, len(shadowShapes))
	for _, shape := range shadowShapes {
		blur := int(math.Round(float64(shape.blur) * softness))
		if blur < 1 {
			blur = 1
		}
		out = append(out, model.ShadowToken{
			Name: shape.name,
			Value: fmt.Sprintf("0 %dpx %dpx %dpx rgb(0 0 0 / %.2f)",
				shape.offsetY, blur, shape.spread, shape.alpha),
		})
	}
	return out
}

// formatPx renders a size with one decimal place, matching the CSS output
// the renderer emits verbatim.
func formatPx(v float64) string {
	return fmt.Sprintf("%.1fpx", v)
}
