package render

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/atelierlabs/atelier/internal/catalog"
	"github.com/atelierlabs/atelier/internal/model"
	"github.com/atelierlabs/atelier/internal/tokens"
	"github.com/atelierlabs/atelier/pkg/errors"
)

func testInput(t *testing.T) Input {
	t.Helper()

	brief := model.Brief{
		ProductIdea: "A project tracker for small agencies",
		TargetUsers: []model.TargetUser{model.UserB2B},
		BrandTraits: []model.BrandTrait{model.TraitModern},
		Platforms:   []model.Platform{model.PlatformWeb, model.PlatformDashboard},
		DarkMode:    true,
	}
	principles := model.Principles{
		Clarity:    8,
		Density:    model.DensityBalanced,
		Warmth:     5,
		Speed:      7,
		Philosophy: model.PhilosophyUtilityFirst,
		Industry:   model.IndustrySaaS,
	}

	toks, err := tokens.Generate(principles, tokens.Options{DarkMode: true})
	require.NoError(t, err)
	inv, err := catalog.Select(brief)
	require.NoError(t, err)

	return Input{
		Name:       "agency-tracker-ds",
		Brief:      brief,
		Principles: principles,
		Tokens:     toks,
		Inventory:  inv,
	}
}

var variantUnionRe = regexp.MustCompile(`export type \w+Variant = (.+);`)

func TestComponentVariantUnionRoundTrip(t *testing.T) {
	t.Parallel()

	for _, spec := range catalog.All() {
		artifact, err := Component(spec)
		require.NoError(t, err, "component %s must render", spec.Name)

		match := variantUnionRe.FindStringSubmatch(artifact.Content)
		require.NotNil(t, match, "component %s must declare a variant union", spec.Name)

		var parsed []string
		for _, part := range strings.Split(match[1], " | ") {
			parsed = append(parsed, strings.Trim(part, "'"))
		}
		require.Equal(t, spec.Variants, parsed)
	}
}

func TestComponentUnknownName(t *testing.T) {
	t.Parallel()

	spec := model.ComponentSpec{Name: "Carousel", Variants: []string{"default"}}

	_, err := Component(spec)
	var uerr *errors.UnsupportedComponentError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, "Carousel", uerr.Component)

	_, err = Story(spec)
	require.ErrorAs(t, err, &uerr)
	_, err = Test(spec)
	require.ErrorAs(t, err, &uerr)
}

func TestLibraryRendersAllSelected(t *testing.T) {
	t.Parallel()

	in := testInput(t)
	lib, err := Library(in)
	require.NoError(t, err)

	require.Len(t, lib.Components, len(in.Inventory.Components))
	require.Len(t, lib.Stories, len(in.Inventory.Components))
	require.Len(t, lib.Tests, len(in.Inventory.Components))

	for i, spec := range in.Inventory.Components {
		require.Equal(t, spec.Name, lib.Components[i].Name)
		require.Contains(t, lib.Components[i].Path, spec.Name+".tsx")
		require.Contains(t, lib.Stories[i].Content, "@storybook/react")
		require.Contains(t, lib.Tests[i].Content, "@testing-library/react")
	}
}

func TestLibraryCSSVariables(t *testing.T) {
	t.Parallel()

	lib, err := Library(testInput(t))
	require.NoError(t, err)

	require.Contains(t, lib.CSSVariables, "--color-primary-500:")
	require.Contains(t, lib.CSSVariables, "--space-1:")
	require.Contains(t, lib.CSSVariables, "--radius-md:")
	require.Contains(t, lib.CSSVariables, "--shadow-sm:")
	require.Contains(t, lib.CSSVariables, "[data-theme='dark']")
}

func TestLibraryJSONArtifactsWellFormed(t *testing.T) {
	t.Parallel()

	lib, err := Library(testInput(t))
	require.NoError(t, err)

	var pkg map[string]any
	require.NoError(t, json.Unmarshal([]byte(lib.PackageJSON), &pkg))
	require.Equal(t, "agency-tracker-ds", pkg["name"])

	var figma map[string]any
	require.NoError(t, json.Unmarshal([]byte(lib.FigmaTokens), &figma))
	global, ok := figma["global"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, global, "color")
	require.Contains(t, figma, "dark")
}

func TestLibraryIndexAndReadme(t *testing.T) {
	t.Parallel()

	in := testInput(t)
	lib, err := Library(in)
	require.NoError(t, err)

	for _, spec := range in.Inventory.Components {
		require.Contains(t, lib.IndexFile, "export * from './"+spec.Name+"';")
		require.Contains(t, lib.Readme, "**"+spec.Name+"**")
	}
	require.Contains(t, lib.Readme, "# Agency Tracker Ds")
	require.Contains(t, lib.Readme, in.Brief.ProductIdea)
}

func TestLibraryDeterministic(t *testing.T) {
	t.Parallel()

	in := testInput(t)
	first, err := Library(in)
	require.NoError(t, err)
	second, err := Library(in)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
